package filesystem

import (
	"os"
)

// PathExists reports whether anything is present at path, following
// symlinks. Stat failures other than not-exist also count as absent.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
