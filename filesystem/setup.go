package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// EnsureDirectory creates path as a single directory unless an entry
// already exists there. Existing entries are left alone whatever their
// type. It reports whether a directory was created.
func EnsureDirectory(path string) (bool, error) {
	if PathExists(path) {
		return false, nil
	}

	err := os.Mkdir(path, os.ModePerm)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}
