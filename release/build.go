package release

import (
	_ "embed"
	"runtime"
	"strings"
)

//go:embed version.txt
var version string
var BuildArch string = ""

func GetVersion() string {
	return strings.TrimSpace(version)
}

// GetBuildArch falls back to the runtime architecture when no
// -ldflags "-X wsinit/release.BuildArch=..." value was injected.
func GetBuildArch() string {
	if BuildArch == "" {
		return runtime.GOARCH
	}
	return BuildArch
}
