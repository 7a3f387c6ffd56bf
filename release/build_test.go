package release

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", GetVersion())
}

func TestGetBuildArch(t *testing.T) {
	assert.Equal(t, runtime.GOARCH, GetBuildArch())

	BuildArch = "armv7"
	t.Cleanup(func() { BuildArch = "" })
	assert.Equal(t, "armv7", GetBuildArch())
}
