package testutil

import (
	"testing"

	"wsinit/config"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTestConfig(t *testing.T) {
	cfg := DefaultTestConfig("/work")

	assert.Equal(t, "/work", cfg.BaseDirectory)
	assert.Equal(t, config.DefaultFolders(), cfg.Folders)
	assert.True(t, cfg.PrettyLogging)
	assert.True(t, cfg.Debug)
}

func TestNewTestConfigBuilder(t *testing.T) {
	cfg := NewTestConfigBuilder("/work").
		WithBaseDirectory("/other").
		WithFolders("a", "b").
		WithDebug(false).
		Build()

	assert.Equal(t, "/other", cfg.BaseDirectory)
	assert.Equal(t, []string{"a", "b"}, cfg.Folders)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}
