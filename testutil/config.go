package testutil

import (
	"wsinit/config"
)

// DefaultTestConfig returns the default folder list rooted at baseDir
func DefaultTestConfig(baseDir string) *config.Config {
	return &config.Config{
		BaseDirectory: baseDir,
		Folders:       config.DefaultFolders(),
		PrettyLogging: true,
		Debug:         true,
	}
}

// TestConfigBuilder provides a fluent interface for building test configs
type TestConfigBuilder struct {
	config *config.Config
}

// NewTestConfigBuilder creates a new builder with default values
func NewTestConfigBuilder(baseDir string) *TestConfigBuilder {
	return &TestConfigBuilder{
		config: DefaultTestConfig(baseDir),
	}
}

// WithFolders replaces the folder list
func (b *TestConfigBuilder) WithFolders(folders ...string) *TestConfigBuilder {
	b.config.Folders = folders
	return b
}

// WithBaseDirectory sets the base directory
func (b *TestConfigBuilder) WithBaseDirectory(dir string) *TestConfigBuilder {
	b.config.BaseDirectory = dir
	return b
}

// WithDebug sets debug mode
func (b *TestConfigBuilder) WithDebug(debug bool) *TestConfigBuilder {
	b.config.Debug = debug
	return b
}

// Build returns the configured config
func (b *TestConfigBuilder) Build() *config.Config {
	return b.config
}
