package config

import (
	"os"
	"path/filepath"
	"strings"

	"wsinit/errdefs"
)

// defaultFolders is the workspace layout created on every run, in report order.
var defaultFolders = []string{
	"00_Linux_Python",
	"01_Solidity_Basic",
	"02Foundry_Test",
	"99_Daily_Log",
}

type Config struct {
	BaseDirectory string
	Folders       []string
	PrettyLogging bool
	Debug         bool
}

// DefaultFolders returns a copy of the fixed folder list.
func DefaultFolders() []string {
	folders := make([]string, len(defaultFolders))
	copy(folders, defaultFolders)
	return folders
}

func New(baseDirectory string, folders []string) *Config {
	return &Config{
		BaseDirectory: baseDirectory,
		Folders:       folders,
		PrettyLogging: true,
	}
}

// GetDefaultConfig builds the configuration used by the CLI: the fixed
// folder list rooted at the current working directory.
func GetDefaultConfig() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return New(cwd, DefaultFolders()), nil
}

// Validate checks that every folder is a plain, single path segment.
func (c *Config) Validate() error {
	for _, folder := range c.Folders {
		if err := validateFolderName(folder); err != nil {
			return errdefs.InvalidFolderName(err, folder)
		}
	}

	return nil
}

// FolderPath resolves a folder name against the base directory.
func (c *Config) FolderPath(folder string) string {
	return filepath.Join(c.BaseDirectory, folder)
}

func validateFolderName(folder string) error {
	if folder == "" {
		return errdefs.ErrEmptyFolderName
	}

	if folder == "." || folder == ".." || filepath.IsAbs(folder) || strings.ContainsAny(folder, `/\`) {
		return errdefs.ErrNotSingleSegment
	}

	return nil
}
