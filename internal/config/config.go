// Package config defines the filesystem layout suivm manages.
//
// All persisted state lives under a single base directory (~/.suivm by
// default): one directory per installed version under versions/, and a
// `current` symlink naming the active version. The Config value is built
// once at startup and passed explicitly into every component so tests can
// substitute a temporary root.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// BaseDirName is the directory created under the user's home.
	BaseDirName = ".suivm"

	// VersionsDirName holds one subdirectory per installed version.
	VersionsDirName = "versions"

	// CurrentLinkName is the symlink that marks the active version.
	CurrentLinkName = "current"

	// BinaryName is the toolchain binary expected inside a version directory.
	BinaryName = "sui"
)

// Config holds the resolved filesystem layout.
type Config struct {
	BaseDir     string // root of all suivm state
	VersionsDir string // BaseDir/versions
	CurrentLink string // BaseDir/current
}

// New builds a Config rooted at baseDir.
func New(baseDir string) *Config {
	return &Config{
		BaseDir:     baseDir,
		VersionsDir: filepath.Join(baseDir, VersionsDirName),
		CurrentLink: filepath.Join(baseDir, CurrentLinkName),
	}
}

// Default resolves the per-user base directory (~/.suivm).
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return New(filepath.Join(home, BaseDirName)), nil
}

// EnsureDirectories creates the base directory tree if it does not exist.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.BaseDir, c.VersionsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// VersionDir returns the install directory for a version.
func (c *Config) VersionDir(version string) string {
	return filepath.Join(c.VersionsDir, version)
}

// BinaryPath returns the expected location of the toolchain binary for a
// version. The release archives place the binary at the directory root.
func (c *Config) BinaryPath(version string) string {
	return filepath.Join(c.VersionDir(version), BinaryName)
}

// CurrentBinDir returns the PATH entry advertised to shells. It resolves
// through the current symlink.
func (c *Config) CurrentBinDir() string {
	return filepath.Join(c.CurrentLink, "bin")
}
