// Package testutil provides shared helpers for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suivm/suivm/internal/config"
)

// NewTestConfig creates a config rooted in a fresh temporary directory with
// the versions directory already created.
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New(filepath.Join(t.TempDir(), config.BaseDirName))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("failed to create test directories: %v", err)
	}
	return cfg
}

// InstallFakeVersion creates versions/<version> containing a stub toolchain
// binary, simulating a completed install.
func InstallFakeVersion(t *testing.T, cfg *config.Config, version string) {
	t.Helper()
	dir := cfg.VersionDir(version)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create version dir: %v", err)
	}
	bin := filepath.Join(dir, config.BinaryName)
	if err := os.WriteFile(bin, []byte("#!/bin/sh\necho sui\n"), 0755); err != nil {
		t.Fatalf("failed to write stub binary: %v", err)
	}
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertFileExists checks if a file exists at the given path
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if !FileExists(path) {
		t.Errorf("file does not exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does NOT exist at the given path
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if FileExists(path) {
		t.Errorf("file should not exist: %s", path)
	}
}
