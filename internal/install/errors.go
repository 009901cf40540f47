package install

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the local version store and activator. Callers match
// them with errors.Is; operations wrap them with the version involved.
var (
	// ErrNotInstalled indicates the requested version has no directory
	// under versions/.
	ErrNotInstalled = errors.New("version is not installed")

	// ErrActiveVersion indicates an uninstall targeted the version the
	// current link points at.
	ErrActiveVersion = errors.New("version is currently active")

	// ErrNoActiveVersion indicates no current link exists.
	ErrNoActiveVersion = errors.New("no version currently in use")

	// ErrInvalidState indicates the current link exists but its target
	// does not name a version.
	ErrInvalidState = errors.New("current link is corrupt")

	// ErrBinaryMissing indicates an activated version directory does not
	// contain the toolchain binary.
	ErrBinaryMissing = errors.New("toolchain binary missing")
)

// ValidateVersion rejects version identifiers that could escape the
// versions/ directory. Versions are opaque strings, but they become
// directory names, so path separators and dot-dot segments are refused
// before any filesystem operation.
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if strings.ContainsAny(version, "/\\") {
		return fmt.Errorf("version %q must not contain path separators", version)
	}
	if version == "." || version == ".." {
		return fmt.Errorf("version %q is not a valid directory name", version)
	}
	return nil
}
