package install

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListInstalled enumerates the installed version identifiers: the names of
// the directories directly under versions/. Returns an empty slice when
// versions/ does not exist yet. The result is sorted for stable output.
func (m *Manager) ListInstalled() ([]string, error) {
	entries, err := os.ReadDir(m.cfg.VersionsDir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read versions directory: %w", err)
	}

	versions := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// IsInstalled reports whether versions/<version> exists as a directory.
// Directory existence is the sole installed signal; there is no manifest.
func (m *Manager) IsInstalled(version string) bool {
	if ValidateVersion(version) != nil {
		return false
	}
	info, err := os.Stat(m.cfg.VersionDir(version))
	return err == nil && info.IsDir()
}

// ActiveVersion returns the version identifier the current link points at:
// the final path component of the link target. Returns ErrNoActiveVersion
// when the link does not exist and ErrInvalidState when the target has no
// usable final segment. The link target is not checked against versions/;
// a dangling link still names its version.
func (m *Manager) ActiveVersion() (string, error) {
	target, err := os.Readlink(m.cfg.CurrentLink)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoActiveVersion
		}
		return "", fmt.Errorf("failed to read current link: %w", err)
	}

	version := filepath.Base(target)
	if version == "." || version == string(filepath.Separator) {
		return "", fmt.Errorf("%w: target %q", ErrInvalidState, target)
	}
	return version, nil
}
