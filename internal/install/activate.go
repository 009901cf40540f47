package install

import (
	"fmt"
	"os"
)

// Activate points the current link at versions/<version>.
//
// The link is replaced before the binary check runs, so activating a
// version whose directory exists but is missing the toolchain binary still
// moves the pointer and then reports ErrBinaryMissing. This mirrors the
// filesystem-first model: the link records intent, and the error tells the
// user the installation is broken rather than refusing to switch.
func (m *Manager) Activate(version string) error {
	if err := ValidateVersion(version); err != nil {
		return err
	}

	if !m.IsInstalled(version) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, version)
	}

	if _, err := os.Lstat(m.cfg.CurrentLink); err == nil {
		if err := os.Remove(m.cfg.CurrentLink); err != nil {
			return fmt.Errorf("failed to remove current link: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to inspect current link: %w", err)
	}

	if err := os.Symlink(m.cfg.VersionDir(version), m.cfg.CurrentLink); err != nil {
		return fmt.Errorf("failed to create current link: %w", err)
	}
	m.logger.Debug("switched active version", "version", version)

	if _, err := os.Stat(m.cfg.BinaryPath(version)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s has no %s binary", ErrBinaryMissing, version, m.cfg.BinaryPath(version))
		}
		return fmt.Errorf("failed to check toolchain binary: %w", err)
	}

	return nil
}
