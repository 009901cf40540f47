package install

import (
	"errors"
	"fmt"
	"os"
)

// Uninstall deletes versions/<version>. The active version is refused;
// switch away first. The current link is never touched here, so removing a
// non-active version while another is active leaves the link intact.
func (m *Manager) Uninstall(version string) error {
	if err := ValidateVersion(version); err != nil {
		return err
	}

	if !m.IsInstalled(version) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, version)
	}

	active, err := m.ActiveVersion()
	switch {
	case errors.Is(err, ErrNoActiveVersion):
		// Nothing active, any version may go.
	case err != nil:
		return err
	case active == version:
		return fmt.Errorf("%w: %s", ErrActiveVersion, version)
	}

	if err := os.RemoveAll(m.cfg.VersionDir(version)); err != nil {
		return fmt.Errorf("failed to remove version directory: %w", err)
	}
	m.logger.Debug("uninstalled version", "version", version)
	return nil
}
