package install

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/suivm/suivm/internal/catalog"
	"github.com/suivm/suivm/internal/progress"
	"github.com/suivm/suivm/internal/shell"
)

// Install downloads and extracts a toolchain version into versions/<version>.
//
// The pipeline is an ordered sequence of fallible steps with no rollback:
// fetch catalog, find the release, pick a compatible asset, create the
// version directory, stream the archive to disk with progress, extract it,
// delete the archive. A failure partway leaves whatever was written so far;
// re-running Install for the same version overwrites it, and Uninstall can
// always remove the remains.
func (m *Manager) Install(ctx context.Context, version string) error {
	if err := ValidateVersion(version); err != nil {
		return err
	}

	releases, err := m.catalog.FetchReleases(ctx)
	if err != nil {
		return err
	}

	release, err := catalog.FindRelease(releases, version)
	if err != nil {
		return err
	}

	asset, err := catalog.SelectAsset(release, m.target)
	if err != nil {
		return err
	}
	m.logger.Debug("selected release asset", "version", version, "asset", asset.Name)

	versionDir := m.cfg.VersionDir(version)
	if err := os.MkdirAll(versionDir, 0755); err != nil {
		return fmt.Errorf("failed to create version directory: %w", err)
	}

	archivePath := filepath.Join(versionDir, asset.Name)
	fmt.Fprintf(m.out, "Downloading: %s\n", asset.Name)
	if err := m.downloadAsset(ctx, asset, archivePath); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Extracting files...")
	if err := extractTarGz(archivePath, versionDir); err != nil {
		return fmt.Errorf("failed to extract %s: %w", asset.Name, err)
	}

	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("failed to remove archive: %w", err)
	}

	fmt.Fprintln(m.out, "Installation completed successfully!")

	// Informational only; never fails the install.
	shell.Suggest(m.out, m.cfg.BaseDir)
	return nil
}

// downloadAsset streams the asset body to destPath, reporting cumulative
// progress against the declared Content-Length. A missing length degrades
// the display to a byte counter.
func (m *Manager) downloadAsset(ctx context.Context, asset catalog.Asset, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.DownloadURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}
	req.Header.Set("User-Agent", catalog.UserAgent)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return &catalog.Error{
			Type:    catalog.ErrTypeNetwork,
			Message: fmt.Sprintf("failed to download %s", asset.Name),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &catalog.Error{
			Type:    catalog.ErrTypeNetwork,
			Message: fmt.Sprintf("download of %s returned status %d", asset.Name, resp.StatusCode),
		}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer out.Close()

	var dest io.Writer = out
	var pw *progress.Writer
	if progress.ShouldShowProgress() {
		pw = progress.NewWriter(out, resp.ContentLength, m.out)
		dest = pw
	}

	if _, err := io.Copy(dest, resp.Body); err != nil {
		if pw != nil {
			pw.Finish()
		}
		// An interrupted body stream is a transport failure, even though
		// it surfaces from the copy.
		return &catalog.Error{
			Type:    catalog.ErrTypeNetwork,
			Message: fmt.Sprintf("download of %s was interrupted", asset.Name),
			Err:     err,
		}
	}
	if pw != nil {
		pw.Finish()
	}

	m.logger.Debug("downloaded asset", "dest", destPath, "bytes", resp.ContentLength)
	return nil
}
