package catalog

import (
	"fmt"
	"strings"

	"github.com/suivm/suivm/internal/platform"
)

// FindRelease returns the release whose tag equals version. The match is
// exact and case-sensitive; versions are opaque identifiers, not semver.
func FindRelease(releases []Release, version string) (Release, error) {
	for _, rel := range releases {
		if rel.Tag == version {
			return rel, nil
		}
	}
	return Release{}, &Error{
		Type:    ErrTypeVersionNotFound,
		Message: fmt.Sprintf("version %s not found in release catalog", version),
	}
}

// SelectAsset returns the first asset whose name contains both the OS and
// architecture markers for the target. Assets are scanned in catalog order;
// when a release carries several compatible assets the catalog's response
// order decides which one wins, as no canonical ordering is defined.
func SelectAsset(rel Release, target platform.Target) (Asset, error) {
	osMarker := target.OSMarker()
	archMarker := target.ArchMarker()

	for _, asset := range rel.Assets {
		if strings.Contains(asset.Name, osMarker) && strings.Contains(asset.Name, archMarker) {
			return asset, nil
		}
	}
	return Asset{}, &Error{
		Type:    ErrTypeNoCompatibleAsset,
		Message: fmt.Sprintf("no %s/%s asset found for version %s", osMarker, archMarker, rel.Tag),
	}
}
