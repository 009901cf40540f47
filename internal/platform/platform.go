// Package platform reports the host platform and the asset-name markers
// used to pick a compatible release asset.
//
// suivm officially supports a single target triple (macOS on Apple
// silicon); other hosts get a warning and rely on the marker match finding
// an asset.
package platform

import "runtime"

// Target identifies an operating system and CPU architecture pair.
type Target struct {
	OS   string // runtime.GOOS value (e.g. "darwin")
	Arch string // runtime.GOARCH value (e.g. "arm64")
}

// Host returns the Target of the running process.
func Host() Target {
	return Target{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Supported reports whether suivm can manage toolchains on this target.
func (t Target) Supported() bool {
	return t.OS == "darwin" && t.Arch == "arm64"
}

// OSMarker returns the substring that identifies this OS in release asset
// names. Sui release assets use "macos", "ubuntu" and "windows".
func (t Target) OSMarker() string {
	switch t.OS {
	case "darwin":
		return "macos"
	case "linux":
		return "ubuntu"
	case "windows":
		return "windows"
	default:
		return t.OS
	}
}

// ArchMarker returns the substring that identifies this architecture in
// release asset names.
func (t Target) ArchMarker() string {
	switch t.Arch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	default:
		return "unknown"
	}
}

// String returns the combined os/arch form used in diagnostics.
func (t Target) String() string {
	return t.OS + "/" + t.Arch
}
