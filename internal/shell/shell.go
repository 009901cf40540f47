// Package shell emits the PATH-export snippets that hook the active
// toolchain version into a user's shell.
package shell

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/suivm/suivm/internal/config"
)

// Kind is one of the supported shells.
type Kind string

const (
	Bash Kind = "bash"
	Zsh  Kind = "zsh"
	Fish Kind = "fish"
)

// Kinds lists the supported shells in the order they are presented to
// users.
var Kinds = []Kind{Bash, Zsh, Fish}

// ErrUnsupported is returned for shells suivm cannot emit a snippet for.
var ErrUnsupported = fmt.Errorf("unsupported shell")

// Parse converts a user-supplied shell name into a Kind.
func Parse(name string) (Kind, error) {
	switch Kind(name) {
	case Bash, Zsh, Fish:
		return Kind(name), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
}

// Snippet returns the single-line PATH-prepend statement for the shell,
// referencing <baseDir>/current/bin. Pure function of its inputs.
func Snippet(kind Kind, baseDir string) (string, error) {
	binDir := filepath.Join(baseDir, config.CurrentLinkName, "bin")

	switch kind {
	case Fish:
		return fmt.Sprintf("set -gx PATH %s $PATH", binDir), nil
	case Bash, Zsh:
		return fmt.Sprintf("export PATH=\"%s:$PATH\"", binDir), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}

// RCFile returns the profile file a user edits to persist the snippet.
func RCFile(kind Kind) (string, error) {
	switch kind {
	case Bash:
		return "~/.bashrc", nil
	case Zsh:
		return "~/.zshrc", nil
	case Fish:
		return "~/.config/fish/config.fish", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}

// Suggest writes the post-install shell configuration guidance for every
// supported shell. Snippet generation cannot fail for the fixed Kinds, so
// Suggest has no error path and never fails an install.
func Suggest(w io.Writer, baseDir string) {
	fmt.Fprintln(w, "\nTo configure your shell, add the following to your shell config file:")
	for _, kind := range Kinds {
		snippet, err := Snippet(kind, baseDir)
		if err != nil {
			continue
		}
		rcFile, err := RCFile(kind)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "\nFor %s (%s):\n%s\n", kind, rcFile, snippet)
	}
	fmt.Fprintln(w, "\nThen restart your shell or source the config file.")
}
