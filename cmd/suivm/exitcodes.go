package main

import (
	"errors"
	"os"

	"github.com/suivm/suivm/internal/catalog"
	"github.com/suivm/suivm/internal/install"
)

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitVersionNotFound indicates the version was not found in the catalog
	ExitVersionNotFound = 3

	// ExitNetwork indicates a network error
	ExitNetwork = 4

	// ExitNotInstalled indicates the version is not installed locally
	ExitNotInstalled = 5

	// ExitConflict indicates the operation conflicts with the active version
	ExitConflict = 6
)

// exitCodeFor maps an error to its exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, catalog.ErrVersionNotFound):
		return ExitVersionNotFound
	case errors.Is(err, catalog.ErrNetwork), errors.Is(err, catalog.ErrDecode):
		return ExitNetwork
	case errors.Is(err, install.ErrNotInstalled):
		return ExitNotInstalled
	case errors.Is(err, install.ErrActiveVersion):
		return ExitConflict
	default:
		return ExitGeneral
	}
}

// exitWithCode exits the process with the given code
func exitWithCode(code int) {
	os.Exit(code)
}
