// Package errmsg formats errors for terminal display with possible causes
// and actionable suggestions.
package errmsg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/suivm/suivm/internal/catalog"
	"github.com/suivm/suivm/internal/install"
)

// Format returns a user-facing rendering of err: the message itself,
// followed by causes and suggestions when the error is one we can say
// something useful about. Unrecognized errors come back verbatim.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var catErr *catalog.Error
	if errors.As(err, &catErr) {
		return formatCatalogError(catErr)
	}

	switch {
	case errors.Is(err, install.ErrNotInstalled):
		return formatWithSuggestions(err,
			nil,
			[]string{
				"Run 'suivm list' to see installed versions",
				"Run 'suivm install <version>' to install it first",
			})
	case errors.Is(err, install.ErrActiveVersion):
		return formatWithSuggestions(err,
			nil,
			[]string{"Switch to another version with 'suivm use <version>' before uninstalling"})
	case errors.Is(err, install.ErrNoActiveVersion):
		return formatWithSuggestions(err,
			nil,
			[]string{"Run 'suivm use <version>' to select a version"})
	case errors.Is(err, install.ErrBinaryMissing):
		return formatWithSuggestions(err,
			[]string{
				"The installation is incomplete or corrupted",
				"The release archive did not contain the expected binary",
			},
			[]string{"Reinstall with 'suivm install <version>'"})
	case errors.Is(err, install.ErrInvalidState):
		return formatWithSuggestions(err,
			[]string{"The current symlink was modified outside suivm"},
			[]string{"Run 'suivm use <version>' to repair it"})
	}

	return err.Error()
}

func formatCatalogError(err *catalog.Error) string {
	var causes []string
	switch err.Type {
	case catalog.ErrTypeNetwork:
		causes = []string{
			"Network connectivity issue",
			"Service temporarily unavailable",
			"GitHub API rate limit exceeded",
		}
	case catalog.ErrTypeDecode:
		causes = []string{
			"The release catalog returned unexpected data",
			"A proxy may be intercepting the response",
		}
	case catalog.ErrTypeVersionNotFound:
		causes = []string{"The version does not exist in the release catalog"}
	case catalog.ErrTypeNoCompatibleAsset:
		causes = []string{"The release has no prebuilt binary for this platform"}
	}

	var suggestions []string
	if s := err.Suggestion(); s != "" {
		suggestions = []string{s}
	}

	return formatWithSuggestions(err, causes, suggestions)
}

func formatWithSuggestions(err error, causes, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	if len(causes) > 0 {
		sb.WriteString("\nPossible causes:\n")
		for _, c := range causes {
			sb.WriteString("  - " + c + "\n")
		}
	}
	if len(suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range suggestions {
			sb.WriteString("  - " + s + "\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Fprint writes the formatted error to w with an "Error:" prefix.
func Fprint(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", Format(err))
}
