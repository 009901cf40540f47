package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/google/go-github/v57/github"
)

// ErrorType classifies catalog errors for caller handling.
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport failure reaching the catalog.
	ErrTypeNetwork ErrorType = iota
	// ErrTypeDecode indicates a malformed catalog response body.
	ErrTypeDecode
	// ErrTypeVersionNotFound indicates no release matched the requested
	// version identifier.
	ErrTypeVersionNotFound
	// ErrTypeNoCompatibleAsset indicates a matching release carries no
	// asset for the host platform.
	ErrTypeNoCompatibleAsset
)

// Error provides structured information about a catalog failure.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("catalog: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match on the error type, so callers can compare
// against the sentinel values below without losing the wrapped cause.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Type == other.Type
	}
	return false
}

// Sentinel values for errors.Is comparisons.
var (
	ErrNetwork           = &Error{Type: ErrTypeNetwork, Message: "network failure"}
	ErrDecode            = &Error{Type: ErrTypeDecode, Message: "malformed response"}
	ErrVersionNotFound   = &Error{Type: ErrTypeVersionNotFound, Message: "version not found"}
	ErrNoCompatibleAsset = &Error{Type: ErrTypeNoCompatibleAsset, Message: "no compatible asset"}
)

// Suggestion returns an actionable hint for the user, or "".
func (e *Error) Suggestion() string {
	switch e.Type {
	case ErrTypeNetwork:
		return "Check your internet connection and try again. Set GITHUB_TOKEN to raise the API rate limit."
	case ErrTypeVersionNotFound:
		return "Run 'suivm list' to see the available versions."
	case ErrTypeNoCompatibleAsset:
		return "This release may predate builds for your platform; try a newer version."
	default:
		return ""
	}
}

// classifyFetchError maps a go-github error to a catalog Error. Transport
// problems become Network; an unparseable body becomes Decode.
func classifyFetchError(err error, owner, repo string) *Error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Error{
			Type:    ErrTypeDecode,
			Message: fmt.Sprintf("failed to decode release list for %s/%s", owner, repo),
			Err:     err,
		}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &Error{
			Type:    ErrTypeNetwork,
			Message: fmt.Sprintf("GitHub API rate limit exceeded (resets %s)", rateErr.Rate.Reset.Format("15:04:05")),
			Err:     err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{
			Type:    ErrTypeNetwork,
			Message: fmt.Sprintf("failed to reach release catalog for %s/%s", owner, repo),
			Err:     err,
		}
	}

	// Non-2xx API responses and anything else unexpected.
	return &Error{
		Type:    ErrTypeNetwork,
		Message: fmt.Sprintf("release catalog request for %s/%s failed", owner, repo),
		Err:     err,
	}
}
