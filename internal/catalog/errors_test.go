package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesOnType(t *testing.T) {
	err := &Error{Type: ErrTypeVersionNotFound, Message: "version v9.9.9 not found"}

	assert.ErrorIs(t, err, ErrVersionNotFound)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, errors.New("version v9.9.9 not found"))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{Type: ErrTypeNetwork, Message: "fetch failed", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClassifyFetchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"json syntax", &json.SyntaxError{}, ErrTypeDecode},
		{"json type", &json.UnmarshalTypeError{}, ErrTypeDecode},
		{"transport", &url.Error{Op: "Get", URL: "https://x", Err: errors.New("refused")}, ErrTypeNetwork},
		{"other", fmt.Errorf("500 oops"), ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyFetchError(tt.err, "MystenLabs", "sui")
			assert.Equal(t, tt.want, got.Type)
		})
	}
}

func TestSuggestion(t *testing.T) {
	assert.Contains(t, ErrVersionNotFound.Suggestion(), "suivm list")
	assert.Contains(t, ErrNetwork.Suggestion(), "internet connection")
	assert.Empty(t, ErrDecode.Suggestion())
}
