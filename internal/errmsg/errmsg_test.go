package errmsg

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suivm/suivm/internal/catalog"
	"github.com/suivm/suivm/internal/install"
)

func TestFormatNil(t *testing.T) {
	assert.Equal(t, "", Format(nil))
}

func TestFormatUnrecognized(t *testing.T) {
	err := errors.New("something odd happened")
	assert.Equal(t, "something odd happened", Format(err))
}

func TestFormatCatalogNetwork(t *testing.T) {
	err := &catalog.Error{Type: catalog.ErrTypeNetwork, Message: "failed to reach release catalog"}
	out := Format(err)

	assert.Contains(t, out, "failed to reach release catalog")
	assert.Contains(t, out, "Possible causes:")
	assert.Contains(t, out, "rate limit")
	assert.Contains(t, out, "Suggestions:")
	assert.Contains(t, out, "GITHUB_TOKEN")
}

func TestFormatCatalogVersionNotFound(t *testing.T) {
	err := &catalog.Error{Type: catalog.ErrTypeVersionNotFound, Message: "no release tagged testnet-v9.9.9"}
	out := Format(err)

	assert.Contains(t, out, "no release tagged testnet-v9.9.9")
	assert.Contains(t, out, "suivm list")
}

func TestFormatWrappedCatalogError(t *testing.T) {
	inner := &catalog.Error{Type: catalog.ErrTypeNoCompatibleAsset, Message: "no asset for darwin/arm64"}
	err := fmt.Errorf("install failed: %w", inner)
	out := Format(err)

	assert.Contains(t, out, "no prebuilt binary")
}

func TestFormatInstallSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: testnet-v1.55.0", install.ErrNotInstalled), "suivm install"},
		{fmt.Errorf("%w: testnet-v1.55.0", install.ErrActiveVersion), "suivm use"},
		{install.ErrNoActiveVersion, "suivm use"},
		{fmt.Errorf("%w: no sui binary", install.ErrBinaryMissing), "Reinstall"},
		{fmt.Errorf("%w: target \"x\"", install.ErrInvalidState), "repair"},
	}

	for _, tt := range tests {
		out := Format(tt.err)
		assert.Contains(t, out, tt.err.Error())
		assert.Contains(t, out, tt.want)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	Fprint(&buf, nil)
	assert.Empty(t, buf.String())
}
