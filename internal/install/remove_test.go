package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suivm/suivm/internal/testutil"
)

func TestUninstall(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	testutil.InstallFakeVersion(t, cfg, "testnet-v1.55.0")
	m := New(cfg)

	require.NoError(t, m.Uninstall("testnet-v1.55.0"))
	testutil.AssertFileNotExists(t, cfg.VersionDir("testnet-v1.55.0"))
}

func TestUninstallNotInstalled(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	m := New(cfg)

	err := m.Uninstall("testnet-v1.55.0")
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestUninstallActiveVersionRefused(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	testutil.InstallFakeVersion(t, cfg, "testnet-v1.55.0")
	m := New(cfg)
	require.NoError(t, m.Activate("testnet-v1.55.0"))

	err := m.Uninstall("testnet-v1.55.0")
	assert.ErrorIs(t, err, ErrActiveVersion)
	testutil.AssertFileExists(t, cfg.VersionDir("testnet-v1.55.0"))
}

func TestUninstallNonActiveKeepsLink(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	testutil.InstallFakeVersion(t, cfg, "testnet-v1.55.0")
	testutil.InstallFakeVersion(t, cfg, "mainnet-v1.54.2")
	m := New(cfg)
	require.NoError(t, m.Activate("testnet-v1.55.0"))

	require.NoError(t, m.Uninstall("mainnet-v1.54.2"))

	active, err := m.ActiveVersion()
	require.NoError(t, err)
	assert.Equal(t, "testnet-v1.55.0", active)
}
