package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullConfig(t *testing.T) {
	path := testutil.SetupTestConfig(t)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "zsh", cfg.DefaultShell)
	assert.Equal(t, 7, cfg.CacheTTLDays)
	assert.Equal(t, []string{"git", "worktree"}, cfg.Wrappers["gw"])
	assert.Equal(t, "home-server", cfg.ExitNode.Default)
	assert.Equal(t, "secret-key", cfg.Obsidian.APIKey)
	assert.True(t, cfg.Obsidian.HTTPS)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", cfg.BT.Devices["headset"].MAC)
	assert.Equal(t, "ssh", cfg.BT.Hosts["desktop"].Protocol)
	assert.Equal(t, "headset", cfg.BT.Defaults.Device)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "zsh", cfg.DefaultShell)
	assert.Equal(t, 7, cfg.CacheTTLDays)
	assert.Equal(t, 27124, cfg.Obsidian.Port)
	assert.NotNil(t, cfg.Wrappers)
}

func TestLoad_ParseError(t *testing.T) {
	path := testutil.TempConfigFile(t, "this is not toml = = =")

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_EmptyWrapperCommand(t *testing.T) {
	path := testutil.TempConfigFile(t, `
[wrappers]
broken = []
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_InvalidHostProtocol(t *testing.T) {
	path := testutil.TempConfigFile(t, `
[bt.hosts.weird]
protocol = "telnet"
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_DeviceWithoutMAC(t *testing.T) {
	path := testutil.TempConfigFile(t, `
[bt.devices.headset]
name = "WH-1000XM4"
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := config.Default()
	cfg.Wrappers["gw"] = []string{"git", "worktree"}
	cfg.ExitNode.Default = "vpn-1"
	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "worktree"}, loaded.Wrappers["gw"])
	assert.Equal(t, "vpn-1", loaded.ExitNode.Default)
}

func TestSave_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.Save(path, config.Default()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.NoError(t, config.ValidateFilePermissions(path))
}

func TestValidateFilePermissions_TooOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	assert.Error(t, config.ValidateFilePermissions(path))
}
