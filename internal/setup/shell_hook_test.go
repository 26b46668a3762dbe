package setup_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/shw/internal/setup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallShellHook_CreatesFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, setup.InstallShellHook("zsh", rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shw shell integration")
	assert.Contains(t, string(data), "shw-create()")
}

func TestInstallShellHook_AppendsToExisting(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("export PATH=$PATH:~/bin\n"), 0600))

	require.NoError(t, setup.InstallShellHook("zsh", rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "export PATH"))
	assert.Contains(t, string(data), "shw shell integration")
}

func TestInstallShellHook_Idempotent(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, setup.InstallShellHook("zsh", rcPath))
	require.NoError(t, setup.InstallShellHook("zsh", rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "shw shell integration"))
}

func TestInstallShellHook_UnsupportedShell(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".rc")
	assert.Error(t, setup.InstallShellHook("powershell", rcPath))
}
