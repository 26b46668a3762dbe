// Package testutil provides common test helpers for the shw project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// SetupTestConfig creates a temporary config.toml with wrappers, bt hosts
// and utility settings pre-configured. Returns the config file path.
func SetupTestConfig(t *testing.T) string {
	t.Helper()

	content := `version = 1
default_shell = "zsh"
cache_ttl_days = 7

[wrappers]
gw = ["git", "worktree"]
hello = ["echo", "hello"]

[exitnode]
default = "home-server"

[obsidian]
api_key = "secret-key"
port = 27124
https = true

[bt.devices.headset]
mac = "AA:BB:CC:DD:EE:FF"
name = "WH-1000XM4"

[bt.hosts.desktop]
address = "192.168.0.10"
user = "hbjs"
protocol = "ssh"
driver = "bluez"

[bt.hosts.laptop]
protocol = "local"
driver = "bluez"

[bt.defaults]
device = "headset"
target = "laptop"
`
	return TempConfigFile(t, content)
}

// TempVault creates a temporary Obsidian vault populated with the given
// relative path → content markdown files. Returns the vault root.
func TempVault(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatalf("TempVault: mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("TempVault: write failed: %v", err)
		}
	}
	return dir
}
