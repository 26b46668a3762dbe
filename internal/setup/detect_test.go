package setup_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/shw/internal/setup"
	"github.com/stretchr/testify/assert"
)

func TestDetectShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	assert.Equal(t, "zsh", setup.DetectShell())

	t.Setenv("SHELL", "/bin/bash")
	assert.Equal(t, "bash", setup.DetectShell())

	t.Setenv("SHELL", "")
	assert.Equal(t, "", setup.DetectShell())
}

func TestShellRCPath(t *testing.T) {
	assert.True(t, strings.HasSuffix(setup.ShellRCPath("zsh"), ".zshrc"))
	assert.True(t, strings.HasSuffix(setup.ShellRCPath("bash"), ".bashrc"))
	assert.True(t, strings.HasSuffix(setup.ShellRCPath("fish"), "conf.d/shw.fish"))
	assert.Empty(t, setup.ShellRCPath("powershell"))
}
