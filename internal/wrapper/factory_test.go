package wrapper_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/shw/internal/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateInstallsAndReturnsFunction(t *testing.T) {
	reg := wrapper.NewRegistry()
	factory := &wrapper.Factory{Registry: reg}

	fn, err := factory.Create("gw", []string{"git", "worktree"}, "zsh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fn, "gw() {"))
	assert.Contains(t, fn, "git worktree")

	spec, ok := reg.Lookup("gw")
	require.True(t, ok)
	assert.Equal(t, []string{"git", "worktree"}, spec.Command)
}

func TestFactory_InvalidNameLeavesRegistryUntouched(t *testing.T) {
	reg := wrapper.NewRegistry()
	factory := &wrapper.Factory{Registry: reg}

	_, err := factory.Create("bad name", []string{"true"}, "zsh")
	assert.ErrorIs(t, err, wrapper.ErrInvalidArguments)
	assert.Equal(t, 0, reg.Len())
}

func TestFactory_EmptyCommandLeavesRegistryUntouched(t *testing.T) {
	reg := wrapper.NewRegistry()
	factory := &wrapper.Factory{Registry: reg}

	_, err := factory.Create("gw", nil, "zsh")
	assert.ErrorIs(t, err, wrapper.ErrInvalidArguments)
	assert.Equal(t, 0, reg.Len())
}

func TestFactory_RedefinitionReplacesSpec(t *testing.T) {
	reg := wrapper.NewRegistry()
	factory := &wrapper.Factory{Registry: reg}

	_, err := factory.Create("gw", []string{"git", "worktree"}, "zsh")
	require.NoError(t, err)
	_, err = factory.Create("gw", []string{"git", "switch"}, "zsh")
	require.NoError(t, err)

	spec, ok := reg.Lookup("gw")
	require.True(t, ok)
	assert.Equal(t, []string{"git", "switch"}, spec.Command)
	assert.Equal(t, 1, reg.Len())
}

func TestFactory_UnknownShell(t *testing.T) {
	reg := wrapper.NewRegistry()
	factory := &wrapper.Factory{Registry: reg}

	_, err := factory.Create("gw", []string{"git"}, "powershell")
	assert.Error(t, err)
	assert.Equal(t, 0, reg.Len())
}
