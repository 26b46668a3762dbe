package shellgen_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/shw/internal/shellgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunction_Posix(t *testing.T) {
	fn, err := shellgen.Function("gw", []string{"git", "worktree"}, "zsh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fn, "gw() {\n"))
	assert.True(t, strings.HasSuffix(fn, "}\n"))
	assert.Contains(t, fn, `__shw_out="$(git worktree "$@")"`)
	assert.Contains(t, fn, `'EVAL::'*)`)
	assert.Contains(t, fn, `eval "${__shw_out#EVAL::}"`)
	assert.Contains(t, fn, `printf '%s\n' "$__shw_out"`)
	assert.Contains(t, fn, `return "$__shw_rc"`)
}

func TestFunction_QuotesCommandTokens(t *testing.T) {
	fn, err := shellgen.Function("note", []string{"open", "My Vault/daily note.md"}, "bash")
	require.NoError(t, err)

	assert.Contains(t, fn, `open 'My Vault/daily note.md' "$@"`)
}

func TestFunction_Fish(t *testing.T) {
	fn, err := shellgen.Function("gw", []string{"git", "worktree"}, "fish")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fn, "function gw\n"))
	assert.True(t, strings.HasSuffix(fn, "end\n"))
	assert.Contains(t, fn, "(git worktree $argv | string collect)")
	assert.Contains(t, fn, "string match -q 'EVAL::*'")
}

func TestFunction_EmptyCommand(t *testing.T) {
	_, err := shellgen.Function("gw", nil, "zsh")
	assert.Error(t, err)
}

func TestFunction_PlaceholderAppearsOncePerTemplate(t *testing.T) {
	// command 자체에 placeholder text가 들어가도 치환은 한 번만 일어난다.
	fn, err := shellgen.Function("odd", []string{"echo", "@COMMAND@"}, "zsh")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(fn, "echo @COMMAND@"))
	assert.Contains(t, fn, `echo @COMMAND@ "$@"`)
}
