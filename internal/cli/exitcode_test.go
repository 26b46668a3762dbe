package cli_test

import (
	"fmt"
	"testing"

	"github.com/hbjs97/shw/internal/cli"
	"github.com/stretchr/testify/assert"
)

func TestMapExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.MapExitCode(nil))
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(assert.AnError))
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(cli.ErrInvalidArguments))
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(cli.ErrNotFound))
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(cli.ErrConfig))
	assert.Equal(t, cli.ExitConfigError,
		cli.MapExitCode(fmt.Errorf("wrapped: %w", cli.ErrConfig)))
}

func TestMapExitCode_StatusError(t *testing.T) {
	assert.Equal(t, cli.ExitCode(7), cli.MapExitCode(&cli.StatusError{Code: 7}))
	assert.Equal(t, cli.ExitCode(2),
		cli.MapExitCode(fmt.Errorf("wrapped: %w", &cli.StatusError{Code: 2})))
}
