package cli_test

import (
	"testing"

	"github.com/hbjs97/shw/internal/cli"
	"github.com/stretchr/testify/assert"
)

func TestMaskSecrets_BearerToken(t *testing.T) {
	got := cli.MaskSecrets("Authorization: Bearer abcdef1234567890")
	assert.Equal(t, "Authorization: Bearer ****", got)
}

func TestMaskSecrets_ConfigKey(t *testing.T) {
	got := cli.MaskSecrets(`api_key = "supersecretvalue"`)
	assert.Equal(t, `api_key = "****"`, got)
}

func TestMaskSecrets_ShortValuesUntouched(t *testing.T) {
	// 8자 미만은 secret으로 보지 않는다.
	assert.Equal(t, "Bearer abc", cli.MaskSecrets("Bearer abc"))
}

func TestMaskSecrets_PlainTextUntouched(t *testing.T) {
	msg := "Local REST API 연결 성공 (port 27124)"
	assert.Equal(t, msg, cli.MaskSecrets(msg))
}
