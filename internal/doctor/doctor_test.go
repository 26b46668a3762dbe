package doctor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/doctor"
	"github.com/hbjs97/shw/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultByName(results []doctor.DiagResult, name string) (doctor.DiagResult, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return doctor.DiagResult{}, false
}

func TestCheckBinaries_AllPresent(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.DefaultResponse = &testutil.Response{Output: []byte("version 1.0\nextra line\n")}

	results := doctor.CheckBinaries(context.Background(), fake)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, r.Name)
	}

	zsh, ok := resultByName(results, "zsh")
	require.True(t, ok)
	assert.Equal(t, "version 1.0", zsh.Message, "첫 줄만 보고한다")
}

func TestCheckBinaries_MissingIsWarn(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.DefaultResponse = &testutil.Response{Output: []byte("ok")}
	fake.Register("kdotool --version", "", assert.AnError)

	results := doctor.CheckBinaries(context.Background(), fake)
	kdotool, ok := resultByName(results, "kdotool")
	require.True(t, ok)
	assert.Equal(t, doctor.StatusWarn, kdotool.Status)
	assert.NotEmpty(t, kdotool.Fix)
}

func TestCheckConfig_Missing(t *testing.T) {
	res := doctor.CheckConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, doctor.StatusWarn, res.Status)
	assert.Contains(t, res.Fix, "shw setup")
}

func TestCheckConfig_BadPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	res := doctor.CheckConfig(path)
	assert.Equal(t, doctor.StatusWarn, res.Status)
	assert.Contains(t, res.Fix, "chmod 600")
}

func TestCheckConfig_Invalid(t *testing.T) {
	path := testutil.TempConfigFile(t, "broken = = =")

	res := doctor.CheckConfig(path)
	assert.Equal(t, doctor.StatusFail, res.Status)
}

func TestCheckConfig_OK(t *testing.T) {
	path := testutil.SetupTestConfig(t)

	res := doctor.CheckConfig(path)
	assert.Equal(t, doctor.StatusOK, res.Status)
}

func TestCheckObsidian_NoKeyIsWarn(t *testing.T) {
	res := doctor.CheckObsidian(context.Background(), config.Obsidian{})
	assert.Equal(t, doctor.StatusWarn, res.Status)
}

func TestCheckObsidian_UnreachableIsFail(t *testing.T) {
	// 닫힌 포트로 연결을 시도한다.
	res := doctor.CheckObsidian(context.Background(), config.Obsidian{APIKey: "key", Port: 1})
	assert.Equal(t, doctor.StatusFail, res.Status)
}

func TestRunAll_IncludesAllSections(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.DefaultResponse = &testutil.Response{Output: []byte("ok")}
	path := testutil.SetupTestConfig(t)

	results := doctor.RunAll(context.Background(), fake, path)

	_, hasConfig := resultByName(results, "config")
	assert.True(t, hasConfig)
	_, hasObsidian := resultByName(results, "obsidian")
	assert.True(t, hasObsidian)
	_, hasZsh := resultByName(results, "zsh")
	assert.True(t, hasZsh)
}
