package wm_test

import (
	"context"
	"testing"

	"github.com/hbjs97/shw/internal/testutil"
	"github.com/hbjs97/shw/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchArgs_NoExtra(t *testing.T) {
	search := wm.ParseSearchArgs("firefox", nil)
	assert.Equal(t, wm.Search{Flag: "--class", Pattern: "firefox"}, search)
}

func TestParseSearchArgs_SingleQuotedArg(t *testing.T) {
	// 단축키 시스템이 검색식 전체를 인자 하나로 전달하는 경우.
	search := wm.ParseSearchArgs("firefox", []string{"--name 'Mozilla Firefox'"})
	assert.Equal(t, wm.Search{Flag: "--name", Pattern: "Mozilla Firefox"}, search)
}

func TestParseSearchArgs_SinglePlainArg(t *testing.T) {
	search := wm.ParseSearchArgs("firefox", []string{"navigator"})
	assert.Equal(t, wm.Search{Flag: "--class", Pattern: "navigator"}, search)
}

func TestParseSearchArgs_FlagAndPattern(t *testing.T) {
	search := wm.ParseSearchArgs("firefox", []string{"--name", "Mozilla", "Firefox"})
	assert.Equal(t, wm.Search{Flag: "--name", Pattern: "Mozilla Firefox"}, search)
}

func TestRunOrRaise_ActivatesExistingWindow(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("kdotool search --class firefox", "{wid-1}\n{wid-2}\n", nil)
	fake.Register("kdotool windowactivate {wid-1}", "", nil)

	m := &wm.Manager{Exec: fake}
	err := m.RunOrRaise(context.Background(), "firefox", wm.Search{Flag: "--class", Pattern: "firefox"})
	require.NoError(t, err)

	assert.True(t, fake.Called("kdotool windowactivate {wid-1}"))
	assert.Empty(t, fake.Started)
}

func TestRunOrRaise_LaunchesWhenNoWindow(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("kdotool search --class firefox", "", nil)

	m := &wm.Manager{Exec: fake}
	err := m.RunOrRaise(context.Background(), "firefox", wm.Search{Flag: "--class", Pattern: "firefox"})
	require.NoError(t, err)

	assert.Equal(t, []string{"kstart --application firefox"}, fake.Started)
}

func TestRunOrRaise_DryRunSkipsSideEffects(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("kdotool search --class firefox", "{wid-1}\n", nil)

	m := &wm.Manager{Exec: fake, DryRun: true}
	err := m.RunOrRaise(context.Background(), "firefox", wm.Search{Flag: "--class", Pattern: "firefox"})
	require.NoError(t, err)

	assert.False(t, fake.Called("kdotool windowactivate"))
}
