package wrapper_test

import (
	"testing"

	"github.com/hbjs97/shw/internal/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpec_CopiesCommand(t *testing.T) {
	command := []string{"echo", "hi"}
	spec, err := wrapper.NewSpec("hello", command)
	require.NoError(t, err)

	command[1] = "mutated"
	assert.Equal(t, []string{"echo", "hi"}, spec.Command)
}

func TestNewSpec_EmptyCommand(t *testing.T) {
	_, err := wrapper.NewSpec("hello", nil)
	assert.ErrorIs(t, err, wrapper.ErrInvalidArguments)
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"gw", true},
		{"my_wrapper", true},
		{"my-wrapper", true},
		{"_hidden", true},
		{"W2", true},
		{"", false},
		{"2fast", false},
		{"has space", false},
		{"semi;colon", false},
		{"-leading-dash", false},
		{"dot.name", false},
	}
	for _, tc := range cases {
		err := wrapper.ValidateName(tc.name)
		if tc.valid {
			assert.NoError(t, err, "name=%q", tc.name)
		} else {
			assert.ErrorIs(t, err, wrapper.ErrInvalidArguments, "name=%q", tc.name)
		}
	}
}
