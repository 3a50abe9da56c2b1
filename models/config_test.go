package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningMode_StringParseRoundTrip(t *testing.T) {
	tests := []struct {
		mode RunningMode
		name string
	}{
		{Dev, "Dev"},
		{Stage, "Stage"},
		{Prod, "Prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.mode.String())

			parsed, err := ParseRunningMode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, parsed)
		})
	}
}

func TestRunningMode_Ordinals(t *testing.T) {
	assert.Equal(t, RunningMode(0), Dev)
	assert.Equal(t, RunningMode(1), Stage)
	assert.Equal(t, RunningMode(2), Prod)
}

func TestRunningMode_Unknown(t *testing.T) {
	m := RunningMode(7)

	assert.False(t, m.Valid())
	assert.Equal(t, "RunningMode(7)", m.String())

	_, err := m.MarshalText()
	assert.True(t, errors.Is(err, ErrUnknownRunningMode))
}

func TestParseRunningMode_IsCaseSensitive(t *testing.T) {
	_, err := ParseRunningMode("prod")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRunningMode))
}

func TestRunningMode_UnmarshalText(t *testing.T) {
	var m RunningMode

	require.NoError(t, m.UnmarshalText([]byte("Stage")))
	assert.Equal(t, Stage, m)

	assert.Error(t, m.UnmarshalText([]byte("Canary")))
	assert.Equal(t, Stage, m, "failed unmarshal must not modify the value")
}

func TestNodeRequest_All(t *testing.T) {
	assert.True(t, NodeRequest{}.All())
	assert.True(t, NodeRequest{RequestedNames: []string{}}.All())
	assert.False(t, NodeRequest{RequestedNames: []string{"a"}}.All())
}
