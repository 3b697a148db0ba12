package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateRunning, "Running"},
		{StateStopped, "Stopped"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Running must be the zero value so a fresh session starts running
	assert.Equal(t, GameState(0), StateRunning)
	assert.Equal(t, GameState(1), StateStopped)
}
