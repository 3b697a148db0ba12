package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilegrid/internal/domain/entity"
)

func TestNewInputSystem(t *testing.T) {
	t.Run("nil selects default bindings", func(t *testing.T) {
		sys := NewInputSystem(nil)

		require.NotNil(t, sys)
		assert.Equal(t, DefaultBindings(), sys.bindings)
	})

	t.Run("custom bindings", func(t *testing.T) {
		bindings := map[Key]entity.Direction{KeyW: entity.DirDown}
		sys := NewInputSystem(bindings)

		assert.Equal(t, MoveIntent{Direction: entity.DirDown}, sys.Translate(KeyPress(KeyW)))
		assert.Nil(t, sys.Translate(KeyPress(KeyLeft)))
	})
}

func TestInputSystem_Translate(t *testing.T) {
	sys := NewInputSystem(nil)

	tests := []struct {
		name  string
		event Event
		want  Intent
	}{
		{"quit event", QuitEvent(), QuitIntent{}},
		{"escape key", KeyPress(KeyEscape), QuitIntent{}},
		{"left arrow", KeyPress(KeyLeft), MoveIntent{Direction: entity.DirLeft}},
		{"right arrow", KeyPress(KeyRight), MoveIntent{Direction: entity.DirRight}},
		{"up arrow", KeyPress(KeyUp), MoveIntent{Direction: entity.DirUp}},
		{"down arrow", KeyPress(KeyDown), MoveIntent{Direction: entity.DirDown}},
		{"A", KeyPress(KeyA), MoveIntent{Direction: entity.DirLeft}},
		{"D", KeyPress(KeyD), MoveIntent{Direction: entity.DirRight}},
		{"W", KeyPress(KeyW), MoveIntent{Direction: entity.DirUp}},
		{"S", KeyPress(KeyS), MoveIntent{Direction: entity.DirDown}},
		{"unknown key", KeyPress(KeyUnknown), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.Translate(tt.event))
		})
	}
}

func TestInputSystem_Intents(t *testing.T) {
	sys := NewInputSystem(nil)

	intents := sys.Intents([]Event{
		KeyPress(KeyRight),
		KeyPress(KeyUnknown),
		KeyPress(KeyDown),
		QuitEvent(),
	})

	assert.Equal(t, []Intent{
		MoveIntent{Direction: entity.DirRight},
		MoveIntent{Direction: entity.DirDown},
		QuitIntent{},
	}, intents)

	assert.Empty(t, sys.Intents(nil))
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Left", KeyLeft.String())
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "Unknown", KeyUnknown.String())
	assert.Equal(t, "Unknown", Key(99).String())
}
