package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tilegrid/internal/application/system"
)

// keyMap maps ebiten keys to backend-independent keys
var keyMap = map[ebiten.Key]system.Key{
	ebiten.KeyEscape:     system.KeyEscape,
	ebiten.KeyArrowLeft:  system.KeyLeft,
	ebiten.KeyArrowRight: system.KeyRight,
	ebiten.KeyArrowUp:    system.KeyUp,
	ebiten.KeyArrowDown:  system.KeyDown,
	ebiten.KeyA:          system.KeyA,
	ebiten.KeyD:          system.KeyD,
	ebiten.KeyW:          system.KeyW,
	ebiten.KeyS:          system.KeyS,
}

// TranslateKey returns the key identity for an ebiten key
func TranslateKey(k ebiten.Key) system.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return system.KeyUnknown
}

// Input reads the keys pressed since the previous tick.
// It must be polled from ebiten.Game.Update.
type Input struct {
	keys []ebiten.Key
}

// NewInput creates a keyboard input source
func NewInput() *Input {
	return &Input{}
}

// Poll returns a quit event when the window is being closed, then one
// key-press event per key pressed this tick
func (in *Input) Poll() []system.Event {
	var events []system.Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, system.QuitEvent())
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		events = append(events, system.KeyPress(TranslateKey(k)))
	}

	return events
}
