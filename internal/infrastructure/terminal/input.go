package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tilegrid/internal/application/system"
)

// keyMap maps tcell special keys to backend-independent keys
var keyMap = map[tcell.Key]system.Key{
	tcell.KeyEscape: system.KeyEscape,
	tcell.KeyLeft:   system.KeyLeft,
	tcell.KeyRight:  system.KeyRight,
	tcell.KeyUp:     system.KeyUp,
	tcell.KeyDown:   system.KeyDown,
}

// runeMap maps character keys to backend-independent keys
var runeMap = map[rune]system.Key{
	'a': system.KeyA, 'A': system.KeyA,
	'd': system.KeyD, 'D': system.KeyD,
	'w': system.KeyW, 'W': system.KeyW,
	's': system.KeyS, 'S': system.KeyS,
}

// TranslateKey converts a tcell key event to an input event.
// Ctrl+C and 'q' request quit; unmapped keys become KeyUnknown presses.
func TranslateKey(key tcell.Key, ch rune) system.Event {
	switch key {
	case tcell.KeyCtrlC:
		return system.QuitEvent()
	case tcell.KeyRune:
		if ch == 'q' || ch == 'Q' {
			return system.QuitEvent()
		}
		if k, ok := runeMap[ch]; ok {
			return system.KeyPress(k)
		}
		return system.KeyPress(system.KeyUnknown)
	}

	if k, ok := keyMap[key]; ok {
		return system.KeyPress(k)
	}
	return system.KeyPress(system.KeyUnknown)
}

// Input drains pending terminal events without blocking
type Input struct {
	screen *Screen
}

// NewInput creates an input source reading from s
func NewInput(s *Screen) *Input {
	return &Input{screen: s}
}

// Poll returns the key events queued since the last poll.
// Resize events resync the screen and produce no input.
func (in *Input) Poll() []system.Event {
	var events []system.Event
	for in.screen.screen.HasPendingEvent() {
		switch ev := in.screen.screen.PollEvent().(type) {
		case *tcell.EventKey:
			events = append(events, TranslateKey(ev.Key(), ev.Rune()))
		case *tcell.EventResize:
			in.screen.Sync()
		case nil:
			// screen finalized
			return events
		}
	}
	return events
}
