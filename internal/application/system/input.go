package system

import "github.com/younwookim/tilegrid/internal/domain/entity"

// Key identifies a physical key, independent of the backend that read it.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
)

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes input events
type EventKind int

const (
	EventKeyPress EventKind = iota
	EventQuit
)

// Event is a single discrete input event delivered by a backend
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyPress returns a key-press event
func KeyPress(k Key) Event {
	return Event{Kind: EventKeyPress, Key: k}
}

// QuitEvent returns a quit-requested event (window closed, Ctrl+C, ...)
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// DefaultBindings maps arrow keys and WASD to directions
func DefaultBindings() map[Key]entity.Direction {
	return map[Key]entity.Direction{
		KeyLeft:  entity.DirLeft,
		KeyRight: entity.DirRight,
		KeyUp:    entity.DirUp,
		KeyDown:  entity.DirDown,
		KeyA:     entity.DirLeft,
		KeyD:     entity.DirRight,
		KeyW:     entity.DirUp,
		KeyS:     entity.DirDown,
	}
}

// InputSystem translates input events into intents
type InputSystem struct {
	bindings map[Key]entity.Direction
}

// NewInputSystem creates a new input system.
// A nil bindings map selects DefaultBindings.
func NewInputSystem(bindings map[Key]entity.Direction) *InputSystem {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputSystem{bindings: bindings}
}

// Translate returns the intent for a single event, or nil if the event is ignored
func (s *InputSystem) Translate(ev Event) Intent {
	switch ev.Kind {
	case EventQuit:
		return QuitIntent{}
	case EventKeyPress:
		if ev.Key == KeyEscape {
			return QuitIntent{}
		}
		if dir, ok := s.bindings[ev.Key]; ok {
			return MoveIntent{Direction: dir}
		}
	}
	return nil
}

// Intents translates a batch of events in order, dropping ignored ones
func (s *InputSystem) Intents(events []Event) []Intent {
	intents := make([]Intent, 0, len(events))
	for _, ev := range events {
		if intent := s.Translate(ev); intent != nil {
			intents = append(intents, intent)
		}
	}
	return intents
}
