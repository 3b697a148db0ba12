// Package session owns one game session: the world state, the systems that
// act on it, and the Running/Stopped state machine.
//
// Backends drive a Session either through Loop (fixed-cadence loop with its
// own sleep) or by calling HandleEvents and DrawFrame from their own loop.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/tilegrid/internal/application/state"
	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// Surface is the drawing collaborator a frame is presented on.
type Surface interface {
	system.Canvas

	// Size returns the current output size in pixels.
	Size() (w, h int)
	// Clear fills the whole frame with c.
	Clear(c entity.Color)
	// Present makes the frame visible.
	Present()
}

// InputSource delivers the input events pending since the last poll.
// Poll must not block.
type InputSource interface {
	Poll() []system.Event
}

// Options configures a session
type Options struct {
	Palette  entity.Palette
	Rules    system.MovementRules
	Bindings map[system.Key]entity.Direction // nil = system.DefaultBindings
}

// DefaultOptions returns the default palette, movement rules and key bindings
func DefaultOptions() Options {
	return Options{
		Palette: entity.DefaultPalette(),
		Rules:   system.DefaultMovementRules(),
	}
}

// Session holds the playground, the player and the loop state
type Session struct {
	playground *entity.Playground
	player     *entity.Player
	input      *system.InputSystem
	movement   *system.MovementSystem
	renderer   *system.Renderer
	background entity.Color
	state      state.GameState
	logger     *log.Logger
}

// New creates a running session from a parsed map
func New(m *system.MapResult, opts Options, logger *log.Logger) *Session {
	return &Session{
		playground: m.Playground,
		player:     entity.NewPlayer(m.Spawn),
		input:      system.NewInputSystem(opts.Bindings),
		movement:   system.NewMovementSystem(opts.Rules, m.Playground),
		renderer:   system.NewRenderer(opts.Palette.Player),
		background: opts.Palette.Background,
		state:      state.StateRunning,
		logger:     logger,
	}
}

// State returns the loop state
func (s *Session) State() state.GameState {
	return s.state
}

// Running reports whether the session has not been stopped
func (s *Session) Running() bool {
	return s.state == state.StateRunning
}

// Stop transitions to Stopped. There is no way back.
func (s *Session) Stop() {
	if s.state == state.StateStopped {
		return
	}
	s.state = state.StateStopped
	s.logger.Debug("session stopped", "position", s.player.Pos)
}

// Playground returns the session's tile grid
func (s *Session) Playground() *entity.Playground {
	return s.playground
}

// PlayerPos returns the player's current grid position
func (s *Session) PlayerPos() entity.GridPos {
	return s.player.Pos
}

// HandleEvents applies a batch of input events in order.
// A quit request stops the session and discards the rest of the batch.
func (s *Session) HandleEvents(events []system.Event) {
	if !s.Running() {
		return
	}

	for _, intent := range s.input.Intents(events) {
		switch in := intent.(type) {
		case system.QuitIntent:
			s.Stop()
			return
		case system.MoveIntent:
			if s.movement.Apply(s.player, in.Direction) {
				s.logger.Debug("player moved", "direction", in.Direction, "position", s.player.Pos)
			}
		}
	}
}

// Frame returns the draw commands for an output of w x h pixels
func (s *Session) Frame(w, h int) []system.DrawCommand {
	return s.renderer.Render(s.playground, s.player, w, h)
}

// DrawFrame clears the surface, draws the current state and presents it
func (s *Session) DrawFrame(surface Surface) {
	w, h := surface.Size()
	surface.Clear(s.background)
	system.Submit(surface, s.Frame(w, h))
	surface.Present()
}
