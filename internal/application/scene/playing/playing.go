// Package playing implements the Playing scene, the only scene of the
// ebiten backend: it feeds keyboard input to a session and draws it.
package playing

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tilegrid/internal/application/scene"
	"github.com/younwookim/tilegrid/internal/application/session"
	"github.com/younwookim/tilegrid/internal/infrastructure/ebitenio"
)

// Playing drives a session from ebiten's update and draw callbacks
type Playing struct {
	session *session.Session
	input   session.InputSource
	logger  *log.Logger
	frames  int
}

// New creates the Playing scene.
// input is polled once per Update; pass ebitenio.NewInput() for the keyboard.
func New(s *session.Session, input session.InputSource, logger *log.Logger) *Playing {
	return &Playing{
		session: s,
		input:   input,
		logger:  logger,
	}
}

// Update applies the input of this tick. Once the session has stopped it
// returns ebiten.Termination so RunGame returns cleanly.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.session.HandleEvents(p.input.Poll())
	if !p.session.Running() {
		return nil, ebiten.Termination
	}
	p.frames++
	return nil, nil
}

// Draw presents the current session state on screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.session.DrawFrame(ebitenio.NewSurface(screen))
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	pg := p.session.Playground()
	p.logger.Info("playing", "width", pg.Width(), "height", pg.Height(), "spawn", p.session.PlayerPos())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.logger.Info("stopped", "frames", p.frames, "position", p.session.PlayerPos())
}

// Session returns the driven session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Frames returns the number of updates processed while running
func (p *Playing) Frames() int {
	return p.frames
}
