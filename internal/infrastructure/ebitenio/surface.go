// Package ebitenio adapts ebiten's screen image and keyboard to the session's
// Surface and InputSource.
package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// Surface draws onto the screen image handed to ebiten.Game.Draw
type Surface struct {
	screen *ebiten.Image
}

// NewSurface wraps the frame's screen image
func NewSurface(screen *ebiten.Image) *Surface {
	return &Surface{screen: screen}
}

// Size returns the screen image size in pixels
func (s *Surface) Size() (w, h int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole screen
func (s *Surface) Clear(c entity.Color) {
	s.screen.Fill(c.RGBA())
}

// FillRect draws a filled rectangle
func (s *Surface) FillRect(r system.Rect, c entity.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	ebitenutil.DrawRect(s.screen, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), c.RGBA())
}

// OutlineRect draws a one-pixel border inside r
func (s *Surface) OutlineRect(r system.Rect, c entity.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.W), float64(r.H)
	clr := c.RGBA()

	ebitenutil.DrawRect(s.screen, x, y, w, 1, clr)
	ebitenutil.DrawRect(s.screen, x, y+h-1, w, 1, clr)
	ebitenutil.DrawRect(s.screen, x, y, 1, h, clr)
	ebitenutil.DrawRect(s.screen, x+w-1, y, 1, h, clr)
}

// Present is a no-op: ebiten presents the screen after Draw returns
func (s *Surface) Present() {}
