package session

import (
	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// HeadlessSurface is an off-screen Surface of fixed size.
// It keeps the draw commands of the last presented frame.
type HeadlessSurface struct {
	width, height int
	pending       []system.DrawCommand
	last          []system.DrawCommand
	background    entity.Color
	presented     int
}

// NewHeadlessSurface creates an off-screen surface of w x h pixels
func NewHeadlessSurface(w, h int) *HeadlessSurface {
	return &HeadlessSurface{width: w, height: h}
}

// Size returns the configured size
func (s *HeadlessSurface) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the reported size, as a window resize would
func (s *HeadlessSurface) Resize(w, h int) {
	s.width, s.height = w, h
}

// Clear starts a new frame
func (s *HeadlessSurface) Clear(c entity.Color) {
	s.background = c
	s.pending = s.pending[:0]
}

// FillRect records a filled rectangle
func (s *HeadlessSurface) FillRect(r system.Rect, c entity.Color) {
	s.pending = append(s.pending, system.DrawCommand{Rect: r, Color: c, Style: system.StyleFill})
}

// OutlineRect records an outlined rectangle
func (s *HeadlessSurface) OutlineRect(r system.Rect, c entity.Color) {
	s.pending = append(s.pending, system.DrawCommand{Rect: r, Color: c, Style: system.StyleOutline})
}

// Present publishes the pending frame
func (s *HeadlessSurface) Present() {
	s.last = append(s.last[:0], s.pending...)
	s.presented++
}

// LastFrame returns the operations of the last presented frame
func (s *HeadlessSurface) LastFrame() []system.DrawCommand {
	return s.last
}

// Background returns the clear color of the last frame
func (s *HeadlessSurface) Background() entity.Color {
	return s.background
}

// Presented returns the number of presented frames
func (s *HeadlessSurface) Presented() int {
	return s.presented
}
