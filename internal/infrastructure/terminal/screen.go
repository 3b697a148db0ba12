// Package terminal is the tcell backend: one character cell is one output
// pixel, tiles become blocks of colored cells.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// Screen adapts a tcell.Screen to a session surface.
// Cells painted by FillRect keep their background when OutlineRect
// draws a border over them.
type Screen struct {
	screen tcell.Screen
	bg     []tcell.Color
	w, h   int
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return Wrap(s), nil
}

// Wrap adapts an initialized tcell screen
func Wrap(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Size returns the terminal size in cells
func (s *Screen) Size() (w, h int) {
	return s.screen.Size()
}

// Clear paints every cell with c
func (s *Screen) Clear(c entity.Color) {
	s.w, s.h = s.screen.Size()
	if cap(s.bg) < s.w*s.h {
		s.bg = make([]tcell.Color, s.w*s.h)
	}
	s.bg = s.bg[:s.w*s.h]

	color := toTCell(c)
	for i := range s.bg {
		s.bg[i] = color
	}
	s.screen.SetStyle(tcell.StyleDefault.Background(color))
	s.screen.Clear()
}

// FillRect paints the cells covered by r with c
func (s *Screen) FillRect(r system.Rect, c entity.Color) {
	color := toTCell(c)
	style := tcell.StyleDefault.Background(color)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if !s.inBounds(x, y) {
				continue
			}
			s.bg[y*s.w+x] = color
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// OutlineRect draws a box border in c along the edge cells of r
func (s *Screen) OutlineRect(r system.Rect, c entity.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	fg := toTCell(c)
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for y := r.Y; y <= bottom; y++ {
		for x := r.X; x <= right; x++ {
			if y != r.Y && y != bottom && x != r.X && x != right {
				continue
			}
			if !s.inBounds(x, y) {
				continue
			}
			style := tcell.StyleDefault.Background(s.bg[y*s.w+x]).Foreground(fg)
			s.screen.SetContent(x, y, borderRune(r, x, y), nil, style)
		}
	}
}

// Present flushes the frame to the terminal
func (s *Screen) Present() {
	s.screen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

// borderRune picks the box-drawing rune for the edge cell (x, y) of r
func borderRune(r system.Rect, x, y int) rune {
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	switch {
	case r.W == 1 && r.H == 1:
		return '□'
	case r.H == 1:
		return '─'
	case r.W == 1:
		return '│'
	case x == r.X && y == r.Y:
		return '┌'
	case x == right && y == r.Y:
		return '┐'
	case x == r.X && y == bottom:
		return '└'
	case x == right && y == bottom:
		return '┘'
	case y == r.Y || y == bottom:
		return '─'
	default:
		return '│'
	}
}

func toTCell(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
