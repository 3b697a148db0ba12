package system

import "github.com/younwookim/tilegrid/internal/domain/entity"

// Rect is an axis-aligned pixel rectangle
type Rect struct {
	X, Y int
	W, H int
}

// DrawStyle selects how a rectangle is drawn
type DrawStyle uint8

const (
	StyleFill DrawStyle = 1 << iota
	StyleOutline
)

// DrawCommand is one colored rectangle to draw
type DrawCommand struct {
	Rect  Rect
	Color entity.Color
	Style DrawStyle
}

// Canvas is the part of a drawing surface draw commands are issued to
type Canvas interface {
	FillRect(r Rect, c entity.Color)
	OutlineRect(r Rect, c entity.Color)
}

// Renderer maps playground and player state to draw commands
type Renderer struct {
	playerColor entity.Color
}

// NewRenderer creates a renderer that draws the player in playerColor
func NewRenderer(playerColor entity.Color) *Renderer {
	return &Renderer{playerColor: playerColor}
}

// Render returns the draw commands for one frame at an output of outW x outH.
// Tiles come first in row-major order, the player last so it is drawn on top.
// Render does not mutate its inputs.
func (r *Renderer) Render(pg *entity.Playground, player *entity.Player, outW, outH int) []DrawCommand {
	scale := pg.ScaleFactor(outW, outH)
	cmds := make([]DrawCommand, 0, pg.Len()+1)

	pg.Each(func(col, row int, tile entity.Tile) {
		c, ok := tile.Paint()
		if !ok {
			return
		}
		cmds = append(cmds, DrawCommand{
			Rect:  cellRect(col, row, scale),
			Color: c,
			Style: StyleFill | StyleOutline,
		})
	})

	cmds = append(cmds, DrawCommand{
		Rect:  cellRect(player.Pos.Col, player.Pos.Row, scale),
		Color: r.playerColor,
		Style: StyleFill | StyleOutline,
	})

	return cmds
}

// cellRect converts a grid cell to its pixel rectangle
func cellRect(col, row int, scale entity.Scale) Rect {
	return Rect{
		X: col * scale.TileW,
		Y: row * scale.TileH,
		W: scale.TileW,
		H: scale.TileH,
	}
}

// Submit issues draw commands to a canvas in order
func Submit(canvas Canvas, cmds []DrawCommand) {
	for _, cmd := range cmds {
		if cmd.Style&StyleFill != 0 {
			canvas.FillRect(cmd.Rect, cmd.Color)
		}
		if cmd.Style&StyleOutline != 0 {
			canvas.OutlineRect(cmd.Rect, cmd.Color)
		}
	}
}
