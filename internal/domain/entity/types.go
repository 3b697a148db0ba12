package entity

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for grid lookups outside the playground.
var ErrOutOfRange = errors.New("tile coordinate out of range")

// ErrInvalidPlayground is returned when playground dimensions do not match its tiles.
var ErrInvalidPlayground = errors.New("invalid playground")

// TileKind represents the type of a tile
type TileKind int

const (
	TileEmpty TileKind = iota
	TileFloor
	TileWall
)

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Tile represents a single cell of the playground.
// Color is meaningless for empty tiles.
type Tile struct {
	Kind  TileKind
	Color Color
}

// EmptyTile returns a tile that is never drawn
func EmptyTile() Tile {
	return Tile{Kind: TileEmpty}
}

// FloorTile returns a walkable tile of the given color
func FloorTile(c Color) Tile {
	return Tile{Kind: TileFloor, Color: c}
}

// WallTile returns an obstacle tile of the given color
func WallTile(c Color) Tile {
	return Tile{Kind: TileWall, Color: c}
}

// Paint returns the tile's color and whether the tile is drawn at all
func (t Tile) Paint() (Color, bool) {
	switch t.Kind {
	case TileFloor, TileWall:
		return t.Color, true
	default:
		return 0, false
	}
}

// String returns e.g. "Wall(#0000FF)" or "Empty"
func (t Tile) String() string {
	if c, ok := t.Paint(); ok {
		return fmt.Sprintf("%s(%s)", t.Kind, c)
	}
	return t.Kind.String()
}

// OutOfRangeError reports a lookup outside the playground bounds.
type OutOfRangeError struct {
	Col, Row      int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("tile (%d,%d) outside %dx%d grid", e.Col, e.Row, e.Width, e.Height)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// Scale is the pixel size of one tile at a given output resolution.
// It is derived every frame and never stored.
type Scale struct {
	TileW int
	TileH int
}

// Playground is the immutable tile grid, stored row-major.
type Playground struct {
	width  int
	height int
	tiles  []Tile
}

// NewPlayground creates a playground from row-major tiles.
// The tiles slice is copied so the playground cannot be mutated afterwards.
func NewPlayground(width, height int, tiles []Tile) (*Playground, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidPlayground, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d grid", ErrInvalidPlayground, len(tiles), width, height)
	}

	owned := make([]Tile, len(tiles))
	copy(owned, tiles)

	return &Playground{
		width:  width,
		height: height,
		tiles:  owned,
	}, nil
}

// Width returns the number of columns
func (p *Playground) Width() int {
	return p.width
}

// Height returns the number of rows
func (p *Playground) Height() int {
	return p.height
}

// Len returns the number of tiles (width * height)
func (p *Playground) Len() int {
	return len(p.tiles)
}

// InBounds reports whether (col, row) addresses a tile
func (p *Playground) InBounds(col, row int) bool {
	return col >= 0 && col < p.width && row >= 0 && row < p.height
}

// TileAt returns the tile at the given column and row
func (p *Playground) TileAt(col, row int) (Tile, error) {
	if !p.InBounds(col, row) {
		return Tile{}, &OutOfRangeError{Col: col, Row: row, Width: p.width, Height: p.height}
	}
	return p.tiles[row*p.width+col], nil
}

// Passable reports whether a player may stand on (col, row).
// Anything outside the grid and every wall is impassable.
func (p *Playground) Passable(col, row int) bool {
	tile, err := p.TileAt(col, row)
	if err != nil {
		return false
	}
	return tile.Kind != TileWall
}

// ScaleFactor returns the tile size in pixels for an output of outW x outH.
// Integer division: an output smaller than the grid yields zero-sized tiles.
func (p *Playground) ScaleFactor(outW, outH int) Scale {
	if outW < 0 {
		outW = 0
	}
	if outH < 0 {
		outH = 0
	}
	return Scale{
		TileW: outW / p.width,
		TileH: outH / p.height,
	}
}

// Each calls fn for every tile in row-major order
func (p *Playground) Each(fn func(col, row int, tile Tile)) {
	for i, tile := range p.tiles {
		fn(i%p.width, i/p.width, tile)
	}
}
