package entity

import "fmt"

// Direction represents one of the four cardinal moves
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Offset returns the one-tile displacement for the direction.
// Rows grow downwards.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// GridPos is a (column, row) coordinate in tile units
type GridPos struct {
	Col int
	Row int
}

// Add returns the position displaced by one tile in direction d
func (p GridPos) Add(d Direction) GridPos {
	dx, dy := d.Offset()
	return GridPos{Col: p.Col + dx, Row: p.Row + dy}
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Player holds the player's grid position
type Player struct {
	Pos GridPos
}

// NewPlayer creates a player standing on the spawn cell
func NewPlayer(spawn GridPos) *Player {
	return &Player{Pos: spawn}
}

// Move displaces the player by exactly one tile.
// It does not consult the playground; see system.MovementSystem for rules.
func (p *Player) Move(d Direction) {
	p.Pos = p.Pos.Add(d)
}
