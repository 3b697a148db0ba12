package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_Offset(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{Direction(42), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Offset()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestPlayer_Move(t *testing.T) {
	t.Run("left decrements column only", func(t *testing.T) {
		p := NewPlayer(GridPos{Col: 3, Row: 2})
		p.Move(DirLeft)
		assert.Equal(t, GridPos{Col: 2, Row: 2}, p.Pos)
	})

	t.Run("each direction moves exactly one tile", func(t *testing.T) {
		p := NewPlayer(GridPos{Col: 5, Row: 5})

		p.Move(DirRight)
		assert.Equal(t, GridPos{Col: 6, Row: 5}, p.Pos)
		p.Move(DirDown)
		assert.Equal(t, GridPos{Col: 6, Row: 6}, p.Pos)
		p.Move(DirLeft)
		assert.Equal(t, GridPos{Col: 5, Row: 6}, p.Pos)
		p.Move(DirUp)
		assert.Equal(t, GridPos{Col: 5, Row: 5}, p.Pos)
	})

	t.Run("none is a no-op", func(t *testing.T) {
		p := NewPlayer(GridPos{Col: 1, Row: 1})
		p.Move(DirNone)
		assert.Equal(t, GridPos{Col: 1, Row: 1}, p.Pos)
	})

	t.Run("unconditional at this layer", func(t *testing.T) {
		p := NewPlayer(GridPos{Col: 0, Row: 0})
		p.Move(DirLeft)
		assert.Equal(t, GridPos{Col: -1, Row: 0}, p.Pos)
	})
}

func TestGridPos_String(t *testing.T) {
	assert.Equal(t, "(1,2)", GridPos{Col: 1, Row: 2}.String())
}
