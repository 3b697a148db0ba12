package system

import "github.com/younwookim/tilegrid/internal/domain/entity"

// MovementRules controls which moves the movement system rejects
type MovementRules struct {
	ConfineToGrid bool // Reject moves that leave the playground
	BlockWalls    bool // Reject moves into wall tiles
}

// DefaultMovementRules keeps the player on the grid and out of walls
func DefaultMovementRules() MovementRules {
	return MovementRules{
		ConfineToGrid: true,
		BlockWalls:    true,
	}
}

// MovementSystem applies move intents to the player
type MovementSystem struct {
	rules      MovementRules
	playground *entity.Playground
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(rules MovementRules, playground *entity.Playground) *MovementSystem {
	return &MovementSystem{
		rules:      rules,
		playground: playground,
	}
}

// Apply moves the player one tile in dir and reports whether the move was accepted
func (s *MovementSystem) Apply(player *entity.Player, dir entity.Direction) bool {
	if dir == entity.DirNone {
		return false
	}

	target := player.Pos.Add(dir)

	if s.rules.ConfineToGrid && !s.playground.InBounds(target.Col, target.Row) {
		return false
	}

	if s.rules.BlockWalls {
		// Off-grid cells have no tile to collide with
		if tile, err := s.playground.TileAt(target.Col, target.Row); err == nil && tile.Kind == entity.TileWall {
			return false
		}
	}

	player.Move(dir)
	return true
}
