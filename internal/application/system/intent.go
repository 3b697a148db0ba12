package system

import "github.com/younwookim/tilegrid/internal/domain/entity"

// Intent represents an action the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a one-tile movement intention
type MoveIntent struct {
	Direction entity.Direction
}

func (MoveIntent) isIntent() {}

// QuitIntent represents a request to stop the game
type QuitIntent struct{}

func (QuitIntent) isIntent() {}
