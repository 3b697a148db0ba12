package state

// GameState represents the current state of the game loop
type GameState int

const (
	StateRunning GameState = iota
	StateStopped
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
