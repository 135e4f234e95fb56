// Package state holds the play state of the playing scene.
package state

// GameState represents the current state of the game
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the session advances in this state.
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
