package state

// LevelStatus is the termination state of a running level
type LevelStatus int

const (
	Running LevelStatus = iota
	Complete
	Failed
)

// String returns the string representation of the level status
func (s LevelStatus) String() string {
	switch s {
	case Running:
		return "Running"
	case Complete:
		return "Complete"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Finished reports whether the level has ended either way
func (s LevelStatus) Finished() bool {
	return s == Complete || s == Failed
}

// GameState represents the current state of the playing screen
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateLevelClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelClear:
		return "LevelClear"
	default:
		return "Unknown"
	}
}

// FromStatus maps a level status and the pause flag to a screen state
func FromStatus(status LevelStatus, paused bool) GameState {
	switch status {
	case Complete:
		return StateLevelClear
	case Failed:
		return StateGameOver
	}
	if paused {
		return StatePaused
	}
	return StatePlaying
}
