package core

import "time"

// RuntimeConfig carries what the platform knows at game start.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	FrameRate int           // Input poll / redraw cadence per second
	Gravity   time.Duration // Interval between gravity ticks
	Seed      int64         // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns the cadence the classic game shipped with.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Gravity:   250 * time.Millisecond,
		Seed:      0,
	}
}

// GameState is the summary the platform polls after every command and tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// EventKind identifies something that happened during a transition.
type EventKind int

const (
	EventPieceLanded EventKind = iota
	EventLinesCleared
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPieceLanded:
		return "PieceLanded"
	case EventLinesCleared:
		return "LinesCleared"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is emitted by a game for the platform to react to (sound, score
// persistence, teardown messages). Count is the number of rows for
// EventLinesCleared; Score is the final score for EventGameOver.
type Event struct {
	Kind  EventKind
	Count int
	Score int
}

// StepResult is returned after applying a frame of input.
type StepResult struct {
	State  GameState
	Events []Event
}
