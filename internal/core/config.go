package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Simulation tick interval; 0 means the mode's default
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    0,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle stage of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
	Paused    bool
	NewBest   bool // Score beat the previous best when the run ended
}

// Over reports whether the run has ended.
func (s GameState) Over() bool {
	return s.Phase == PhaseGameOver
}

// Ticking reports whether the simulation loop should be advancing.
func (s GameState) Ticking() bool {
	return s.Phase == PhaseRunning && !s.Paused
}

// StepResult is returned after each tick or handled input event.
type StepResult struct {
	State GameState
	Ended bool // This call moved the game into GameOver
}
