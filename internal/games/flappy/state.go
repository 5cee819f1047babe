package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Obstacle is a pipe pair: a top segment above the gap and a bottom segment
// below it, stored as one record.
type Obstacle struct {
	X         int  // Left edge in world units
	GapY      int  // Top edge of the gap
	GapHeight int  // Height of the gap, fixed at spawn
	Passed    bool // Already scored
}

// GapBottom returns the y where the bottom segment starts.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.GapHeight
}

// Span returns the obstacle's horizontal extent as a zero-height rect.
func (o Obstacle) Span(width int) core.Rect {
	return core.NewRect(o.X, 0, width, 0)
}

// Gap returns the passable area between the two segments.
func (o Obstacle) Gap(width int) core.Rect {
	return core.NewRect(o.X, o.GapY, width, o.GapHeight)
}

// Hold holds the movement flags of the hold-to-move controls.
type Hold struct {
	Up   bool
	Down bool
}

// State is the whole simulation state. Every operation on Sim takes a State
// and returns the next one; nothing else holds game data.
type State struct {
	Phase     core.Phase
	BirdY     int // Top of the bird's hitbox; X and size are fixed by config
	Obstacles []Obstacle
	Score     int
	HighScore int
	NewBest   bool // The run that just ended set HighScore
	Hold      Hold
	Paused    bool
	Tick      int // Ticks advanced in the current run
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	next := s
	next.Obstacles = make([]Obstacle, len(s.Obstacles))
	copy(next.Obstacles, s.Obstacles)
	return next
}

// Summary returns the platform-facing view of the state.
func (s State) Summary() core.GameState {
	return core.GameState{
		Phase:     s.Phase,
		Score:     s.Score,
		HighScore: s.HighScore,
		Paused:    s.Paused,
		NewBest:   s.NewBest,
	}
}
