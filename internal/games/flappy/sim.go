package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GapSource draws the random gap positions. *rand.Rand satisfies it; tests
// inject a deterministic source.
type GapSource interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Sim holds the fixed rules of a mode: configuration, difficulty curve and
// the random source for gap positions. All game data lives in State.
type Sim struct {
	cfg  config.FlappyConfig
	diff *config.DifficultyManager
	gaps GapSource
}

// NewSim creates a simulation for cfg drawing gaps from gaps.
func NewSim(cfg config.FlappyConfig, gaps GapSource) *Sim {
	return &Sim{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		gaps: gaps,
	}
}

// Config returns the configuration the simulation runs with.
func (s *Sim) Config() config.FlappyConfig {
	return s.cfg
}

// NewState returns a NotStarted state with the bird at its start position
// and obstacles at their initial spawn positions.
func (s *Sim) NewState(highScore int) State {
	st := State{
		Phase:     core.PhaseNotStarted,
		BirdY:     s.cfg.Bird.StartY,
		HighScore: highScore,
	}

	o := s.cfg.Obstacles
	if o.Recycle {
		st.Obstacles = make([]Obstacle, 0, o.Count)
		for i := 0; i < o.Count; i++ {
			st.Obstacles = append(st.Obstacles, s.spawn(o.SpawnX+i*o.Spacing, 0, 0))
		}
	}
	return st
}

// BirdRect returns the bird's hitbox.
func (s *Sim) BirdRect(st State) core.Rect {
	return core.NewRect(s.cfg.Bird.X, st.BirdY, s.cfg.Bird.Size, s.cfg.Bird.Size)
}

// Start moves a NotStarted or GameOver state to Running. Starting from
// GameOver is a restart: bird, score and obstacles go back to their initial
// state, and only the high score carries over.
func (s *Sim) Start(st State) State {
	switch st.Phase {
	case core.PhaseNotStarted:
		next := st.clone()
		next.Phase = core.PhaseRunning
		return next
	case core.PhaseGameOver:
		next := s.NewState(st.HighScore)
		next.Phase = core.PhaseRunning
		return next
	default:
		return st
	}
}

// Jump applies one upward impulse while Running. The new position is
// evaluated right away, so a jump past the top limit ends the run.
func (s *Sim) Jump(st State) State {
	if st.Phase != core.PhaseRunning || st.Paused || s.cfg.Physics.JumpImpulse == 0 {
		return st
	}
	next := st.clone()
	next.BirdY -= s.cfg.Physics.JumpImpulse
	return s.evaluate(next)
}

// Hold sets or clears a movement flag. Only ActionUp and ActionDown are
// meaningful; other actions return st unchanged.
func (s *Sim) Hold(st State, a core.Action, pressed bool) State {
	next := st
	switch a {
	case core.ActionUp:
		next.Hold.Up = pressed
	case core.ActionDown:
		next.Hold.Down = pressed
	}
	return next
}

// TogglePause pauses or resumes a running game.
func (s *Sim) TogglePause(st State) State {
	if st.Phase != core.PhaseRunning {
		return st
	}
	next := st
	next.Paused = !next.Paused
	return next
}

// Advance runs one tick: bird movement, obstacle movement, obstacle
// recycling or spawning, then the collision check. It is a no-op unless the
// state is Running and not paused.
func (s *Sim) Advance(st State) State {
	if st.Phase != core.PhaseRunning || st.Paused {
		return st
	}

	next := st.clone()
	next.Tick++

	next.BirdY = s.moveBird(next)

	speed := s.diff.Speed(s.cfg.Physics.PipeSpeed, next.Score, next.Tick)
	for i := range next.Obstacles {
		next.Obstacles[i].X -= speed
	}

	if s.cfg.Obstacles.Recycle {
		s.recycle(&next)
	} else {
		s.stream(&next)
	}

	return s.evaluate(next)
}

func (s *Sim) moveBird(st State) int {
	p := s.cfg.Physics
	y := st.BirdY + p.Gravity

	if p.MoveStep > 0 {
		if st.Hold.Up {
			y -= p.MoveStep
		}
		if st.Hold.Down {
			y += p.MoveStep
		}
		if p.Clamp {
			y = core.Clamp(y, s.cfg.Field.TopLimit, s.cfg.Field.Height-s.cfg.Bird.Size)
		}
	}
	return y
}

// evaluate runs the collision detector and applies its outcome.
func (s *Sim) evaluate(st State) State {
	c := Detect(s.BirdRect(st), st.Obstacles, s.cfg.Obstacles.Width, s.cfg.Field)
	if c.Hit {
		return s.end(st)
	}

	for _, i := range c.Passed {
		st.Obstacles[i].Passed = true
		if !s.cfg.Obstacles.Recycle {
			st.Score++
		}
	}
	return st
}

// end moves the state to GameOver and settles the high score. The score is
// left as reached so the game-over banner can show it; Start zeroes it, so
// a new run always begins from 0.
func (s *Sim) end(st State) State {
	st.Phase = core.PhaseGameOver
	st.Hold = Hold{}
	st.Paused = false
	st.NewBest = st.Score > st.HighScore
	if st.NewBest {
		st.HighScore = st.Score
	}
	return st
}
