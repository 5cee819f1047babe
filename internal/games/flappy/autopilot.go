package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Autopilot steers the bird toward the gap of the next obstacle. It drives
// headless runs and demos; it is not guaranteed to survive every layout.
type Autopilot struct {
	cfg config.FlappyConfig
}

// NewAutopilot creates an autopilot for a mode's configuration.
func NewAutopilot(cfg config.FlappyConfig) *Autopilot {
	return &Autopilot{cfg: cfg}
}

// Next returns the input events to apply before the next tick.
// Nothing is returned unless the run is live.
func (a *Autopilot) Next(st State) []core.Event {
	if st.Phase != core.PhaseRunning || st.Paused {
		return nil
	}

	top, bottom := a.target(st)
	if a.cfg.HoldToMove() {
		return a.steer(st, top, bottom)
	}
	return a.flap(st, bottom)
}

// target returns the band the bird should stay in: the gap of the first
// obstacle not yet behind the bird, or the middle of the field.
func (a *Autopilot) target(st State) (top, bottom int) {
	birdX := a.cfg.Bird.X
	next := -1
	for i, o := range st.Obstacles {
		if o.X+a.cfg.Obstacles.Width <= birdX {
			continue
		}
		if next < 0 || o.X < st.Obstacles[next].X {
			next = i
		}
	}

	if next < 0 {
		mid := a.cfg.Field.Height / 2
		return mid - a.cfg.Bird.Size, mid + a.cfg.Bird.Size
	}
	o := st.Obstacles[next]
	return o.GapY, o.GapBottom()
}

// flap jumps when the bird is about to sink below the band, unless the
// jump would throw it out of the field.
func (a *Autopilot) flap(st State, bottom int) []core.Event {
	p := a.cfg.Physics
	margin := 2 * p.Gravity
	if st.BirdY+a.cfg.Bird.Size+p.Gravity < bottom-margin {
		return nil
	}
	if st.BirdY-p.JumpImpulse < a.cfg.Field.TopLimit {
		return nil
	}
	return []core.Event{core.Press(core.ActionJump)}
}

// steer holds up or down until the bird's center is within one step of the
// band's center, pressing and releasing only on change.
func (a *Autopilot) steer(st State, top, bottom int) []core.Event {
	step := a.cfg.Physics.MoveStep
	center := st.BirdY + a.cfg.Bird.Size/2
	goal := (top + bottom) / 2

	wantUp := center > goal+step
	wantDown := center < goal-step

	var events []core.Event
	events = toggle(events, core.ActionUp, st.Hold.Up, wantUp)
	events = toggle(events, core.ActionDown, st.Hold.Down, wantDown)
	return events
}

func toggle(events []core.Event, a core.Action, held, want bool) []core.Event {
	switch {
	case want && !held:
		return append(events, core.Press(a))
	case !want && held:
		return append(events, core.Release(a))
	}
	return events
}
