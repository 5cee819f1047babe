// Package loop decides when the simulation advances. Frame-driven
// platforms feed elapsed time into an Accumulator; timer-driven ones use Run.
package loop

import "time"

// DefaultMaxSteps caps the ticks one frame may run.
const DefaultMaxSteps = 5

// Accumulator converts variable frame times into whole fixed ticks.
// Leftover time carries over to the next frame. When a frame would need
// more than MaxSteps ticks the backlog is dropped, so a stalled window
// does not replay seconds of play at once.
type Accumulator struct {
	Tick     time.Duration
	MaxSteps int

	acc time.Duration
}

// NewAccumulator creates an accumulator for the given tick.
func NewAccumulator(tick time.Duration) *Accumulator {
	return &Accumulator{Tick: tick, MaxSteps: DefaultMaxSteps}
}

// Add feeds elapsed frame time and returns how many ticks to run now.
func (a *Accumulator) Add(elapsed time.Duration) int {
	if a.Tick <= 0 || elapsed <= 0 {
		return 0
	}

	a.acc += elapsed
	steps := int(a.acc / a.Tick)
	a.acc -= time.Duration(steps) * a.Tick

	if a.MaxSteps > 0 && steps > a.MaxSteps {
		steps = a.MaxSteps
		a.acc = 0
	}
	return steps
}

// Reset discards accumulated time, e.g. after a pause.
func (a *Accumulator) Reset() {
	a.acc = 0
}

// Pending returns the accumulated time not yet consumed by a tick.
func (a *Accumulator) Pending() time.Duration {
	return a.acc
}
