package tui

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Terminals deliver key repeats but never key-ups. A held key is considered
// released once no repeat arrived within the grace period. The first press
// gets a longer grace to cover the terminal's initial repeat delay.
const (
	initialHoldGrace = 500 * time.Millisecond
	repeatHoldGrace  = 120 * time.Millisecond
)

// holdActions are the actions tracked for hold-to-move, in release order.
var holdActions = [...]core.Action{core.ActionUp, core.ActionDown}

// HoldTracker synthesizes key-up events for held movement keys.
// Time is counted in simulation ticks so behavior is deterministic.
type HoldTracker struct {
	initial int
	repeat  int
	left    [len(holdActions)]int // Ticks until release; 0 = not held
}

// NewHoldTracker creates a tracker for a loop ticking every tick.
func NewHoldTracker(tick time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: ticksFor(initialHoldGrace, tick),
		repeat:  ticksFor(repeatHoldGrace, tick),
	}
}

func ticksFor(d, tick time.Duration) int {
	if tick <= 0 {
		return 1
	}
	return max(int((d+tick-1)/tick), 1)
}

func holdIndex(a core.Action) int {
	for i, h := range holdActions {
		if h == a {
			return i
		}
	}
	return -1
}

// Press records a key event for a. It reports whether this is a new press
// (as opposed to a repeat) and returns actions that must be released
// first: pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action) (fresh bool, released []core.Action) {
	i := holdIndex(a)
	if i < 0 {
		return false, nil
	}

	if h.left[i] > 0 {
		h.left[i] = max(h.left[i], h.repeat)
		return false, nil
	}

	for j := range h.left {
		if j != i && h.left[j] > 0 {
			h.left[j] = 0
			released = append(released, holdActions[j])
		}
	}
	h.left[i] = h.initial
	return true, released
}

// Tick advances one simulation tick and returns the actions whose grace
// period ran out.
func (h *HoldTracker) Tick() []core.Action {
	var released []core.Action
	for i := range h.left {
		if h.left[i] == 0 {
			continue
		}
		h.left[i]--
		if h.left[i] == 0 {
			released = append(released, holdActions[i])
		}
	}
	return released
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	i := holdIndex(a)
	return i >= 0 && h.left[i] > 0
}

// Clear forgets all held keys without reporting releases.
func (h *HoldTracker) Clear() {
	h.left = [len(holdActions)]int{}
}
