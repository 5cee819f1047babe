// Package registry lets game modes register themselves from init so the
// command-line tools and servers can list and build them by id.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrUnknownGame is wrapped by Create when no mode has the id.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable mode. It owns the simulation only; input mapping,
// timing and display belong to the platform driving it.
type Game interface {
	ID() string
	Title() string

	// Reset puts the game back in its NotStarted state for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Handle applies one input event right away, between ticks.
	Handle(ev core.Event) core.StepResult

	// Step runs one tick. It does nothing unless the game is running and
	// not paused.
	Step() core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// HighScoreKeeper is a game that displays a persisted best. Platforms seed
// it after Reset.
type HighScoreKeeper interface {
	SetHighScore(best int)
}

// Ticker is a game with its own tick interval.
type Ticker interface {
	TickInterval() time.Duration
}

// HoldController is a game steered by held directions. Platforms driving it
// must deliver releases for ActionUp and ActionDown.
type HoldController interface {
	HoldToMove() bool
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func() Game

type entry struct {
	title string
	make  Factory
}

var (
	mu    sync.RWMutex
	modes = map[string]entry{}
)

// Register adds a mode. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: %q registered twice", id))
	}
	modes[id] = entry{title: f().Title(), make: f}
}

// List returns every registered mode ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new game of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.make(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := modes[id]
	return ok
}
