// Package flappy implements the Flappy Bird modes.
// The player steers a bird through the gaps of scrolling pipe pairs, either
// by flapping against gravity (classic) or by holding up/down (glide).
package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// Configure sets the custom config file and difficulty preset used by every
// game created afterwards. Each of modes (all modes when none are given) is
// loaded once with them, so a file that cannot be read, parsed or validated
// is reported here rather than replaced by the defaults at Reset.
func Configure(path, preset string, modes ...string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	if len(modes) == 0 {
		modes = config.Modes()
	}
	for _, mode := range modes {
		if _, err := config.LoadWithPreset(mode, path, p); err != nil {
			return fmt.Errorf("flappy: %s config: %w", mode, err)
		}
	}
	configPath, difficultyPreset = path, p
	return nil
}

// SetLogger sets where Reset reports a config it could not load.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Sim and its State to registry.Game.
type Game struct {
	mode    string
	title   string
	runtime core.RuntimeConfig
	cfg     config.FlappyConfig
	sim     *Sim
	state   State
}

// New creates a game for the given mode. Reset must be called before use.
func New(mode, title string) *Game {
	return &Game{mode: mode, title: title}
}

// ID returns the mode name.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the mode configuration and puts the game into NotStarted.
// The high score survives a Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadWithPreset(g.mode, configPath, difficultyPreset)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "mode", g.mode, "path", configPath, "error", err)
		cfg, _ = config.DefaultConfig(g.mode)
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if runtime.Tick > 0 {
		cfg.Tick = runtime.Tick
	}
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.sim = NewSim(cfg, rand.New(rand.NewSource(seed)))
	g.state = g.sim.NewState(g.state.HighScore)
}

// SetHighScore seeds the best score shown in the HUD.
func (g *Game) SetHighScore(best int) {
	g.state.HighScore = best
}

// TickInterval returns the simulation interval of the loaded config.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Tick
}

// HoldToMove reports whether the mode is steered by held up/down keys.
func (g *Game) HoldToMove() bool {
	return g.cfg.HoldToMove()
}

// Config returns the loaded mode configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// World returns a copy of the simulation state for drivers that draw in
// world units.
func (g *Game) World() State {
	return g.state.clone()
}

// Handle applies one input event.
//
// Jump starts a run from NotStarted or GameOver and flaps while running.
// In hold-to-move modes Up and Down set the held direction (and start the
// run); in flap modes Up is another Jump key. Pause toggles pause and
// Restart starts a new run after a game over.
func (g *Game) Handle(ev core.Event) core.StepResult {
	prev := g.state.Phase
	hold := g.cfg.HoldToMove()

	if ev.Release {
		if hold {
			g.state = g.sim.Hold(g.state, ev.Action, false)
		}
		return g.result(prev)
	}

	switch ev.Action {
	case core.ActionJump:
		g.jumpOrStart()
	case core.ActionUp, core.ActionDown:
		if !hold {
			if ev.Action == core.ActionUp {
				g.jumpOrStart()
			}
			break
		}
		if g.state.Phase != core.PhaseRunning {
			g.state = g.sim.Start(g.state)
		}
		g.state = g.sim.Hold(g.state, ev.Action, true)
	case core.ActionPause:
		g.state = g.sim.TogglePause(g.state)
	case core.ActionRestart:
		if g.state.Phase != core.PhaseRunning {
			g.state = g.sim.Start(g.state)
		}
	}

	return g.result(prev)
}

func (g *Game) jumpOrStart() {
	if g.state.Phase != core.PhaseRunning {
		g.state = g.sim.Start(g.state)
		return
	}
	g.state = g.sim.Jump(g.state)
}

// Step advances the simulation by one tick.
func (g *Game) Step() core.StepResult {
	prev := g.state.Phase
	g.state = g.sim.Advance(g.state)
	return g.result(prev)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state.Summary()
}

func (g *Game) result(prev core.Phase) core.StepResult {
	return core.StepResult{
		State: g.state.Summary(),
		Ended: prev != core.PhaseGameOver && g.state.Phase == core.PhaseGameOver,
	}
}

var titles = map[string]string{
	config.ModeClassic: "Flappy Bird",
	config.ModeGlide:   "Flappy Glide",
}

// Register the modes with the registry
func init() {
	for _, mode := range config.Modes() {
		title := titles[mode]
		registry.Register(mode, func() registry.Game {
			return New(mode, title)
		})
	}
}
