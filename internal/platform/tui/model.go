package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// defaultTick is used when neither the game nor the runtime config sets one.
const defaultTick = 30 * time.Millisecond

// Options wires persistence and logging into a GameModel. Every field is
// optional.
type Options struct {
	Store   *storage.Store     // Run history, one row per finished run with score > 0
	Tracker *highscore.Tracker // Best score, written only on a new best
	Logger  *log.Logger
}

// GameModel is the Bubble Tea model for one game mode.
//
// The model owns the tick loop. A loop starts only when the game enters
// Running (or resumes from pause) and each tick carries the loop's
// generation. Stopping bumps the generation, so a tick already in flight
// is dropped instead of rescheduling itself, and at most one loop is ever
// live.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	runtime  core.RuntimeConfig
	opts     Options
	keys     KeyMap
	hold     *HoldTracker
	holdMode bool
	interval time.Duration

	gen     int  // Generation of the current loop
	ticking bool // A tick for gen is scheduled

	state      core.GameState
	quitting   bool
	backToMenu bool
}

// NewGameModel resets game and creates a model for it.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	interval := cfg.Tick
	if t, ok := game.(registry.Ticker); ok && t.TickInterval() > 0 {
		interval = t.TickInterval()
	}
	if interval <= 0 {
		interval = defaultTick
	}

	holdMode := false
	if h, ok := game.(registry.HoldController); ok {
		holdMode = h.HoldToMove()
	}

	m := GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runtime:  cfg,
		opts:     opts,
		keys:     DefaultKeyMap(),
		hold:     NewHoldTracker(interval),
		holdMode: holdMode,
		interval: interval,
	}
	m.seedHighScore()
	m.state = game.State()

	opts.Logger.Debug("game ready",
		"mode", game.ID(),
		"seed", cfg.Seed,
		"tick", interval,
		"best", m.state.HighScore,
	)
	return m
}

// seedHighScore pushes the tracker's best into the game.
func (m *GameModel) seedHighScore() {
	keeper, ok := m.game.(registry.HighScoreKeeper)
	if !ok || m.opts.Tracker == nil {
		return
	}
	best, err := m.opts.Tracker.Best()
	if err != nil {
		m.opts.Logger.Warn("could not load best score", "mode", m.game.ID(), "error", err)
	}
	keeper.SetHighScore(best)
}

// Init waits for the first input; the loop starts with the run.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MouseAction(msg); a != core.ActionNone {
			m.apply(core.Press(a))
			return m, m.syncLoop()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.stopLoop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.state.Phase == core.PhaseRunning && !m.state.Paused {
			return m, nil
		}
		m.stopLoop()
		m.backToMenu = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown:
		if m.holdMode {
			fresh, released := m.hold.Press(action)
			for _, r := range released {
				m.apply(core.Release(r))
			}
			if !fresh {
				return m, nil
			}
		}
		m.apply(core.Press(action))
		return m, m.syncLoop()

	case core.ActionNone:
		if key.Matches(msg, m.keys.Screenshot) {
			m.saveScreenshot()
		}
		return m, nil
	}

	m.apply(core.Press(action))
	return m, m.syncLoop()
}

// handleTick runs one simulation step for the current loop.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	res := m.game.Step()
	m.state = res.State
	if res.Ended {
		m.finish(res.State)
	}

	if m.holdMode {
		for _, a := range m.hold.Tick() {
			m.apply(core.Release(a))
		}
	}

	if m.state.Ticking() {
		return m, tickCmd(m.interval, m.gen)
	}
	m.stopLoop()
	return m, nil
}

// apply sends one event to the game and records the outcome.
func (m *GameModel) apply(ev core.Event) {
	res := m.game.Handle(ev)
	m.state = res.State
	if res.Ended {
		m.finish(res.State)
	}
}

// syncLoop starts or stops the tick loop to match the game state.
func (m *GameModel) syncLoop() tea.Cmd {
	ticking := m.state.Ticking()
	switch {
	case ticking && !m.ticking:
		m.gen++
		m.ticking = true
		return tickCmd(m.interval, m.gen)
	case !ticking && m.ticking:
		m.stopLoop()
	}
	return nil
}

func (m *GameModel) stopLoop() {
	if m.ticking {
		m.gen++
		m.ticking = false
	}
}

// finish persists a run that just ended. Failures are logged and the game
// goes on.
func (m *GameModel) finish(st core.GameState) {
	m.hold.Clear()
	id := m.game.ID()

	m.opts.Logger.Debug("game over", "mode", id, "score", st.Score, "best", st.HighScore)

	if m.opts.Store != nil && st.Score > 0 {
		if _, err := m.opts.Store.AddRun(id, st.Score); err != nil {
			m.opts.Logger.Warn("could not save score", "mode", id, "error", err)
		}
	}

	if m.opts.Tracker == nil {
		return
	}
	newBest, err := m.opts.Tracker.Record(st.Score)
	if err != nil {
		m.opts.Logger.Warn("could not save best score", "mode", id, "error", err)
	}
	if newBest {
		m.opts.Logger.Info("new best score", "mode", id, "score", st.Score)
	}

	// Another session may have raised the best in the meantime.
	if best, err := m.opts.Tracker.Best(); err == nil && best > st.HighScore {
		if keeper, ok := m.game.(registry.HighScoreKeeper); ok {
			keeper.SetHighScore(best)
			m.state = m.game.State()
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Ticking reports whether a tick loop is live.
func (m GameModel) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to flap
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
