package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model of an SSH connection. It moves between
// the menu, a game and the scoreboard inside one program.
type SessionModel struct {
	store     *storage.Store
	trackers  *highscore.Trackers
	config    core.RuntimeConfig
	logger    *log.Logger
	fixedMode string

	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel opens on the menu, or straight into mode when it is set.
func NewSessionModel(store *storage.Store, trackers *highscore.Trackers, cfg core.RuntimeConfig, logger *log.Logger, mode string) SessionModel {
	m := SessionModel{
		store:     store,
		trackers:  trackers,
		config:    cfg,
		logger:    logger,
		fixedMode: mode,
		menu:      NewMenuModel(trackers, cfg),
	}
	if mode != "" {
		m.play(mode)
	}
	return m
}

func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard, m.screen = &sb, screenScores
		return m, sb.Init()
	case m.menu.Selected() != nil:
		if m.play(m.menu.Selected().GameID) {
			return m, m.gameModel.Init()
		}
		m.menu = NewMenuModel(m.trackers, m.config)
		return m, nil
	}
	return m, cmd
}

// play swaps in a fresh game of mode. It reports false when the mode cannot
// be created.
func (m *SessionModel) play(mode string) bool {
	game, err := registry.Create(mode)
	if err != nil {
		m.logger.Error("create game", "mode", mode, "error", err)
		return false
	}
	gm := NewGameModel(game, m.config, Options{
		Store:   m.store,
		Tracker: m.trackers.For(mode),
		Logger:  m.logger,
	})
	m.gameModel, m.screen = &gm, screenGame
	m.logger.Info("play", "mode", mode)
	return true
}

// toMenu rebuilds the menu so it shows the latest bests.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel, m.scoreboard = nil, nil
	m.menu = NewMenuModel(m.trackers, m.config)
	return m, m.menu.Init()
}

// updateGame forwards to the game. Back and quit end the game model's
// program, so they are intercepted here.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = &gm
	}

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu() && m.fixedMode != "":
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.gameModel.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
