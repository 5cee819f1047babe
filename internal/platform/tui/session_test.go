package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

func newTestSession(t *testing.T, mode string) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	return NewSessionModel(nil, highscore.NewTrackers(nil), cfg, log.New(io.Discard), mode)
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, "")
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("selecting a mode should start the game")
	}
	if id := m.gameModel.game.ID(); id != "classic" {
		t.Errorf("game = %q, want classic", id)
	}

	m, _ = updateSession(t, m, keyRunes("b"))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}
	if m.quitting {
		t.Error("back to menu should not end the session")
	}
}

func TestSessionBackIgnoredWhileRunning(t *testing.T) {
	m := newTestSession(t, "")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateSession(t, m, space)
	if m.gameModel.State().Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, want Running", m.gameModel.State().Phase)
	}

	m, _ = updateSession(t, m, keyRunes("b"))
	if m.screen != screenGame {
		t.Error("back during a live run should be ignored")
	}
}

func TestSessionFixedModeQuitsOnBack(t *testing.T) {
	m := newTestSession(t, "glide")
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if id := m.gameModel.game.ID(); id != "glide" {
		t.Errorf("game = %q, want glide", id)
	}

	m, cmd := updateSession(t, m, keyRunes("b"))
	if !m.quitting || cmd == nil {
		t.Error("back in a single-mode session should end it")
	}
	if m.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t, "")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores || m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m, _ = updateSession(t, m, keyRunes("b"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := newTestSession(t, "")

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}
