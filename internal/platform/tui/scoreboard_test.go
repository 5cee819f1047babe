package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreboardRows(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, s := range []int{3, 9, 5} {
		if _, err := store.AddRun("classic", s); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "9" {
		t.Errorf("first row = %v, want 1 9", rows[0])
	}
	if !strings.Contains(m.statsLine(), "3 runs") {
		t.Errorf("stats line = %q, want it to count 3 runs", m.statsLine())
	}

	next, _ := m.Update(keyRunes("v"))
	m = next.(ScoreboardModel)
	if rows := m.table.Rows(); len(rows) != 3 || rows[0][1] != "5" {
		t.Errorf("latest runs = %v, want the run scoring 5 first", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.modes[m.mode].ID; got != "glide" {
		t.Fatalf("mode = %q, want glide", got)
	}
	if len(m.table.Rows()) != 0 {
		t.Errorf("glide rows = %d, want 0", len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if got := m.modes[m.mode].ID; got != "classic" {
		t.Errorf("mode = %q, want classic after wrapping back", got)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.table.Rows()) != 0 {
		t.Error("scoreboard without a store should be empty")
	}
	if m.View() == "" {
		t.Error("View should render the empty board")
	}

	next, cmd := m.Update(keyRunes("q"))
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit the scoreboard")
	}
}
