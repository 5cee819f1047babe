package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.Text(0, 0, "ab", core.ColorRed)
	s.Text(2, 0, "cd", core.ColorGreen)
	s.HLine(0, 2, 6, '═', core.ColorOrange)
	s.Put(5, 1, '?', core.Color(200))

	// Test output is not a terminal, so lipgloss renders without escapes.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}
