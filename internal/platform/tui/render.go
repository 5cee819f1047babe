package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette holds the ANSI color of each core.Color, indexed by value.
var palette = [...]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightGreen:  fg("10"),
	core.ColorBrightYellow: fg("11"),
	core.ColorOrange:       fg("208"),
	core.ColorGray:         fg("245"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// RenderScreen turns the screen into styled text, one escape sequence per
// same-colored run.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		var b strings.Builder
		for _, sp := range s.Spans(y) {
			if int(sp.Color) < len(palette) {
				b.WriteString(palette[sp.Color].Render(sp.Text))
			} else {
				b.WriteString(sp.Text)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
