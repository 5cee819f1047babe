package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeak      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
)

// viewport maps world units onto the cell grid. Row 0 is the HUD and the
// last row is the ground; the field fills the rows between.
type viewport struct {
	fieldW, fieldH int
	cols, rows     int
}

func (v viewport) x(wx int) int {
	return floorDiv(wx*v.cols, v.fieldW)
}

func (v viewport) y(wy int) int {
	return 1 + floorDiv(wy*v.rows, v.fieldH)
}

// spanX returns the columns [from, to) covered by [w0, w1), at least one.
func (v viewport) spanX(w0, w1 int) (int, int) {
	from, to := v.x(w0), v.x(w1)
	return from, max(to, from+1)
}

func (v viewport) spanY(w0, w1 int) (int, int) {
	from, to := v.y(w0), v.y(w1)
	return from, max(to, from+1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 1 || h < 3 {
		return
	}

	v := viewport{
		fieldW: g.cfg.Field.Width,
		fieldH: g.cfg.Field.Height,
		cols:   w,
		rows:   h - 2,
	}
	groundY := h - 1

	for _, o := range g.state.Obstacles {
		g.drawObstacle(dst, v, o, groundY)
	}
	g.drawBird(dst, v)

	dst.HLine(0, groundY, w, GroundChar, core.ColorOrange)
	g.drawHUD(dst)

	switch {
	case g.state.Phase == core.PhaseNotStarted:
		start := "Press SPACE or click to start"
		if g.cfg.HoldToMove() {
			start = "Hold W/S to fly, SPACE to start"
		}
		drawCenteredMessage(dst, g.title, start, core.ColorCyan)
	case g.state.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case g.state.Phase == core.PhaseGameOver:
		title := "GAME OVER"
		if g.state.NewBest {
			title = "NEW BEST!"
		}
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", g.state.Score, g.state.HighScore),
			core.ColorRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.Text(2, 0, fmt.Sprintf(" Score: %d ", g.state.Score), core.ColorWhite)

	best := fmt.Sprintf(" Best: %d ", g.state.HighScore)
	dst.Text(dst.Width()-len(best)-2, 0, best, core.ColorBrightYellow)
}

// drawObstacle renders the top and bottom segments of one pipe pair.
func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle, groundY int) {
	x0, x1 := v.spanX(o.X, o.X+g.cfg.Obstacles.Width)
	gapTop := v.y(o.GapY)
	gapBottom := v.y(o.GapBottom())

	for x := x0; x < x1; x++ {
		for y := 1; y < gapTop; y++ {
			dst.Put(x, y, PipeChar, core.ColorGreen)
		}
		if gapTop > 1 {
			dst.Put(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}

		for y := gapBottom; y < groundY; y++ {
			dst.Put(x, y, PipeChar, core.ColorGreen)
		}
		if gapBottom < groundY {
			dst.Put(x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func (g *Game) drawBird(dst *core.Screen, v viewport) {
	b := g.sim.BirdRect(g.state)
	x0, x1 := v.spanX(b.X, b.Right())
	y0, y1 := v.spanY(b.Y, b.Bottom())

	for y := max(y0, 1); y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := BirdChar
			if x == x1-1 && y == y0 {
				ch = BirdBeak
			}
			dst.Put(x, y, ch, core.ColorYellow)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.Frame(box, c)

	dst.CenterText(box.Y+1, title, c)
	dst.CenterText(box.Y+3, subtitle, core.ColorWhite)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
