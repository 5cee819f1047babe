// Package gui runs a flappy mode in a desktop window with Ebitengine.
//
// The window is laid out in world units, so the simulation's rectangles are
// drawn as they are. Ebitengine calls Update at a fixed rate; the frame time
// goes through a loop.Accumulator so the simulation keeps its own tick.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 84, G: 176, B: 58, A: 255}
	capColor    = color.RGBA{R: 58, G: 130, B: 40, A: 255}
	birdColor   = color.RGBA{R: 250, G: 214, B: 60, A: 255}
	beakColor   = color.RGBA{R: 240, G: 120, B: 40, A: 255}
	shadeColor  = color.RGBA{A: 140}
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
)

// Options wires persistence and logging into a Game. Every field is optional.
type Options struct {
	Store   *storage.Store
	Tracker *highscore.Tracker
	Logger  *log.Logger
}

// binding maps a keyboard key to a game action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// Game implements ebiten.Game for one flappy mode.
type Game struct {
	game  *flappy.Game
	cfg   config.FlappyConfig
	acc   *loop.Accumulator
	opts  Options
	state core.GameState
	frame time.Duration
}

// New resets game and wraps it for Ebitengine.
func New(game *flappy.Game, runtime core.RuntimeConfig, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(runtime)
	g := &Game{
		game:  game,
		cfg:   game.Config(),
		acc:   loop.NewAccumulator(game.TickInterval()),
		opts:  opts,
		frame: time.Second / time.Duration(ebiten.DefaultTPS),
	}

	if opts.Tracker != nil {
		best, err := opts.Tracker.Best()
		if err != nil {
			opts.Logger.Warn("could not load best score", "mode", game.ID(), "error", err)
		}
		game.SetHighScore(best)
	}
	g.state = game.State()
	return g
}

// Update polls input and advances the simulation by the elapsed frame time.
func (g *Game) Update() error {
	for _, ev := range pollEvents() {
		if ev.Action == core.ActionQuit {
			return ebiten.Termination
		}
		g.apply(ev)
	}
	g.advance(g.frame)
	return nil
}

// pollEvents collects this frame's presses and releases.
func pollEvents() []core.Event {
	var events []core.Event
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, core.Press(core.ActionJump))
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, core.Press(b.action))
		}
		if inpututil.IsKeyJustReleased(b.key) && (b.action == core.ActionUp || b.action == core.ActionDown) {
			events = append(events, core.Release(b.action))
		}
	}
	return events
}

// apply sends one event to the game.
func (g *Game) apply(ev core.Event) {
	res := g.game.Handle(ev)
	g.record(res)
}

// advance runs as many ticks as elapsed covers. Time spent outside a run
// is discarded so a resumed game does not jump ahead.
func (g *Game) advance(elapsed time.Duration) {
	if !g.state.Ticking() {
		g.acc.Reset()
		return
	}
	for n := g.acc.Add(elapsed); n > 0; n-- {
		g.record(g.game.Step())
		if !g.state.Ticking() {
			g.acc.Reset()
			return
		}
	}
}

func (g *Game) record(res core.StepResult) {
	g.state = res.State
	if res.Ended {
		g.finish(res.State)
	}
}

// finish persists a run that just ended. Failures are logged only.
func (g *Game) finish(st core.GameState) {
	id := g.game.ID()
	g.opts.Logger.Debug("game over", "mode", id, "score", st.Score, "best", st.HighScore)

	if g.opts.Store != nil && st.Score > 0 {
		if _, err := g.opts.Store.AddRun(id, st.Score); err != nil {
			g.opts.Logger.Warn("could not save score", "mode", id, "error", err)
		}
	}
	if g.opts.Tracker != nil {
		if _, err := g.opts.Tracker.Record(st.Score); err != nil {
			g.opts.Logger.Warn("could not save best score", "mode", id, "error", err)
		}
	}
}

// State returns the last observed game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Draw paints the world, then the HUD and banners.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	world := g.game.World()
	for _, o := range world.Obstacles {
		for _, r := range pipeRects(o, g.cfg) {
			fillRect(screen, r, pipeColor)
		}
		for _, r := range capRects(o, g.cfg) {
			fillRect(screen, r, capColor)
		}
	}

	w, h := g.Layout(0, 0)
	vector.DrawFilledRect(screen, 0, float32(h-4), float32(w), 4, groundColor, false)

	bird := birdRect(world, g.cfg)
	fillRect(screen, bird, birdColor)
	beak := core.NewRect(bird.Right(), bird.Y+bird.H/3, bird.W/4, bird.H/3)
	fillRect(screen, beak, beakColor)

	ebitenutil.DebugPrintAt(screen, hud(g.state), 8, 8)
	if msg := banner(g.state, g.cfg.HoldToMove()); msg != "" {
		vector.DrawFilledRect(screen, 0, float32(h/2-30), float32(w), 60, shadeColor, false)
		ebitenutil.DebugPrintAt(screen, msg, 16, h/2-20)
	}
}

// Layout fixes the logical screen to the playfield.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// pipeRects returns the top and bottom segments of o, clipped to the field.
func pipeRects(o flappy.Obstacle, cfg config.FlappyConfig) []core.Rect {
	w := cfg.Obstacles.Width
	return []core.Rect{
		core.NewRect(o.X, 0, w, o.GapY),
		core.NewRect(o.X, o.GapBottom(), w, cfg.Field.Height-o.GapBottom()),
	}
}

// capRects returns the lips drawn at the gap edges, slightly wider than the pipe.
func capRects(o flappy.Obstacle, cfg config.FlappyConfig) []core.Rect {
	w := cfg.Obstacles.Width
	lip := w / 10
	height := core.Clamp(w/4, 4, 24)
	return []core.Rect{
		core.NewRect(o.X-lip, o.GapY-height, w+2*lip, height),
		core.NewRect(o.X-lip, o.GapBottom(), w+2*lip, height),
	}
}

func birdRect(st flappy.State, cfg config.FlappyConfig) core.Rect {
	return core.NewRect(cfg.Bird.X, st.BirdY, cfg.Bird.Size, cfg.Bird.Size)
}

func hud(st core.GameState) string {
	return fmt.Sprintf("Score: %d  Best: %d", st.Score, st.HighScore)
}

// banner returns the overlay text for the current phase, or "" while playing.
func banner(st core.GameState, hold bool) string {
	switch {
	case st.Phase == core.PhaseNotStarted && hold:
		return "Hold W/S to fly, SPACE to start"
	case st.Phase == core.PhaseNotStarted:
		return "Click or press SPACE to start"
	case st.Phase == core.PhaseGameOver && st.NewBest:
		return fmt.Sprintf("NEW BEST! %d\nClick or press R to play again", st.Score)
	case st.Phase == core.PhaseGameOver:
		return fmt.Sprintf("GAME OVER  Score: %d\nClick or press R to play again", st.Score)
	case st.Paused:
		return "PAUSED\nPress P to resume"
	}
	return ""
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(game *flappy.Game, runtime core.RuntimeConfig, opts Options) error {
	g := New(game, runtime, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(g.cfg.Field.Width, g.cfg.Field.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
