package flappy

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newTestGame(t *testing.T, mode string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(mode)
	if err != nil {
		t.Fatalf("Create(%q): %v", mode, err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	return g.(*Game)
}

func TestModesRegistered(t *testing.T) {
	for _, mode := range config.Modes() {
		if !registry.Exists(mode) {
			t.Errorf("mode %q not registered", mode)
		}
	}
}

func TestGameJumpStartsAndFlaps(t *testing.T) {
	g := newTestGame(t, config.ModeClassic)

	res := g.Handle(core.Press(core.ActionJump))
	if res.State.Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, want Running", res.State.Phase)
	}
	if y := g.World().BirdY; y != 200 {
		t.Errorf("starting jump moved the bird to %d", y)
	}

	g.Handle(core.Press(core.ActionJump))
	if y := g.World().BirdY; y != 100 {
		t.Errorf("BirdY = %d, want 100", y)
	}
}

func TestGameUpActsAsJumpInClassic(t *testing.T) {
	g := newTestGame(t, config.ModeClassic)
	g.Handle(core.Press(core.ActionJump))

	g.Handle(core.Press(core.ActionUp))
	if y := g.World().BirdY; y != 100 {
		t.Errorf("BirdY = %d, want 100", y)
	}
}

func TestGameHoldInGlide(t *testing.T) {
	g := newTestGame(t, config.ModeGlide)

	g.Handle(core.Press(core.ActionDown))
	if g.State().Phase != core.PhaseRunning {
		t.Fatalf("holding a direction should start the run")
	}
	g.Step()
	if y := g.World().BirdY; y != 235 {
		t.Errorf("BirdY = %d, want 235", y)
	}

	g.Handle(core.Release(core.ActionDown))
	g.Step()
	if y := g.World().BirdY; y != 235 {
		t.Errorf("BirdY after release = %d, want 235", y)
	}
}

func TestGameEndedReportedOnce(t *testing.T) {
	g := newTestGame(t, config.ModeClassic)
	g.SetHighScore(3)
	g.Handle(core.Press(core.ActionJump))

	ended := 0
	for i := 0; i < 500; i++ {
		if g.Step().Ended {
			ended++
		}
	}
	if ended != 1 {
		t.Fatalf("Ended reported %d times, want 1", ended)
	}

	st := g.State()
	if !st.Over() {
		t.Fatalf("Phase = %v, want GameOver", st.Phase)
	}
	if st.HighScore != 3 {
		t.Errorf("HighScore = %d, want 3", st.HighScore)
	}
}

func TestGamePauseAndRestart(t *testing.T) {
	g := newTestGame(t, config.ModeClassic)
	g.Handle(core.Press(core.ActionJump))

	g.Handle(core.Press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	if g.Step(); g.World().Tick != 0 {
		t.Error("paused game should not advance")
	}
	g.Handle(core.Press(core.ActionPause))

	if g.Handle(core.Press(core.ActionRestart)); g.World().Tick != 0 {
		t.Error("restart is ignored while running")
	}

	for !g.State().Over() {
		g.Step()
	}
	res := g.Handle(core.Press(core.ActionRestart))
	if res.State.Phase != core.PhaseRunning || res.State.Score != 0 {
		t.Errorf("restart state = %+v", res.State)
	}
	if g.World().BirdY != g.Config().Bird.StartY {
		t.Errorf("restart BirdY = %d", g.World().BirdY)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() State {
		g := newTestGame(t, config.ModeClassic)
		g.Handle(core.Press(core.ActionJump))
		for i := 0; i < 400 && !g.State().Over(); i++ {
			if i%14 == 0 {
				g.Handle(core.Press(core.ActionJump))
			}
			g.Step()
		}
		return g.World()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.BirdY != b.BirdY {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestGameTickOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New(config.ModeGlide, "Flappy Glide")

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.TickInterval() != config.DefaultGlideConfig().Tick {
		t.Errorf("TickInterval = %v, want mode default", g.TickInterval())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, Tick: 50 * time.Millisecond})
	if g.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, want 50ms", g.TickInterval())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.ModeClassic)
	g.SetHighScore(12)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Best: 12") {
		t.Error("HUD should show the best score")
	}
	if !strings.Contains(out, "Press SPACE") {
		t.Error("idle game should show the start banner")
	}
	if !strings.ContainsRune(out, BirdChar) {
		t.Error("bird not drawn")
	}
	if !strings.ContainsRune(scr.Row(23), GroundChar) {
		t.Error("ground not drawn on the last row")
	}

	g.Handle(core.Press(core.ActionJump))
	for i := 0; i < 20; i++ {
		g.Step()
	}
	g.Render(scr)
	if !strings.ContainsRune(scr.String(), PipeChar) {
		t.Error("pipes not drawn")
	}

	for !g.State().Over() {
		g.Step()
	}
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, config.ModeGlide)
	g.Render(core.NewScreen(1, 1))
	g.Render(core.NewScreen(0, 0))
}
