package flappy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// restoreConfigure puts the package-wide config settings back after a test.
func restoreConfigure(t *testing.T) {
	t.Helper()
	path, preset, l := configPath, difficultyPreset, logger
	t.Cleanup(func() {
		configPath, difficultyPreset, logger = path, preset, l
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigureRejectsUnusableSettings(t *testing.T) {
	restoreConfigure(t)
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name   string
		path   string
		preset string
		want   string
	}{
		{"negative gravity", writeConfig(t, "physics:\n  gravity: -3\n"), "", "classic config"},
		{"malformed yaml", writeConfig(t, "physics: [\n"), "", "classic config"},
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml"), "", "classic config"},
		{"unknown preset", "", "brutal", "unknown difficulty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Configure(tt.path, tt.preset, config.ModeClassic)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Configure = %v, want error mentioning %q", err, tt.want)
			}
			if configPath == tt.path && tt.path != "" {
				t.Error("rejected path was kept")
			}
		})
	}
}

func TestConfigureAppliesToNewGames(t *testing.T) {
	restoreConfigure(t)
	path := writeConfig(t, "physics:\n  gravity: 7\n")

	if err := Configure(path, "hard", config.ModeClassic); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	g := newTestGame(t, config.ModeClassic)
	cfg := g.Config()
	if cfg.Physics.Gravity != 7 {
		t.Errorf("Gravity = %d, want 7 from the custom file", cfg.Physics.Gravity)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}
}

func TestResetLogsConfigFallback(t *testing.T) {
	restoreConfigure(t)
	var buf bytes.Buffer
	SetLogger(log.New(&buf))

	// A file that breaks after Configure accepted it.
	configPath = writeConfig(t, "physics:\n  gravity: -3\n")

	g := New(config.ModeClassic, "Flappy Bird")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if got := g.Config().Physics.Gravity; got != 5 {
		t.Errorf("Gravity = %d, want default 5", got)
	}
	if !strings.Contains(buf.String(), "using defaults") {
		t.Errorf("fallback not logged, log = %q", buf.String())
	}
}
