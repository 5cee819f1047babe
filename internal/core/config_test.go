package core

import "testing"

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseNotStarted: "NotStarted",
		PhaseRunning:    "Running",
		PhaseGameOver:   "GameOver",
		Phase(42):       "Unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), got, want)
		}
	}
}

func TestGameStateTicking(t *testing.T) {
	tests := []struct {
		name  string
		state GameState
		want  bool
	}{
		{"not started", GameState{Phase: PhaseNotStarted}, false},
		{"running", GameState{Phase: PhaseRunning}, true},
		{"running paused", GameState{Phase: PhaseRunning, Paused: true}, false},
		{"game over", GameState{Phase: PhaseGameOver}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Ticking(); got != tc.want {
				t.Errorf("Ticking() = %v, expected %v", got, tc.want)
			}
		})
	}
}
