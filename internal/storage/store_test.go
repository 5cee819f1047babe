package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func addRuns(t *testing.T, s *Store, mode string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := s.AddRun(mode, sc); err != nil {
			t.Fatalf("AddRun(%s, %d): %v", mode, sc, err)
		}
	}
}

func scoresOf(runs []Run) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOpenCreatesFile(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) (open, want string)
	}{
		{"nested", func(t *testing.T) (string, string) {
			p := filepath.Join(t.TempDir(), "a", "b", "scores.db")
			return p, p
		}},
		{"home", func(t *testing.T) (string, string) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			return "~/.flappy/scores.db", filepath.Join(home, ".flappy", "scores.db")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, want := tt.path(t)
			s, err := Open(open)
			if err != nil {
				t.Fatalf("Open(%q): %v", open, err)
			}
			defer s.Close()
			if _, err := os.Stat(want); err != nil {
				t.Errorf("database not at %s: %v", want, err)
			}
		})
	}
}

func TestReopenKeepsSchemaAndData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetBest("classic", 8); err != nil {
		t.Fatalf("SetBest: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		t.Fatal(err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, want %d", version, len(migrations))
	}
	if best, _ := s.Best("classic"); best != 8 {
		t.Errorf("Best after reopen = %d, want 8", best)
	}
}

func TestRunOrdering(t *testing.T) {
	s := openTestStore(t)
	addRuns(t, s, "classic", 7, 2, 9, 4, 9)
	addRuns(t, s, "glide", 50)

	tests := []struct {
		name  string
		query func(string, int) ([]Run, error)
		limit int
		want  []int
	}{
		{"top", s.TopRuns, 10, []int{9, 9, 7, 4, 2}},
		{"top limited", s.TopRuns, 3, []int{9, 9, 7}},
		{"recent", s.RecentRuns, 2, []int{9, 4}},
		{"default limit", s.RecentRuns, 0, []int{9, 4, 9, 2, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := tt.query("classic", tt.limit)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if got := scoresOf(runs); !equalInts(got, tt.want) {
				t.Errorf("scores = %v, want %v", got, tt.want)
			}
			for _, r := range runs {
				if r.Mode != "classic" {
					t.Errorf("run %d has mode %q", r.ID, r.Mode)
				}
			}
		})
	}

	top, _ := s.TopRuns("classic", 2)
	if top[0].ID >= top[1].ID {
		t.Errorf("equal scores should keep play order, got ids %d, %d", top[0].ID, top[1].ID)
	}
}

func TestRunsUseClock(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	addRuns(t, s, "glide", 3)
	runs, err := s.RecentRuns("glide", 1)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if !runs[0].PlayedAt.Equal(at) {
		t.Errorf("PlayedAt = %v, want %v", runs[0].PlayedAt, at)
	}
}

func TestBestAndHighScore(t *testing.T) {
	s := openTestStore(t)

	if best, err := s.Best("glide"); err != nil || best != 0 {
		t.Fatalf("empty Best = %d, %v", best, err)
	}

	for _, sc := range []int{3, 11, 6} {
		if err := s.SetBest("glide", sc); err != nil {
			t.Fatalf("SetBest(%d): %v", sc, err)
		}
	}
	if best, _ := s.Best("glide"); best != 6 {
		t.Errorf("SetBest should overwrite, Best = %d", best)
	}
	if best, _ := s.Best("classic"); best != 0 {
		t.Errorf("best leaked across modes: %d", best)
	}

	addRuns(t, s, "classic", 10, 30, 20)
	if high, _ := s.HighScore("classic"); high != 30 {
		t.Errorf("HighScore = %d, want 30", high)
	}
	s.SetBest("classic", 45)
	if high, _ := s.HighScore("classic"); high != 45 {
		t.Errorf("HighScore with stored best = %d, want 45", high)
	}
}

func TestBestScoresFeedTracker(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetBest("classic", 5); err != nil {
		t.Fatal(err)
	}

	var hs highscore.Store = s.BestScores("classic")
	tr := highscore.NewTracker(hs)

	tests := []struct {
		score   int
		written bool
		best    int
	}{
		{3, false, 5},
		{5, false, 5},
		{7, true, 7},
	}
	for _, tt := range tests {
		written, err := tr.Record(tt.score)
		if err != nil {
			t.Fatalf("Record(%d): %v", tt.score, err)
		}
		if written != tt.written {
			t.Errorf("Record(%d) written = %v, want %v", tt.score, written, tt.written)
		}
		if stored, _ := s.Best("classic"); stored != tt.best {
			t.Errorf("after Record(%d) stored best = %d, want %d", tt.score, stored, tt.best)
		}
	}
}

func TestClearScores(t *testing.T) {
	s := openTestStore(t)
	addRuns(t, s, "classic", 10, 20)
	s.SetBest("classic", 20)
	addRuns(t, s, "glide", 30)

	if err := s.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}
	if runs, _ := s.TopRuns("classic", 10); len(runs) != 0 {
		t.Errorf("classic runs left: %v", runs)
	}
	if best, _ := s.Best("classic"); best != 0 {
		t.Errorf("classic best left: %d", best)
	}
	if runs, _ := s.TopRuns("glide", 10); len(runs) != 1 {
		t.Errorf("glide runs = %d, want 1", len(runs))
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)

	st, err := s.Stats("classic")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Runs != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", st)
	}

	addRuns(t, s, "classic", 2, 4)
	addRuns(t, s, "glide", 9)

	st, err = s.Stats("classic")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Runs != 2 || st.Best != 4 || st.Total != 6 || st.Average != 3 {
		t.Errorf("classic stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	s.SetBest("classic", 12)
	if st, _ = s.Stats("classic"); st.Best != 12 {
		t.Errorf("Stats.Best ignores stored best: %d", st.Best)
	}

	all, err := s.AllStats()
	if err != nil {
		t.Fatalf("AllStats: %v", err)
	}
	if len(all) != 2 || all["glide"].Best != 9 || all["classic"].Runs != 2 {
		t.Errorf("AllStats = %+v", all)
	}
}
