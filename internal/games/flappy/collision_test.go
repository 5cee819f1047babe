package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestDetect(t *testing.T) {
	field := config.FieldConfig{Width: 400, Height: 800, TopLimit: -170}
	const width = 100

	tests := []struct {
		name       string
		birdY      int
		obstacles  []Obstacle
		wantHit    bool
		wantOut    bool
		wantHitIdx int
		wantPassed []int
	}{
		{
			name:       "open sky",
			birdY:      200,
			wantHitIdx: -1,
		},
		{
			name:       "top limit",
			birdY:      -171,
			wantHit:    true,
			wantOut:    true,
			wantHitIdx: -1,
		},
		{
			name:       "exactly at top limit",
			birdY:      -170,
			wantHitIdx: -1,
		},
		{
			name:       "below ground",
			birdY:      751,
			wantHit:    true,
			wantOut:    true,
			wantHitIdx: -1,
		},
		{
			name:       "resting on ground",
			birdY:      750,
			wantHitIdx: -1,
		},
		{
			name:       "top segment",
			birdY:      90,
			obstacles:  []Obstacle{{X: 60, GapY: 100, GapHeight: 220}},
			wantHit:    true,
			wantHitIdx: 0,
		},
		{
			name:       "bottom segment",
			birdY:      300,
			obstacles:  []Obstacle{{X: 60, GapY: 100, GapHeight: 220}},
			wantHit:    true,
			wantHitIdx: 0,
		},
		{
			name:       "edges of the gap",
			birdY:      100,
			obstacles:  []Obstacle{{X: 60, GapY: 100, GapHeight: 50}},
			wantHitIdx: -1,
		},
		{
			name:       "inside the gap and the span",
			birdY:      150,
			obstacles:  []Obstacle{{X: 40, GapY: 100, GapHeight: 220}},
			wantHitIdx: -1,
			wantPassed: []int{0},
		},
		{
			name:       "already passed",
			birdY:      150,
			obstacles:  []Obstacle{{X: 40, GapY: 100, GapHeight: 220, Passed: true}},
			wantHitIdx: -1,
		},
		{
			name:       "behind the bird",
			birdY:      600,
			obstacles:  []Obstacle{{X: -60, GapY: 100, GapHeight: 220}},
			wantHitIdx: -1,
			wantPassed: []int{0},
		},
		{
			name:       "ahead of the bird",
			birdY:      600,
			obstacles:  []Obstacle{{X: 100, GapY: 100, GapHeight: 220}},
			wantHitIdx: -1,
		},
		{
			name:  "hit clears passes",
			birdY: 600,
			obstacles: []Obstacle{
				{X: -60, GapY: 100, GapHeight: 220},
				{X: 80, GapY: 100, GapHeight: 220},
			},
			wantHit:    true,
			wantHitIdx: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bird := core.NewRect(50, tt.birdY, 50, 50)
			c := Detect(bird, tt.obstacles, width, field)

			if c.Hit != tt.wantHit {
				t.Errorf("Hit = %v, want %v", c.Hit, tt.wantHit)
			}
			if c.OutOfBounds != tt.wantOut {
				t.Errorf("OutOfBounds = %v, want %v", c.OutOfBounds, tt.wantOut)
			}
			if c.Obstacle != tt.wantHitIdx {
				t.Errorf("Obstacle = %d, want %d", c.Obstacle, tt.wantHitIdx)
			}
			if len(c.Passed) != len(tt.wantPassed) {
				t.Fatalf("Passed = %v, want %v", c.Passed, tt.wantPassed)
			}
			for i := range c.Passed {
				if c.Passed[i] != tt.wantPassed[i] {
					t.Errorf("Passed = %v, want %v", c.Passed, tt.wantPassed)
				}
			}
		})
	}
}
