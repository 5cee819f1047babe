package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Collision is the outcome of one collision evaluation.
type Collision struct {
	Hit         bool
	OutOfBounds bool
	Obstacle    int   // Index of the obstacle that was hit, -1 if none
	Passed      []int // Indexes of obstacles cleared for the first time
}

// Detect evaluates the bird against the field bounds and every obstacle.
//
// The bird is out of bounds when its top is above field.TopLimit or its
// bottom is below field.Height. It hits an obstacle when their horizontal
// extents overlap and the bird is not fully inside the gap. An obstacle is
// passed when the bird sits strictly inside its horizontal span within the
// gap, or when the obstacle has moved entirely behind the bird. Obstacles
// already marked Passed are never reported again, and nothing is reported as
// passed on a hit.
func Detect(bird core.Rect, obstacles []Obstacle, width int, field config.FieldConfig) Collision {
	c := Collision{Obstacle: -1}

	if bird.Y < field.TopLimit || bird.Bottom() > field.Height {
		c.Hit = true
		c.OutOfBounds = true
		return c
	}

	for i, o := range obstacles {
		span := o.Span(width)
		if !bird.OverlapsX(span) {
			if !o.Passed && span.Right() <= bird.X {
				c.Passed = append(c.Passed, i)
			}
			continue
		}

		inGap := bird.Y >= o.GapY && bird.Bottom() <= o.GapBottom()
		if !inGap {
			c.Hit = true
			c.Obstacle = i
			c.Passed = nil
			return c
		}
		if !o.Passed && bird.InsideX(span) {
			c.Passed = append(c.Passed, i)
		}
	}
	return c
}
