package loop

import (
	"context"
	"time"
)

// Run calls step every interval until ctx is done or step returns false.
// The ticker is stopped on return, so at most one timer is ever live per
// call. Run blocks; it returns ctx.Err() on cancellation and nil when step
// ends the loop.
func Run(ctx context.Context, interval time.Duration, step func() bool) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !step() {
				return nil
			}
		}
	}
}
