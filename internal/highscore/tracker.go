// Package highscore keeps the best score across sessions.
// The best score only ever moves up, and a write happens only when a run
// strictly beats the stored value.
package highscore

import (
	"fmt"
	"sync"
)

// Store persists a single best score.
type Store interface {
	// Load returns the stored best, or 0 when nothing has been stored yet.
	Load() (int, error)
	// Save overwrites the stored best.
	Save(score int) error
}

// Tracker caches the best score from a Store and records new bests.
// Safe for concurrent use; SSH sessions share one tracker per mode.
type Tracker struct {
	mu     sync.Mutex
	store  Store
	best   int
	loaded bool
}

// NewTracker creates a tracker backed by store. A nil store keeps the best
// score in memory only.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Best returns the current best score, loading it on first use.
func (t *Tracker) Best() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.loadLocked(); err != nil {
		return t.best, err
	}
	return t.best, nil
}

// Record offers a finished run's score. It reports whether the score became
// the new best. The store is written only in that case.
func (t *Tracker) Record(score int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.loadLocked(); err != nil {
		return false, err
	}
	if score <= t.best {
		return false, nil
	}

	t.best = score
	if t.store == nil {
		return true, nil
	}
	if err := t.store.Save(score); err != nil {
		return true, fmt.Errorf("highscore: cannot save best score: %w", err)
	}
	return true, nil
}

func (t *Tracker) loadLocked() error {
	if t.loaded {
		return nil
	}
	if t.store == nil {
		t.loaded = true
		return nil
	}

	best, err := t.store.Load()
	if err != nil {
		return fmt.Errorf("highscore: cannot load best score: %w", err)
	}
	t.best = best
	t.loaded = true
	return nil
}
