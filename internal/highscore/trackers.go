package highscore

import "sync"

// Trackers hands out one shared Tracker per game mode, opening its Store
// on first use.
type Trackers struct {
	mu       sync.Mutex
	open     func(mode string) Store
	trackers map[string]*Tracker
}

// NewTrackers creates a set whose stores come from open. A nil open, or an
// open that returns nil, keeps best scores in memory.
func NewTrackers(open func(mode string) Store) *Trackers {
	return &Trackers{
		open:     open,
		trackers: make(map[string]*Tracker),
	}
}

// For returns the tracker for mode.
func (t *Trackers) For(mode string) *Tracker {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tr, ok := t.trackers[mode]; ok {
		return tr
	}

	var store Store
	if t.open != nil {
		store = t.open(mode)
	}
	tr := NewTracker(store)
	t.trackers[mode] = tr
	return tr
}
