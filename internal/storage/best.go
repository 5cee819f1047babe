package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Best returns the stored best score of mode, 0 when none is stored.
func (s *Store) Best(mode string) (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT score FROM best WHERE mode = ?`, mode).Scan(&score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: best %s: %w", mode, err)
	}
	return score, nil
}

// SetBest overwrites the stored best score of mode.
func (s *Store) SetBest(mode string, score int) error {
	_, err := s.db.Exec(`INSERT INTO best (mode, score, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(mode) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		mode, score, s.now().Unix())
	if err != nil {
		return fmt.Errorf("storage: set best %s: %w", mode, err)
	}
	return nil
}

// HighScore is the larger of the best run in the history and the stored
// best of mode.
func (s *Store) HighScore(mode string) (int, error) {
	var high int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM (
		SELECT score FROM runs WHERE mode = ?
		UNION ALL
		SELECT score FROM best WHERE mode = ?)`, mode, mode).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: high score %s: %w", mode, err)
	}
	return high, nil
}

// BestScores returns the stored best of mode as a highscore.Store.
func (s *Store) BestScores(mode string) *BestRecord {
	return &BestRecord{store: s, mode: mode}
}

// BestRecord is the stored best score of one mode.
type BestRecord struct {
	store *Store
	mode  string
}

func (r *BestRecord) Load() (int, error) { return r.store.Best(r.mode) }

func (r *BestRecord) Save(score int) error { return r.store.SetBest(r.mode, score) }
