package storage

import (
	"database/sql"
	"fmt"
	"time"
)

const defaultLimit = 10

// Run is one finished game.
type Run struct {
	ID       int64
	Mode     string
	Score    int
	PlayedAt time.Time
}

// AddRun records a finished game and returns its id.
func (s *Store) AddRun(mode string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO runs (mode, score, played_at) VALUES (?, ?, ?)`,
		mode, score, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("storage: add run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns up to limit runs of mode, best first. Ties keep the
// order they were played in.
func (s *Store) TopRuns(mode string, limit int) ([]Run, error) {
	return s.runs(`ORDER BY score DESC, id ASC`, mode, limit)
}

// RecentRuns returns up to limit runs of mode, newest first.
func (s *Store) RecentRuns(mode string, limit int) ([]Run, error) {
	return s.runs(`ORDER BY id DESC`, mode, limit)
}

func (s *Store) runs(order, mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.Query(`SELECT id, mode, score, played_at FROM runs WHERE mode = ? `+order+` LIMIT ?`, mode, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r  Run
			at int64
		)
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.PlayedAt = time.Unix(at, 0)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	return out, nil
}

// ClearScores removes the history and the stored best of mode.
func (s *Store) ClearScores(mode string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clear %s: %w", mode, err)
	}
	for _, q := range []string{`DELETE FROM runs WHERE mode = ?`, `DELETE FROM best WHERE mode = ?`} {
		if _, err := tx.Exec(q, mode); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: clear %s: %w", mode, err)
		}
	}
	return tx.Commit()
}

// Stats summarizes the history of a mode.
type Stats struct {
	Mode       string
	Runs       int
	Best       int
	Average    float64
	Total      int64
	LastPlayed time.Time // zero when never played
}

// Stats returns the summary of mode. Best also counts the stored best, so a
// cleared history with a cookie-synced best still reports it.
func (s *Store) Stats(mode string) (Stats, error) {
	st := Stats{Mode: mode}
	var last sql.NullInt64
	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		COALESCE(SUM(score), 0), MAX(played_at) FROM runs WHERE mode = ?`, mode).
		Scan(&st.Runs, &st.Best, &st.Average, &st.Total, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: stats %s: %w", mode, err)
	}
	if last.Valid {
		st.LastPlayed = time.Unix(last.Int64, 0)
	}

	best, err := s.Best(mode)
	if err != nil {
		return Stats{}, err
	}
	st.Best = max(st.Best, best)
	return st, nil
}

// AllStats returns the history summary of every mode that has runs.
func (s *Store) AllStats() (map[string]Stats, error) {
	rows, err := s.db.Query(`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(played_at)
		FROM runs GROUP BY mode`)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]Stats)
	for rows.Next() {
		var (
			st   Stats
			last int64
		)
		if err := rows.Scan(&st.Mode, &st.Runs, &st.Best, &st.Average, &st.Total, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.LastPlayed = time.Unix(last, 0)
		all[st.Mode] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	return all, nil
}
