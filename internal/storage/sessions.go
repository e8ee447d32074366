package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionRecord is one finished session.
type SessionRecord struct {
	ID         int64
	RunID      string
	Owner      string
	Difficulty string
	Score      int
	Bits       int // Data-bits collected
	Shields    int // Shield power-ups used
	PowerUps   int // Power-ups of any kind used
	Frames     int
	CreatedAt  time.Time
}

// SaveSession appends a session to the history. A run id is generated when
// the record has none. Returns the run id.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (run_id, owner, difficulty, score, bits, shields, powerups, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Owner, rec.Difficulty, rec.Score, rec.Bits, rec.Shields, rec.PowerUps, rec.Frames,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.RunID, nil
}

const sessionColumns = `id, run_id, owner, difficulty, score, bits, shields, powerups, frames, created_at`

// TopSessions retrieves the best sessions, optionally for one difficulty.
// An empty difficulty means all of them. Results are ordered by score descending.
func (s *Store) TopSessions(difficulty string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	args := []any{}
	if difficulty != "" {
		query += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	return s.querySessions(query, args...)
}

// RecentSessions retrieves the latest sessions of one owner, newest first.
func (s *Store) RecentSessions(owner string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions WHERE owner = ? ORDER BY id DESC LIMIT ?`,
		owner, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.RunID, &r.Owner, &r.Difficulty,
			&r.Score, &r.Bits, &r.Shields, &r.PowerUps, &r.Frames,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	Difficulty string
	Sessions   int
	HighScore  int
	AvgScore   float64
	TotalBits  int64
	LastPlayed time.Time
}

// GetDifficultyStats aggregates the session history per difficulty.
func (s *Store) GetDifficultyStats() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(bits), MAX(created_at)
		 FROM sessions
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get difficulty stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DifficultyStats)
	for rows.Next() {
		var st DifficultyStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Sessions, &st.HighScore, &st.AvgScore, &st.TotalBits, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearSessions deletes the session history of one owner.
func (s *Store) ClearSessions(owner string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE owner = ?`, owner); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
