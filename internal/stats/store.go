// internal/stats/store.go
//
// Round history backed by SQLite.
// Responsibilities:
//   - Record finished rounds (won/lost, attempts, finish time).
//   - List the most recent rounds, newest first.
//   - Summarise the history: played, wins, current and longest streak,
//     and the distribution of winning attempts.
//
// finished_at is stored as Unix nanoseconds so ordering is numeric.

// Package stats records finished rounds in SQLite and summarises them.
package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Outcome of a finished round.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Round is one finished round.
type Round struct {
	ID         string    `json:"id"`
	Answer     string    `json:"answer"`
	Outcome    string    `json:"outcome"`  // won | lost
	Attempts   int       `json:"attempts"` // guesses used, including a winning one
	FinishedAt time.Time `json:"finishedAt"`
}

// Summary aggregates the history.
type Summary struct {
	Played       int         `json:"played"`
	Wins         int         `json:"wins"`
	Streak       int         `json:"streak"`    // consecutive wins ending at the latest round
	MaxStreak    int         `json:"maxStreak"` // longest run of wins
	Distribution map[int]int `json:"distribution"`
}

// Store is the SQLite-backed history.
type Store struct{ db *sql.DB }

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts a finished round. A round already recorded is ignored.
func (s *Store) Record(ctx context.Context, r Round) error {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return fmt.Errorf("stats: unknown outcome %q", r.Outcome)
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO rounds (id, answer, outcome, attempts, finished_at)
        VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Answer, r.Outcome, r.Attempts, r.FinishedAt.UnixNano(),
	)
	return err
}

// Recent returns the latest rounds, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, answer, outcome, attempts, finished_at
        FROM rounds
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Round, 0, limit)
	for rows.Next() {
		var (
			r        Round
			finished int64
		)
		if err := rows.Scan(&r.ID, &r.Answer, &r.Outcome, &r.Attempts, &finished); err != nil {
			return nil, err
		}
		r.FinishedAt = time.Unix(0, finished).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary walks the history in order and computes totals and streaks.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	sum := Summary{Distribution: make(map[int]int)}
	rows, err := s.db.QueryContext(ctx, `
        SELECT outcome, attempts FROM rounds ORDER BY finished_at ASC, rowid ASC`)
	if err != nil {
		return sum, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			outcome  string
			attempts int
		)
		if err := rows.Scan(&outcome, &attempts); err != nil {
			return sum, err
		}
		sum.Played++
		if outcome != OutcomeWon {
			sum.Streak = 0
			continue
		}
		sum.Wins++
		sum.Streak++
		sum.Distribution[attempts]++
		if sum.Streak > sum.MaxStreak {
			sum.MaxStreak = sum.Streak
		}
	}
	return sum, rows.Err()
}
