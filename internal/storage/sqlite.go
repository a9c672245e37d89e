// Package storage keeps a ledger of finished matches for the lifetime of
// the process. Uses the pure-Go modernc.org/sqlite driver with an in-memory
// database; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pong/internal/engine"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// Store manages the in-memory SQLite ledger.
type Store struct {
	db *sql.DB
}

// MatchRecord is a stored match result.
type MatchRecord struct {
	ID int64
	engine.MatchResult
}

// Tally aggregates the matches of one session.
type Tally struct {
	Session   string
	Matches   int
	LeftWins  int
	RightWins int
	Frames    int64
}

// Open creates a fresh in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is its own database, keep exactly one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			frontend TEXT NOT NULL,
			winner INTEGER NOT NULL,
			score_left INTEGER NOT NULL,
			score_right INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_session ON matches(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match and returns its ID. A zero
// FinishedAt is stamped with the current time.
func (s *Store) SaveMatch(result engine.MatchResult) (int64, error) {
	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (session, frontend, winner, score_left, score_right, frames, duration_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Session,
		result.Frontend,
		int(result.Winner),
		result.Score.Left,
		result.Score.Right,
		result.Frames,
		result.Duration.Milliseconds(),
		result.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatchResult implements engine.ResultSaver.
func (s *Store) SaveMatchResult(result engine.MatchResult) error {
	_, err := s.SaveMatch(result)
	return err
}

// Ensure Store implements ResultSaver
var _ engine.ResultSaver = (*Store)(nil)

// RecentMatches returns up to limit matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session, frontend, winner, score_left, score_right, frames, duration_ms, finished_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var (
			r          MatchRecord
			winner     int
			durationMs int64
			finishedMs int64
		)
		if err := rows.Scan(
			&r.ID,
			&r.Session,
			&r.Frontend,
			&winner,
			&r.Score.Left,
			&r.Score.Right,
			&r.Frames,
			&durationMs,
			&finishedMs,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = pong.Side(winner)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.FinishedAt = time.UnixMilli(finishedMs)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Tally counts the matches and wins per side for a session.
// An empty session tallies every match.
func (s *Store) Tally(session string) (Tally, error) {
	t := Tally{Session: session}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(frames), 0)
		 FROM matches
		 WHERE ? = '' OR session = ?`,
		int(pong.SideLeft), int(pong.SideRight), session, session,
	).Scan(&t.Matches, &t.LeftWins, &t.RightWins, &t.Frames)
	if err != nil {
		return t, fmt.Errorf("storage: cannot tally matches: %w", err)
	}

	return t, nil
}
