package highscore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS high_score (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	score INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	score INTEGER NOT NULL,
	length INTEGER NOT NULL,
	cause TEXT,
	ticks INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	ended_at INTEGER NOT NULL -- unix milliseconds
)`,
}

// SQLiteStore keeps the best score and a history of finished sessions
// The best score is the larger of the saved value and the best recorded session
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path, ":memory:" is accepted
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	for _, query := range sqliteSchema {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Load implements Store
func (s *SQLiteStore) Load() (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT MAX(
		COALESCE((SELECT score FROM high_score WHERE id = 1), 0),
		COALESCE((SELECT MAX(score) FROM sessions), 0)
	)`).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("query high score: %w", err)
	}
	return score, nil
}

// Save implements Store
func (s *SQLiteStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	_, err := s.db.Exec(`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// RecordSession implements SessionLog
func (s *SQLiteStore) RecordSession(rec SessionRecord) error {
	if rec.EndedAt.IsZero() {
		rec.EndedAt = time.Now()
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO sessions (id, score, length, cause, ticks, duration_ms, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Score, rec.Length, rec.Cause, int64(rec.Ticks), rec.Duration.Milliseconds(), rec.EndedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("record session %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first
func (s *SQLiteStore) Recent(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(`SELECT id, score, length, cause, ticks, duration_ms, ended_at
		FROM sessions ORDER BY ended_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec   SessionRecord
			cause sql.NullString
			ticks int64
			ms    int64
			ended int64
		)
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Length, &cause, &ticks, &ms, &ended); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Cause = cause.String
		rec.Ticks = uint64(ticks)
		rec.Duration = time.Duration(ms) * time.Millisecond
		rec.EndedAt = time.UnixMilli(ended)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
