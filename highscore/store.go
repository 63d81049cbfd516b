// Package highscore persists the best score across process restarts
package highscore

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNegativeScore is returned when saving a score below zero
var ErrNegativeScore = errors.New("negative score")

// Store loads and saves the best score
// A store that has never been written loads as 0 without error
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// SessionRecord describes one finished session
type SessionRecord struct {
	ID       string
	Score    int
	Length   int
	Cause    string
	Ticks    uint64
	Duration time.Duration
	EndedAt  time.Time
}

// SessionLog is implemented by stores that keep a per-session history
type SessionLog interface {
	RecordSession(rec SessionRecord) error
}

// History is implemented by stores that can list past sessions
type History interface {
	Recent(limit int) ([]SessionRecord, error)
}

// Summary formats a record for a one-line listing
func (r SessionRecord) Summary() string {
	cause := r.Cause
	if cause == "" {
		cause = "-"
	}
	return fmt.Sprintf("%4d  len %-3d %-4s %s", r.Score, r.Length, cause, r.Duration.Round(time.Second))
}

// Kinds accepted by Open
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Open creates a store of the named kind at path
func Open(kind, path string) (Store, error) {
	switch kind {
	case KindFile, "":
		return NewFileStore(path), nil
	case KindSQLite:
		return OpenSQLite(path)
	case KindMemory:
		return NewMemoryStore(0), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

// Close releases store resources when the store holds any
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// MemoryStore keeps the score in process, used for tests and -store memory
type MemoryStore struct {
	mu       sync.Mutex
	score    int
	sessions []SessionRecord
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	m.mu.Lock()
	m.score = score
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) RecordSession(rec SessionRecord) error {
	m.mu.Lock()
	m.sessions = append(m.sessions, rec)
	m.mu.Unlock()
	return nil
}

// Recent implements History, newest first
func (m *MemoryStore) Recent(limit int) ([]SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []SessionRecord
	for i := len(m.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.sessions[i])
	}
	return out, nil
}

// Sessions returns a copy of recorded sessions
func (m *MemoryStore) Sessions() []SessionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SessionRecord(nil), m.sessions...)
}
