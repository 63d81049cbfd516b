package highscore

import (
	"fmt"
	"log"
)

// Options selects the store backend
type Options struct {
	Kind string
	Path string
}

// HighScoreService owns the store for the host's lifetime
type HighScoreService struct {
	store    Store
	recorder *Recorder
	initial  int
}

func NewService() *HighScoreService {
	return &HighScoreService{}
}

// Name implements service.Service
func (s *HighScoreService) Name() string { return "highscore" }

// Dependencies implements service.Service
func (s *HighScoreService) Dependencies() []string { return nil }

// Init implements service.Service
// Expects Options among args; a Store arg is used as-is. A failed load logs and starts from 0
func (s *HighScoreService) Init(args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case Store:
			s.store = v
		case Options:
			if s.store != nil {
				continue
			}
			st, err := Open(v.Kind, v.Path)
			if err != nil {
				return fmt.Errorf("open %s store: %w", v.Kind, err)
			}
			s.store = st
		}
	}
	if s.store == nil {
		s.store = NewMemoryStore(0)
	}

	score, err := s.store.Load()
	if err != nil {
		log.Printf("highscore: load failed, starting from 0: %v", err)
		score = 0
	}
	s.initial = score
	s.recorder = NewRecorder(s.store)
	return nil
}

// Start implements service.Service
func (s *HighScoreService) Start() error { return nil }

// Stop implements service.Service
func (s *HighScoreService) Stop() error {
	if s.store == nil {
		return nil
	}
	err := Close(s.store)
	s.store = nil
	return err
}

// Initial returns the score loaded at Init
func (s *HighScoreService) Initial() int { return s.initial }

// Recorder returns the game-over handler
func (s *HighScoreService) Recorder() *Recorder { return s.recorder }

// Store returns the active store
func (s *HighScoreService) Store() Store { return s.store }
