package audio

import (
	"log"
	"sync/atomic"
)

// AudioService wraps Player as a service
// Audio is optional: a missing device leaves the service disabled instead of failing the host
type AudioService struct {
	player   *Player
	output   Output
	disabled atomic.Bool
}

// NewService creates an audio service writing to out, nil uses the speaker
func NewService(out Output) *AudioService {
	return &AudioService{output: out}
}

// Name implements service.Service
func (s *AudioService) Name() string { return "audio" }

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string { return nil }

// Init implements service.Service
// Accepts an *AudioConfig among args; a bool arg is the mute flag. Defaults come from the environment
func (s *AudioService) Init(args ...any) error {
	cfg := LoadAudioConfig()
	for _, arg := range args {
		switch v := arg.(type) {
		case *AudioConfig:
			cfg = v
		case bool:
			cfg.Enabled = !v
		}
	}
	s.player = NewPlayer(cfg, s.output)
	return nil
}

// Start implements service.Service
func (s *AudioService) Start() error {
	if s.player == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.player.Start(); err != nil {
		log.Printf("audio: continuing without audio: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Stop()
	}
	return nil
}

// IsDisabled reports whether the output could not be opened
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the player, which stays stopped and silent when disabled
func (s *AudioService) Player() *Player {
	return s.player
}
