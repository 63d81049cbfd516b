package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// Output is the device side of the player
// The speaker implementation is used by hosts; tests drive the mixer directly
type Output interface {
	Start(rate beep.SampleRate, bufferSize int, s beep.Streamer) error
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Start(rate beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (speakerOutput) Lock()   { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }
func (speakerOutput) Close()  { speaker.Close() }

// SpeakerOutput returns the default sound card output
func SpeakerOutput() Output {
	return speakerOutput{}
}

// Player mixes one-shot sound effects into a single output stream
type Player struct {
	mu       sync.Mutex
	cfg      *AudioConfig
	out      Output
	mixer    *beep.Mixer
	running  bool
	muted    bool
	lastPlay [core.SoundTypeCount]time.Time
	now      func() time.Time
}

// NewPlayer creates a stopped player, muted when cfg disables audio
func NewPlayer(cfg *AudioConfig, out Output) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if out == nil {
		out = SpeakerOutput()
	}
	return &Player{
		cfg:   cfg,
		out:   out,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
		now:   time.Now,
	}
}

// Start opens the output and begins streaming the mixer, no-op if already running
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := p.out.Start(rate, rate.N(constant.AudioBufferDuration), p.mixer); err != nil {
		return err
	}
	p.running = true
	return nil
}

// Stop clears queued sounds and closes the output
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()
	p.running = false
}

// Play queues a sound effect
// Returns false when stopped, muted, unknown, or within MinSoundGap of the same sound
func (p *Player) Play(st core.SoundType) bool {
	if p == nil || st < 0 || st >= core.SoundTypeCount {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running || p.muted {
		return false
	}

	now := p.now()
	if now.Sub(p.lastPlay[st]) < constant.MinSoundGap {
		return false
	}

	s := SoundEffect(st, p.cfg)
	if s == nil {
		return false
	}
	p.lastPlay[st] = now

	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state, a nil player is always muted
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *Player) IsMuted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) IsRunning() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Active returns the number of sounds still playing
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.Lock()
	defer p.out.Unlock()
	return p.mixer.Len()
}
