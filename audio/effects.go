package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length periodic wave, optionally gliding to an end frequency
type oscillator struct {
	from, to float64
	phase    float64
	length   int
	pos      int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sliding linearly from one frequency to another
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:   from,
		to:     to,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.pos) / float64(o.length)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with an attack/release gain curve over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.pos < e.attack:
		return float64(e.pos) / float64(e.attack)
	case e.release > 0 && e.pos >= e.total-e.release:
		return math.Max(0, float64(e.total-e.pos)/float64(e.release))
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or negative volume yields silence since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateEatSound is a short bright blip with an octave overtone
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.EatSoundDuration

	mixed := beep.Mix(
		newVolume(tone(660, d, constant.EatSoundAttack, constant.EatSoundRelease, WaveSine, rate), 0.7),
		newVolume(tone(1320, d, constant.EatSoundAttack, constant.EatSoundRelease, WaveSine, rate), 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[core.SoundEat]*cfg.MasterVolume)
}

// CreateSpeedUpSound plays two rising square notes
func CreateSpeedUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.SpeedUpNoteDuration

	seq := beep.Seq(
		tone(523.25, d, constant.SpeedUpSoundAttack, constant.SpeedUpSoundRelease, WaveSquare, rate),
		tone(783.99, d, constant.SpeedUpSoundAttack, constant.SpeedUpSoundRelease, WaveSquare, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[core.SoundSpeedUp]*cfg.MasterVolume*0.5)
}

// CreateGameOverSound is a falling saw sweep
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.GameOverSoundDuration

	sweep := NewGlide(330, 80, d, WaveSaw, rate)
	shaped := NewEnvelope(sweep, d, constant.GameOverSoundAttack, constant.GameOverSoundRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[core.SoundGameOver]*cfg.MasterVolume)
}

// CreateNewHighSound is a three-note triangle arpeggio
func CreateNewHighSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.NewHighNoteDuration
	a, r := constant.NewHighSoundAttack, constant.NewHighSoundRelease

	seq := beep.Seq(
		tone(659.25, d, a, r, WaveTriangle, rate),
		tone(783.99, d, a, r, WaveTriangle, rate),
		tone(1046.50, d*2, a, r*2, WaveTriangle, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[core.SoundNewHigh]*cfg.MasterVolume)
}

// SoundEffect returns a fresh streamer for the sound type, nil if unknown
// Output is capped at SoundDuration so the mixer always releases it
func SoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	var s beep.Streamer
	switch st {
	case core.SoundEat:
		s = CreateEatSound(cfg)
	case core.SoundSpeedUp:
		s = CreateSpeedUpSound(cfg)
	case core.SoundGameOver:
		s = CreateGameOverSound(cfg)
	case core.SoundNewHigh:
		s = CreateNewHighSound(cfg)
	default:
		return nil
	}
	return beep.Take(beep.SampleRate(cfg.SampleRate).N(SoundDuration(st)), s)
}

// SoundDuration returns the playing time of a sound type
func SoundDuration(st core.SoundType) time.Duration {
	switch st {
	case core.SoundEat:
		return constant.EatSoundDuration
	case core.SoundSpeedUp:
		return 2 * constant.SpeedUpNoteDuration
	case core.SoundGameOver:
		return constant.GameOverSoundDuration
	case core.SoundNewHigh:
		return 4 * constant.NewHighNoteDuration // Last note is held twice as long
	default:
		return 0
	}
}
