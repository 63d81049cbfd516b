package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same type
	MinSoundGap = 40 * time.Millisecond
)

// Eat Sound
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 60 * time.Millisecond
)

// Speed-Up Sound (two rising notes)
const (
	SpeedUpNoteDuration = 70 * time.Millisecond
	SpeedUpSoundAttack  = 5 * time.Millisecond
	SpeedUpSoundRelease = 40 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundDuration = 400 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
)

// New High Score Sound
const (
	NewHighNoteDuration = 120 * time.Millisecond
	NewHighSoundAttack  = 5 * time.Millisecond
	NewHighSoundRelease = 80 * time.Millisecond
)
