package engine

import (
	"time"
)

// FixedStepScheduler converts variable frame timestamps into whole simulation ticks
// Interval is re-read on every frame so speed changes apply to the next tick without a reset
type FixedStepScheduler struct {
	interval   func() time.Duration
	maxCatchUp int

	last        time.Duration
	accumulator time.Duration
	seeded      bool

	// Lifetime counters, not cleared by Reset
	frames uint64
	ticks  uint64
}

// NewFixedStepScheduler creates a scheduler reading the tick interval from the supplied func
// maxCatchUp <= 0 disables the per-frame clamp
func NewFixedStepScheduler(interval func() time.Duration, maxCatchUp int) *FixedStepScheduler {
	return &FixedStepScheduler{
		interval:   interval,
		maxCatchUp: maxCatchUp,
	}
}

// OnFrame records a frame timestamp and returns the number of ticks to run and the interpolation factor in [0,1)
// The first frame after construction or Reset only seeds the timestamp
func (s *FixedStepScheduler) OnFrame(now time.Duration) (int, float64) {
	s.frames++

	if !s.seeded {
		s.last = now
		s.accumulator = 0
		s.seeded = true
		return 0, 0
	}

	delta := now - s.last
	s.last = now
	if delta < 0 {
		// Host clock went backwards, contributes nothing
		delta = 0
	}

	interval := s.interval()
	if interval <= 0 {
		return 0, 0
	}

	s.accumulator += delta

	ticks := 0
	for s.accumulator >= interval {
		s.accumulator -= interval
		ticks++
	}

	// Drop backlog beyond the clamp, same resync the deadline loop uses when it falls behind
	if s.maxCatchUp > 0 && ticks > s.maxCatchUp {
		ticks = s.maxCatchUp
		s.accumulator = 0
	}

	s.ticks += uint64(ticks)
	return ticks, float64(s.accumulator) / float64(interval)
}

// Reset clears the accumulator and marks the next frame as a seeding frame
func (s *FixedStepScheduler) Reset() {
	s.accumulator = 0
	s.last = 0
	s.seeded = false
}

// Accumulator returns leftover time not yet consumed by a tick
func (s *FixedStepScheduler) Accumulator() time.Duration {
	return s.accumulator
}

// Seeded reports whether a frame timestamp has been recorded since the last Reset
func (s *FixedStepScheduler) Seeded() bool {
	return s.seeded
}

// Frames returns the number of frames observed since construction
func (s *FixedStepScheduler) Frames() uint64 {
	return s.frames
}

// Ticks returns the number of ticks emitted since construction
func (s *FixedStepScheduler) Ticks() uint64 {
	return s.ticks
}
