package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrLoopRunning is returned when Run is called on a loop that is already running
var ErrLoopRunning = errors.New("frame loop already running")

// FrameFunc is called once per host frame with the time since loop start
// Returning false stops the loop
type FrameFunc func(now time.Duration) bool

// FrameLoop drives a FrameFunc at a fixed wall-clock cadence
// Timestamps come from the TimeProvider, so a mock provider fully controls what the frame sees
type FrameLoop struct {
	provider TimeProvider
	interval time.Duration
	frame    FrameFunc

	running atomic.Bool
	frames  atomic.Uint64
}

// NewFrameLoop creates a frame loop, interval <= 0 falls back to 16ms
func NewFrameLoop(provider TimeProvider, interval time.Duration, frame FrameFunc) *FrameLoop {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &FrameLoop{
		provider: provider,
		interval: interval,
		frame:    frame,
	}
}

// Run blocks until ctx is cancelled or the frame func returns false
// The first frame is delivered immediately with a zero timestamp
func (l *FrameLoop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	epoch := NewEpoch(l.provider)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	if !l.step(epoch) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !l.step(epoch) {
				return nil
			}
		}
	}
}

func (l *FrameLoop) step(epoch *Epoch) bool {
	l.frames.Add(1)
	return l.frame(epoch.Since())
}

// Frames returns the number of frames delivered
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

// IsRunning reports whether Run is active
func (l *FrameLoop) IsRunning() bool {
	return l.running.Load()
}
