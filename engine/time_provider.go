package engine

import "time"

// TimeProvider is the source of host timestamps for the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Epoch turns absolute provider readings into durations since a fixed origin
// Frame timestamps handed to the scheduler are produced this way
type Epoch struct {
	provider TimeProvider
	origin   time.Time
}

// NewEpoch anchors an epoch at the provider's current time
func NewEpoch(provider TimeProvider) *Epoch {
	return &Epoch{
		provider: provider,
		origin:   provider.Now(),
	}
}

// Since returns elapsed time from the origin, negative if the provider went backwards
func (e *Epoch) Since() time.Duration {
	return e.provider.Now().Sub(e.origin)
}
