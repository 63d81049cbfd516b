package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame callback rate (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpTicks bounds ticks run in a single frame after a stall
	// Excess whole intervals are dropped instead of replayed
	MaxCatchUpTicks = 5

	// InputBufferSize is the capacity of the host input channel
	InputBufferSize = 64
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Logging
const (
	// LogDir holds debug logs relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of the active log on startup
	MaxLogSize = 10 * 1024 * 1024
)
