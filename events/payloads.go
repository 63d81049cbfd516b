package events

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// SessionPayload identifies the session a lifecycle event belongs to
type SessionPayload struct {
	SessionID string
}

// DirectionPayload carries a committed heading change
type DirectionPayload struct {
	From core.Direction
	To   core.Direction
}

// FoodEatenPayload carries the eaten cell and the resulting score
type FoodEatenPayload struct {
	At     core.Point
	Score  int
	Length int
	Next   core.Point // Newly placed food
}

// SpeedUpPayload carries the tick interval change
type SpeedUpPayload struct {
	From time.Duration
	To   time.Duration
}

// CollisionKind names what ended the session
type CollisionKind int

const (
	CollisionWall CollisionKind = iota
	CollisionSelf
)

func (k CollisionKind) String() string {
	if k == CollisionSelf {
		return "self"
	}
	return "wall"
}

// GameOverPayload is the "session ended with score S" notification for UI and storage
type GameOverPayload struct {
	SessionID string
	Score     int
	HighScore int  // Best score including this session
	NewHigh   bool // Score strictly exceeded the previous best
	Length    int
	Cause     CollisionKind
	Ticks     uint64
	Duration  time.Duration // Running time, pauses excluded
}
