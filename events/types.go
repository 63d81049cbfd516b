package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and is never emitted
	EventNone EventType = iota

	// EventSessionStarted signals Idle -> Running
	// Trigger: Session.Start | Payload: SessionPayload
	EventSessionStarted

	// EventSessionReset signals a fresh session in Idle
	// Trigger: Session.Restart, construction | Payload: SessionPayload
	EventSessionReset

	// EventPaused signals Running -> Paused
	// Trigger: Session.TogglePause | Payload: SessionPayload
	EventPaused

	// EventResumed signals Paused -> Running
	// Trigger: Session.TogglePause | Payload: SessionPayload
	EventResumed

	// EventDirectionChanged signals a buffered heading was committed at tick start
	// Trigger: SimulationStep | Payload: DirectionPayload
	EventDirectionChanged

	// EventFoodEaten signals the head entered the food cell
	// Trigger: SimulationStep | Consumer: audio | Payload: FoodEatenPayload
	EventFoodEaten

	// EventSpeedUp signals a tick interval decrement
	// Trigger: SimulationStep on score threshold | Consumer: audio | Payload: SpeedUpPayload
	EventSpeedUp

	// EventGameOver signals Running -> GameOver after a wall or self collision
	// Trigger: SimulationStep | Consumer: highscore.Recorder, audio | Payload: GameOverPayload
	EventGameOver
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Simulation tick the event was produced on
	Timestamp time.Time
}
