package game

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/fsm"
	"github.com/lixenwraith/vi-snake/events"
)

//go:embed session.toml
var sessionGraph string

// Config carries construction parameters, zero fields take defaults from constant
type Config struct {
	TileCount       int
	InitialInterval time.Duration
	MaxCatchUp      int
	HighScore       int

	// Rand drives food placement, nil uses math/rand seeded with 1
	Rand Rand

	// Queue receives lifecycle and gameplay events, nil discards them
	Queue *events.EventQueue

	// NewID generates session identifiers, nil uses random UUIDs
	NewID func() string
}

// Session owns one play session: board, heading, score, speed and lifecycle
// Not safe for concurrent use; hosts call it from the frame goroutine only
type Session struct {
	grid      *Grid
	placer    *FoodPlacer
	scheduler *engine.FixedStepScheduler
	machine   *fsm.Machine[*Session]
	queue     *events.EventQueue
	newID     func() string

	initialInterval time.Duration

	direction core.Direction // Committed heading
	pending   core.Direction // Latest accepted request, applied at next tick
	score     int
	highScore int
	interval  time.Duration
	id        string

	ticks  uint64
	played time.Duration
	interp float64
	cause  Collision
}

// NewSession builds a session in Idle with a fresh board
// Panics if the embedded lifecycle graph fails to load
func NewSession(cfg Config) *Session {
	if cfg.TileCount <= 0 {
		cfg.TileCount = constant.TileCount
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = constant.InitialTickInterval
	}
	if cfg.MaxCatchUp == 0 {
		cfg.MaxCatchUp = constant.MaxCatchUpTicks
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	s := &Session{
		grid:            NewGrid(cfg.TileCount),
		placer:          NewFoodPlacer(cfg.Rand),
		queue:           cfg.Queue,
		newID:           cfg.NewID,
		initialInterval: cfg.InitialInterval,
		highScore:       cfg.HighScore,
		interval:        cfg.InitialInterval,
	}
	s.scheduler = engine.NewFixedStepScheduler(s.TickInterval, cfg.MaxCatchUp)

	if err := s.loadMachine(); err != nil {
		panic(fmt.Sprintf("session lifecycle: %v", err))
	}
	return s
}

func (s *Session) loadMachine() error {
	m := fsm.NewMachine[*Session]()
	m.RegisterGuard("FoodReady", func(s *Session) bool { return s.grid.FoodValid() })
	m.RegisterAction("ResetWorld", func(s *Session, _ any) { s.resetWorld() })
	m.RegisterAction("ResetClock", func(s *Session, _ any) {
		s.scheduler.Reset()
	})
	m.RegisterAction("EmitEvent", func(s *Session, args any) {
		s.emit(args.(*fsm.EmitEventArgs).Type, events.SessionPayload{SessionID: s.id})
	})
	m.RegisterAction("FinishRun", func(s *Session, _ any) { s.finishRun() })

	if err := m.LoadConfig([]byte(sessionGraph)); err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	s.machine = m
	if err := m.Init(s); err != nil {
		return fmt.Errorf("failed to enter initial state: %w", err)
	}
	return nil
}

// resetWorld restores every per-session value to its initial form
func (s *Session) resetWorld() {
	s.grid.reset()
	s.grid.Food = s.placer.Place(s.grid.Snake, s.grid.TileCount)
	s.grid.HasFood = true

	s.direction = core.DirNone
	s.pending = core.DirNone
	s.score = 0
	s.interval = s.initialInterval
	s.ticks = 0
	s.played = 0
	s.interp = 0
	s.cause = CollisionEmpty
	s.id = s.newID()
}

// finishRun settles the high score and publishes the game-over notification
func (s *Session) finishRun() {
	prevHigh := s.highScore
	newHigh := s.score > prevHigh
	if newHigh {
		s.highScore = s.score
	}
	s.emit(events.EventGameOver, events.GameOverPayload{
		SessionID: s.id,
		Score:     s.score,
		HighScore: s.highScore,
		NewHigh:   newHigh,
		Length:    len(s.grid.Snake),
		Cause:     s.cause.Kind(),
		Ticks:     s.ticks,
		Duration:  s.played,
	})
}

func (s *Session) emit(et events.EventType, payload any) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.GameEvent{
		Type:      et,
		Payload:   payload,
		Tick:      s.ticks,
		Timestamp: time.Now(),
	})
}

// Start begins play from Idle heading right
// Refused while the board has no valid food; RepairFood restores it
func (s *Session) Start() bool {
	if s.State() != StateIdle {
		return false
	}
	s.direction = core.DirRight
	s.pending = core.DirNone
	if !s.machine.HandleEvent(s, "Start") {
		s.direction = core.DirNone
		return false
	}
	return true
}

// TogglePause flips Running and Paused, no-op in other states
func (s *Session) TogglePause() bool {
	switch s.State() {
	case StateRunning, StatePaused:
	default:
		return false
	}
	if !s.machine.HandleEvent(s, "TogglePause") {
		return false
	}
	if s.State() == StateRunning {
		s.emit(events.EventResumed, events.SessionPayload{SessionID: s.id})
	}
	return true
}

// RequestDirection buffers d for the next tick
// Rejected outside Running and when d reverses the committed heading
func (s *Session) RequestDirection(d core.Direction) bool {
	if s.State() != StateRunning || d == core.DirNone {
		return false
	}
	if d.IsOpposite(s.direction) {
		return false
	}
	s.pending = d
	return true
}

// Restart returns to Idle with a fresh board from any state
func (s *Session) Restart() {
	s.machine.HandleEvent(s, "Restart")
}

// OnTick runs one simulation step while Running
func (s *Session) OnTick() TickResult {
	if s.State() != StateRunning {
		return TickContinue
	}

	interval := s.interval
	result := s.advance()
	s.ticks++
	s.played += interval

	if result == TickDied {
		s.machine.HandleEvent(s, "Died")
	}
	return result
}

// OnFrame feeds a host timestamp to the scheduler and runs the due ticks
// Returns the interpolation factor; frozen while not Running
func (s *Session) OnFrame(now time.Duration) float64 {
	ticks, f := s.scheduler.OnFrame(now)
	if s.State() != StateRunning {
		return s.interp
	}

	for i := 0; i < ticks; i++ {
		if s.OnTick() == TickDied {
			break
		}
	}
	if s.State() == StateRunning {
		s.interp = f
	}
	return s.interp
}

// RepairFood regenerates missing or off-board food, reports whether it did
func (s *Session) RepairFood() bool {
	if s.grid.FoodValid() {
		return false
	}
	s.grid.Food = s.placer.Place(s.grid.Snake, s.grid.TileCount)
	s.grid.HasFood = true
	return true
}

// State returns the current lifecycle phase
func (s *Session) State() State {
	return parseState(s.machine.Current())
}

// Running reports whether ticks are being applied
func (s *Session) Running() bool {
	return s.State() == StateRunning
}

// Paused reports whether the session is suspended
func (s *Session) Paused() bool {
	return s.State() == StatePaused
}

func (s *Session) Score() int                  { return s.score }
func (s *Session) HighScore() int              { return s.highScore }
func (s *Session) Direction() core.Direction   { return s.direction }
func (s *Session) TickInterval() time.Duration { return s.interval }
func (s *Session) ID() string                  { return s.id }
func (s *Session) Ticks() uint64               { return s.ticks }
func (s *Session) Grid() *Grid                 { return s.grid }

// FoodFallbacks returns how many food placements used the fixed fallback cell
func (s *Session) FoodFallbacks() int { return s.placer.Fallbacks() }

// SetHighScore seeds the best score, typically from a persistent store at startup
func (s *Session) SetHighScore(score int) {
	if score < 0 {
		score = 0
	}
	s.highScore = score
}

// Scheduler exposes the frame scheduler for metrics
func (s *Session) Scheduler() *engine.FixedStepScheduler {
	return s.scheduler
}
