package game

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

func newTestSession(t *testing.T) (*Session, *events.EventQueue) {
	t.Helper()
	q := events.NewEventQueue()
	n := 0
	s := NewSession(Config{
		TileCount: 20,
		Rand:      &scriptedRand{vals: []int{0, 0, 19, 19, 5, 15}},
		Queue:     q,
		NewID: func() string {
			n++
			return fmt.Sprintf("session-%d", n)
		},
	})
	return s, q
}

func drainTypes(q *events.EventQueue) []events.EventType {
	var out []events.EventType
	for _, ev := range q.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func hasType(list []events.EventType, et events.EventType) bool {
	for _, v := range list {
		if v == et {
			return true
		}
	}
	return false
}

func TestNewSessionInitialState(t *testing.T) {
	s, q := newTestSession(t)

	if s.State() != StateIdle {
		t.Errorf("Expected Idle, got %v", s.State())
	}
	snap := s.Snapshot()
	if snap.Length() != 1 || snap.Head() != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected snake [(10,10)], got %v", snap.Snake)
	}
	if !snap.HasFood || core.Contains(snap.Snake, snap.Food) {
		t.Errorf("Expected food off the snake, got %v", snap.Food)
	}
	if s.Direction() != core.DirNone {
		t.Errorf("Expected no direction, got %v", s.Direction())
	}
	if s.TickInterval() != 150*time.Millisecond {
		t.Errorf("Expected 150ms, got %v", s.TickInterval())
	}
	if s.ID() != "session-1" {
		t.Errorf("Expected session-1, got %s", s.ID())
	}

	got := drainTypes(q)
	if len(got) != 1 || got[0] != events.EventSessionReset {
		t.Errorf("Expected [SessionReset], got %v", got)
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	s, q := newTestSession(t)
	q.Consume()

	if !s.Start() {
		t.Fatal("Expected Start from Idle to succeed")
	}
	if s.State() != StateRunning || s.Direction() != core.DirRight {
		t.Errorf("Expected Running heading right, got %v %v", s.State(), s.Direction())
	}
	if got := drainTypes(q); !hasType(got, events.EventSessionStarted) {
		t.Errorf("Expected SessionStarted, got %v", got)
	}

	if s.Start() {
		t.Error("Expected second Start to be rejected")
	}
	s.TogglePause()
	if s.Start() {
		t.Error("Expected Start from Paused to be rejected")
	}
}

func TestStartRequiresFood(t *testing.T) {
	s, _ := newTestSession(t)
	s.grid.HasFood = false

	if s.Start() {
		t.Fatal("Expected Start without food to be refused")
	}
	if s.State() != StateIdle || s.Direction() != core.DirNone {
		t.Errorf("Expected Idle with no heading, got %v %v", s.State(), s.Direction())
	}

	s.RepairFood()
	if !s.Start() || s.State() != StateRunning {
		t.Errorf("Expected Start after repair, got %v", s.State())
	}
}

func TestTickMovesRight(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}

	if got := s.OnTick(); got != TickContinue {
		t.Errorf("Expected continue, got %v", got)
	}

	snap := s.Snapshot()
	if snap.Length() != 1 || snap.Head() != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Expected [(11,10)], got %v", snap.Snake)
	}
	if snap.Score != 0 {
		t.Errorf("Expected score 0, got %d", snap.Score)
	}
	if len(snap.PrevSnake) != 1 || snap.PrevSnake[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected previous [(10,10)], got %v", snap.PrevSnake)
	}
}

func TestTickGrowsOnFood(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	s.grid.Food = core.Point{X: 11, Y: 10}
	q.Consume()

	before := len(s.grid.Snake)
	if got := s.OnTick(); got != TickAte {
		t.Fatalf("Expected ate, got %v", got)
	}
	if len(s.grid.Snake) != before+1 {
		t.Errorf("Expected length %d, got %d", before+1, len(s.grid.Snake))
	}
	if s.grid.Snake[0] != (core.Point{X: 11, Y: 10}) || s.grid.Snake[1] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected [(11,10) (10,10)], got %v", s.grid.Snake)
	}
	if s.Score() != constant.ScorePerFood {
		t.Errorf("Expected score %d, got %d", constant.ScorePerFood, s.Score())
	}
	if core.Contains(s.grid.Snake, s.grid.Food) {
		t.Errorf("Expected new food off the snake, got %v", s.grid.Food)
	}

	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventFoodEaten {
		t.Fatalf("Expected single FoodEaten, got %v", evs)
	}
	p := evs[0].Payload.(events.FoodEatenPayload)
	if p.Score != 10 || p.Length != 2 || p.Next != s.grid.Food {
		t.Errorf("Unexpected payload %+v", p)
	}

	// Next empty move keeps length
	s.OnTick()
	if len(s.grid.Snake) != 2 {
		t.Errorf("Expected length 2 after empty tick, got %d", len(s.grid.Snake))
	}
}

func TestWallCollision(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	s.grid.Snake = []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}}
	s.direction = core.DirLeft
	q.Consume()

	if got := s.OnTick(); got != TickDied {
		t.Fatalf("Expected died, got %v", got)
	}
	if s.State() != StateGameOver {
		t.Errorf("Expected GameOver, got %v", s.State())
	}

	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventGameOver {
		t.Fatalf("Expected GameOver event, got %v", evs)
	}
	p := evs[0].Payload.(events.GameOverPayload)
	if p.Cause != events.CollisionWall || p.Length != 2 || p.SessionID != "session-1" {
		t.Errorf("Unexpected payload %+v", p)
	}

	// Body is left as it was before the fatal move
	if s.grid.Snake[0] != (core.Point{X: 0, Y: 10}) {
		t.Errorf("Expected head unchanged, got %v", s.grid.Snake[0])
	}

	if s.OnTick() != TickContinue || s.State() != StateGameOver {
		t.Error("Expected ticks after game over to be no-ops")
	}
}

func TestSelfCollisionIntoNeck(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	// Neck sits on the left edge, so the move is inside the board and hits the body first
	s.grid.Snake = []core.Point{{X: 1, Y: 10}, {X: 0, Y: 10}}
	s.direction = core.DirLeft
	q.Consume()

	if got := s.OnTick(); got != TickDied {
		t.Fatalf("Expected died, got %v", got)
	}
	evs := q.Consume()
	if len(evs) != 1 {
		t.Fatalf("Expected one event, got %v", evs)
	}
	if p := evs[0].Payload.(events.GameOverPayload); p.Cause != events.CollisionSelf {
		t.Errorf("Expected self cause, got %v", p.Cause)
	}
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	// Head moving down lands on the tail cell that would be vacated this tick
	s.grid.Snake = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	s.direction = core.DirDown

	if got := s.OnTick(); got != TickDied {
		t.Fatalf("Expected died, got %v", got)
	}
	if s.cause != CollisionSelf {
		t.Errorf("Expected self collision, got %v", s.cause)
	}
}

func TestSpeedUpAtThreshold(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	s.score = 40
	s.grid.Food = core.Point{X: 11, Y: 10}
	q.Consume()

	s.OnTick()
	if s.Score() != 50 {
		t.Fatalf("Expected score 50, got %d", s.Score())
	}
	if s.TickInterval() != 140*time.Millisecond {
		t.Errorf("Expected 140ms, got %v", s.TickInterval())
	}
	if got := drainTypes(q); !hasType(got, events.EventSpeedUp) {
		t.Errorf("Expected SpeedUp event, got %v", got)
	}
}

func TestSpeedUpFloor(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.score = 90
	s.interval = constant.MinTickInterval
	s.grid.Food = core.Point{X: 11, Y: 10}

	s.OnTick()
	if s.TickInterval() != constant.MinTickInterval {
		t.Errorf("Expected floor %v, got %v", constant.MinTickInterval, s.TickInterval())
	}
}

func TestNoSpeedUpOffThreshold(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.score = 10
	s.grid.Food = core.Point{X: 11, Y: 10}

	s.OnTick()
	if s.TickInterval() != constant.InitialTickInterval {
		t.Errorf("Expected %v, got %v", constant.InitialTickInterval, s.TickInterval())
	}
}

func TestReverseDirectionRejected(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}

	if s.RequestDirection(core.DirLeft) {
		t.Error("Expected reverse request to be rejected")
	}
	s.OnTick()
	if s.Direction() != core.DirRight {
		t.Errorf("Expected heading right, got %v", s.Direction())
	}
}

func TestDirectionBufferedUntilTick(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}
	q.Consume()

	if !s.RequestDirection(core.DirUp) {
		t.Fatal("Expected Up to be accepted")
	}
	if !s.RequestDirection(core.DirDown) {
		t.Fatal("Expected Down to replace Up")
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected committed heading unchanged before tick, got %v", s.Direction())
	}

	s.OnTick()
	if s.Direction() != core.DirDown {
		t.Errorf("Expected Down after tick, got %v", s.Direction())
	}
	if s.grid.Snake[0] != (core.Point{X: 10, Y: 11}) {
		t.Errorf("Expected head (10,11), got %v", s.grid.Snake[0])
	}
	if got := drainTypes(q); !hasType(got, events.EventDirectionChanged) {
		t.Errorf("Expected DirectionChanged, got %v", got)
	}

	// Up is now the reverse of the committed heading
	if s.RequestDirection(core.DirUp) {
		t.Error("Expected Up to be rejected after committing Down")
	}
}

func TestDirectionRejectedWhenNotRunning(t *testing.T) {
	s, _ := newTestSession(t)
	if s.RequestDirection(core.DirUp) {
		t.Error("Expected rejection in Idle")
	}

	s.Start()
	s.TogglePause()
	if s.RequestDirection(core.DirUp) {
		t.Error("Expected rejection in Paused")
	}
	if s.RequestDirection(core.DirNone) {
		t.Error("Expected None to be rejected")
	}
}

func TestTogglePause(t *testing.T) {
	s, q := newTestSession(t)
	if s.TogglePause() || s.State() != StateIdle {
		t.Error("Expected TogglePause no-op in Idle")
	}

	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}
	q.Consume()

	s.TogglePause()
	if !s.Paused() {
		t.Fatalf("Expected Paused, got %v", s.State())
	}
	head := s.grid.Head()
	s.OnTick()
	if s.grid.Head() != head {
		t.Error("Expected no movement while paused")
	}

	s.TogglePause()
	if !s.Running() {
		t.Errorf("Expected Running, got %v", s.State())
	}
	got := drainTypes(q)
	if !hasType(got, events.EventPaused) || !hasType(got, events.EventResumed) {
		t.Errorf("Expected Paused and Resumed events, got %v", got)
	}
	if hasType(got, events.EventSessionStarted) {
		t.Error("Expected resume not to restart the session")
	}
}

func TestRestartIdempotent(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetHighScore(70)
	s.Start()
	s.grid.Food = core.Point{X: 11, Y: 10}
	s.OnTick()
	s.OnTick()

	s.Restart()
	once := s.Snapshot()
	s.Restart()
	twice := s.Snapshot()

	for _, snap := range []Snapshot{once, twice} {
		if snap.State != StateIdle {
			t.Errorf("Expected Idle, got %v", snap.State)
		}
		if snap.Length() != 1 || snap.Head() != (core.Point{X: 10, Y: 10}) {
			t.Errorf("Expected [(10,10)], got %v", snap.Snake)
		}
		if snap.Score != 0 || snap.Ticks != 0 {
			t.Errorf("Expected zero score and ticks, got %d %d", snap.Score, snap.Ticks)
		}
		if snap.Direction != core.DirNone {
			t.Errorf("Expected no direction, got %v", snap.Direction)
		}
		if snap.TickInterval != constant.InitialTickInterval {
			t.Errorf("Expected %v, got %v", constant.InitialTickInterval, snap.TickInterval)
		}
		if snap.HighScore != 70 {
			t.Errorf("Expected high score kept at 70, got %d", snap.HighScore)
		}
		if !snap.HasFood || core.Contains(snap.Snake, snap.Food) {
			t.Errorf("Expected valid food, got %v", snap.Food)
		}
	}
	if once.SessionID == twice.SessionID {
		t.Error("Expected a new session id per restart")
	}
}

func TestRestartFromEveryState(t *testing.T) {
	setups := map[string]func(s *Session){
		"idle":    func(s *Session) {},
		"running": func(s *Session) { s.Start() },
		"paused":  func(s *Session) { s.Start(); s.TogglePause() },
		"gameover": func(s *Session) {
			s.Start()
			s.grid.Snake = []core.Point{{X: 19, Y: 0}}
			s.OnTick()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestSession(t)
			setup(s)
			s.Restart()
			if s.State() != StateIdle {
				t.Errorf("Expected Idle, got %v", s.State())
			}
		})
	}
}

func TestGameOverHighScore(t *testing.T) {
	s, q := newTestSession(t)
	s.SetHighScore(20)
	s.Start()
	s.score = 30
	s.grid.Snake = []core.Point{{X: 19, Y: 3}}
	q.Consume()

	s.OnTick()
	evs := q.Consume()
	p := evs[len(evs)-1].Payload.(events.GameOverPayload)
	if !p.NewHigh || p.HighScore != 30 || p.Score != 30 {
		t.Errorf("Expected new high 30, got %+v", p)
	}
	if s.HighScore() != 30 {
		t.Errorf("Expected session high score 30, got %d", s.HighScore())
	}

	// Tying the best is not a new high
	s.Restart()
	s.Start()
	s.score = 30
	s.grid.Snake = []core.Point{{X: 19, Y: 3}}
	q.Consume()
	s.OnTick()
	evs = q.Consume()
	p = evs[len(evs)-1].Payload.(events.GameOverPayload)
	if p.NewHigh {
		t.Error("Expected tie not to be a new high")
	}
}

func TestOnFrameRunsScheduledTicks(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}

	s.OnFrame(0)
	f := s.OnFrame(160 * time.Millisecond)

	if s.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", s.Ticks())
	}
	want := 10.0 / 150.0
	if math.Abs(f-want) > 1e-9 {
		t.Errorf("Expected interpolation %f, got %f", want, f)
	}
}

func TestOnFrameNoBurstAfterPause(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}

	s.OnFrame(0)
	s.OnFrame(150 * time.Millisecond)
	s.TogglePause()

	s.OnFrame(5 * time.Second)
	if s.Ticks() != 1 {
		t.Errorf("Expected no ticks while paused, got %d", s.Ticks())
	}

	s.TogglePause()
	s.OnFrame(30 * time.Second)
	if s.Ticks() != 1 {
		t.Errorf("Expected resume frame to only seed, got %d ticks", s.Ticks())
	}
	s.OnFrame(30*time.Second + 150*time.Millisecond)
	if s.Ticks() != 2 {
		t.Errorf("Expected 2 ticks, got %d", s.Ticks())
	}
}

func TestOnFrameFirstFrameAfterStartSeeds(t *testing.T) {
	s, _ := newTestSession(t)

	// Frames while idle must not carry into the run
	s.OnFrame(0)
	s.OnFrame(10 * time.Second)

	s.Start()
	s.grid.Food = core.Point{X: 0, Y: 0}
	s.OnFrame(20 * time.Second)
	if s.Ticks() != 0 {
		t.Errorf("Expected no ticks on first running frame, got %d", s.Ticks())
	}
}

func TestOnFrameStopsAtGameOver(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.grid.Snake = []core.Point{{X: 18, Y: 0}}
	s.grid.Food = core.Point{X: 0, Y: 5}

	s.OnFrame(0)
	s.OnFrame(time.Second) // Clamped to 5 ticks, death on the second

	if s.State() != StateGameOver {
		t.Fatalf("Expected GameOver, got %v", s.State())
	}
	if s.Ticks() != 2 {
		t.Errorf("Expected ticks to stop at death, got %d", s.Ticks())
	}
}

func TestRepairFood(t *testing.T) {
	s, _ := newTestSession(t)

	if s.RepairFood() {
		t.Error("Expected valid food to be left alone")
	}

	s.grid.HasFood = false
	if !s.RepairFood() || !s.grid.FoodValid() {
		t.Error("Expected missing food to be regenerated")
	}

	s.grid.Food = core.Point{X: 25, Y: -3}
	if !s.RepairFood() || !s.grid.FoodValid() {
		t.Error("Expected off-board food to be regenerated")
	}
}

func TestSnapshotIsolated(t *testing.T) {
	s, _ := newTestSession(t)
	snap := s.Snapshot()
	snap.Snake[0] = core.Point{X: 0, Y: 0}

	if s.grid.Snake[0] != (core.Point{X: 10, Y: 10}) {
		t.Error("Expected snapshot mutation not to reach the session")
	}
}

func TestSnapshotSegmentInterpolation(t *testing.T) {
	snap := Snapshot{
		Snake:         []core.Point{{X: 11, Y: 10}, {X: 10, Y: 10}},
		PrevSnake:     []core.Point{{X: 10, Y: 10}},
		Interpolation: 0.25,
	}

	x, y := snap.Segment(0)
	if x != 10.25 || y != 10 {
		t.Errorf("Expected (10.25,10), got (%f,%f)", x, y)
	}

	// New tail segment has no previous cell
	x, y = snap.Segment(1)
	if x != 10 || y != 10 {
		t.Errorf("Expected (10,10), got (%f,%f)", x, y)
	}
}
