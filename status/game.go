package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/game"
)

// GameMetrics caches the session metric pointers
// Observe runs once per frame from the frame goroutine; the event side runs from router dispatch
type GameMetrics struct {
	frames   *atomic.Int64
	ticks    *atomic.Int64
	score    *atomic.Int64
	length   *atomic.Int64
	eaten    *atomic.Int64
	deaths   *atomic.Int64
	speedUps *atomic.Int64
	dropped  *atomic.Int64
	fallback *atomic.Int64
	tickMs   *AtomicFloat
	interp   *AtomicFloat
	paused   *atomic.Bool
	state    *AtomicString
	food     *AtomicString
}

// NewGameMetrics registers the session metrics on reg
func NewGameMetrics(reg *Registry) *GameMetrics {
	return &GameMetrics{
		frames:   reg.Ints.Get("engine.frames"),
		ticks:    reg.Ints.Get("engine.ticks"),
		score:    reg.Ints.Get("game.score"),
		length:   reg.Ints.Get("game.length"),
		eaten:    reg.Ints.Get("game.eaten"),
		deaths:   reg.Ints.Get("game.deaths"),
		speedUps: reg.Ints.Get("game.speedups"),
		dropped:  reg.Ints.Get("events.dropped"),
		fallback: reg.Ints.Get("food.fallbacks"),
		tickMs:   reg.Floats.Get("engine.tick_ms"),
		interp:   reg.Floats.Get("engine.interp"),
		paused:   reg.Bools.Get("game.paused"),
		state:    reg.Strings.Get("game.state"),
		food:     reg.Strings.Get("game.food"),
	}
}

// Observe copies per-frame values from a snapshot
func (m *GameMetrics) Observe(snap game.Snapshot, frames uint64) {
	m.frames.Store(int64(frames))
	m.ticks.Store(int64(snap.Ticks))
	m.score.Store(int64(snap.Score))
	m.length.Store(int64(snap.Length()))
	m.tickMs.Set(float64(snap.TickInterval.Microseconds()) / 1000)
	m.interp.Set(snap.Interpolation)
	m.paused.Store(snap.State == game.StatePaused)
	m.state.Store(snap.State.String())
	if snap.HasFood {
		m.food.Store(fmt.Sprintf("%d, %d", snap.Food.X, snap.Food.Y))
	} else {
		m.food.Store("none")
	}
}

// ObserveHealth records event queue overflow and food placements that hit the attempt cap
func (m *GameMetrics) ObserveHealth(dropped uint64, fallbacks int) {
	m.dropped.Store(int64(dropped))
	m.fallback.Store(int64(fallbacks))
}

// HandleEvent counts gameplay events
func (m *GameMetrics) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodEaten:
		m.eaten.Add(1)
	case events.EventSpeedUp:
		m.speedUps.Add(1)
	case events.EventGameOver:
		m.deaths.Add(1)
	}
}

// EventTypes implements events.Handler
func (m *GameMetrics) EventTypes() []events.EventType {
	return []events.EventType{events.EventFoodEaten, events.EventSpeedUp, events.EventGameOver}
}

// Food returns the last observed food readout
func (m *GameMetrics) Food() string {
	return m.food.Load()
}
