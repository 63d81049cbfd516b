package game

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// TickResult is the outcome of one simulation step
type TickResult uint8

const (
	TickContinue TickResult = iota
	TickAte
	TickDied
)

func (r TickResult) String() string {
	switch r {
	case TickAte:
		return "ate"
	case TickDied:
		return "died"
	default:
		return "continue"
	}
}

// advance moves the snake one cell
// Body grows first and shrinks after, so the tail cell is still solid during classification
func (s *Session) advance() TickResult {
	s.commitDirection()
	if s.direction == core.DirNone {
		return TickContinue
	}

	g := s.grid
	g.PrevSnake = append(g.PrevSnake[:0], g.Snake...)

	candidate := g.Head().Add(s.direction.Delta())
	hit := Classify(candidate, g.Snake, g.Food, g.HasFood, g.TileCount)
	if hit.Lethal() {
		s.cause = hit
		return TickDied
	}

	g.Snake = append(g.Snake, core.Point{})
	copy(g.Snake[1:], g.Snake[:len(g.Snake)-1])
	g.Snake[0] = candidate

	if hit == CollisionFood {
		s.eat(candidate)
		return TickAte
	}

	g.Snake = g.Snake[:len(g.Snake)-1]
	return TickContinue
}

// commitDirection applies the buffered request at tick start
func (s *Session) commitDirection() {
	next := s.pending
	s.pending = core.DirNone
	if next == core.DirNone || next == s.direction || next.IsOpposite(s.direction) {
		return
	}
	prev := s.direction
	s.direction = next
	s.emit(events.EventDirectionChanged, events.DirectionPayload{From: prev, To: next})
}

// eat scores the food, places the next one and applies the speed-up threshold
func (s *Session) eat(at core.Point) {
	g := s.grid
	s.score += constant.ScorePerFood
	g.Food = s.placer.Place(g.Snake, g.TileCount)
	g.HasFood = true

	s.emit(events.EventFoodEaten, events.FoodEatenPayload{
		At:     at,
		Score:  s.score,
		Length: len(g.Snake),
		Next:   g.Food,
	})

	if s.score%constant.SpeedUpEvery == 0 && s.interval > constant.MinTickInterval {
		prev := s.interval
		s.interval -= constant.TickIntervalStep
		if s.interval < constant.MinTickInterval {
			s.interval = constant.MinTickInterval
		}
		s.emit(events.EventSpeedUp, events.SpeedUpPayload{From: prev, To: s.interval})
	}
}
