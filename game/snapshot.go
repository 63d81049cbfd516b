package game

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Snapshot is an immutable copy of what a renderer needs for one frame
type Snapshot struct {
	State         State
	Snake         []core.Point
	PrevSnake     []core.Point
	Food          core.Point
	HasFood       bool
	Direction     core.Direction
	Score         int
	HighScore     int
	TickInterval  time.Duration
	Interpolation float64
	TileCount     int
	Ticks         uint64
	SessionID     string
}

// Snapshot copies the current state, body slices are not shared with the session
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:         s.State(),
		Snake:         core.ClonePoints(s.grid.Snake),
		PrevSnake:     core.ClonePoints(s.grid.PrevSnake),
		Food:          s.grid.Food,
		HasFood:       s.grid.HasFood,
		Direction:     s.direction,
		Score:         s.score,
		HighScore:     s.highScore,
		TickInterval:  s.interval,
		Interpolation: s.interp,
		TileCount:     s.grid.TileCount,
		Ticks:         s.ticks,
		SessionID:     s.id,
	}
}

// Head returns the first segment
func (s Snapshot) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{}
	}
	return s.Snake[0]
}

// Length returns the number of segments
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// Segment returns the drawn position of segment i between its previous and current cell
// Segments without a previous cell are drawn at their current cell
func (s Snapshot) Segment(i int) (x, y float64) {
	cur := s.Snake[i]
	if i >= len(s.PrevSnake) {
		return float64(cur.X), float64(cur.Y)
	}
	prev := s.PrevSnake[i]
	f := s.Interpolation
	return Lerp(float64(prev.X), float64(cur.X), f), Lerp(float64(prev.Y), float64(cur.Y), f)
}

// Lerp blends a toward b by f
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
