package input

import (
	"github.com/gdamore/tcell/v2"
)

// MinSwipeCells is the shortest drag, in terminal cells, accepted as a swipe
const MinSwipeCells = 2

// Swipe classifies a drag from (x0,y0) to (x1,y1) by its dominant axis
// Returns CmdNone for drags shorter than minDist on both axes
// Ties between axes resolve to horizontal
func Swipe(x0, y0, x1, y1, minDist int) Command {
	dx, dy := x1-x0, y1-y0
	adx, ady := abs(dx), abs(dy)
	if adx < minDist && ady < minDist {
		return CmdNone
	}
	if adx >= ady {
		if dx > 0 {
			return CmdRight
		}
		return CmdLeft
	}
	if dy > 0 {
		return CmdDown
	}
	return CmdUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SwipeTracker turns press/drag/release mouse sequences into swipe commands
type SwipeTracker struct {
	MinDist int

	pressed bool
	startX  int
	startY  int
}

// NewSwipeTracker returns a tracker with the default threshold
func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{MinDist: MinSwipeCells}
}

// Handle consumes a mouse event, emitting a command on button release
func (t *SwipeTracker) Handle(ev *tcell.EventMouse) Command {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.pressed:
		t.pressed = true
		t.startX, t.startY = x, y
	case !down && t.pressed:
		t.pressed = false
		return Swipe(t.startX, t.startY, x, y, t.MinDist)
	}
	return CmdNone
}

// Reset drops any drag in progress
func (t *SwipeTracker) Reset() {
	t.pressed = false
}
