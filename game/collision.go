package game

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// Collision classifies a candidate head cell
type Collision uint8

const (
	CollisionEmpty Collision = iota
	CollisionFood
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionFood:
		return "food"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "empty"
	}
}

// Lethal reports whether the collision ends the session
func (c Collision) Lethal() bool {
	return c == CollisionWall || c == CollisionSelf
}

// Kind maps a lethal collision to its event form
func (c Collision) Kind() events.CollisionKind {
	if c == CollisionSelf {
		return events.CollisionSelf
	}
	return events.CollisionWall
}

// Classify checks wall, then body, then food
// The body check runs against the full pre-move body, so the tail cell still counts as occupied
func Classify(candidate core.Point, snake []core.Point, food core.Point, hasFood bool, tileCount int) Collision {
	if !candidate.InBounds(tileCount) {
		return CollisionWall
	}
	if core.Contains(snake, candidate) {
		return CollisionSelf
	}
	if hasFood && candidate == food {
		return CollisionFood
	}
	return CollisionEmpty
}
