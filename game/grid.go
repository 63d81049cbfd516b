package game

import (
	"github.com/lixenwraith/vi-snake/core"
)

// Grid is the board state: snake body head first, food cell, square dimension
// PrevSnake holds the body as it was before the latest tick, for interpolated drawing
type Grid struct {
	TileCount int
	Snake     []core.Point
	PrevSnake []core.Point
	Food      core.Point
	HasFood   bool
}

// NewGrid returns an empty grid of the given dimension
func NewGrid(tileCount int) *Grid {
	return &Grid{TileCount: tileCount}
}

// Center returns the spawn cell
func (g *Grid) Center() core.Point {
	return core.Point{X: g.TileCount / 2, Y: g.TileCount / 2}
}

// Head returns the first segment, zero Point for an empty snake
func (g *Grid) Head() core.Point {
	if len(g.Snake) == 0 {
		return core.Point{}
	}
	return g.Snake[0]
}

// Occupied reports whether any snake segment sits on p
func (g *Grid) Occupied(p core.Point) bool {
	return core.Contains(g.Snake, p)
}

// FoodValid reports whether food exists and lies on the board
func (g *Grid) FoodValid() bool {
	return g.HasFood && g.Food.InBounds(g.TileCount)
}

// reset places a single segment at the center and clears food
func (g *Grid) reset() {
	g.Snake = append(g.Snake[:0], g.Center())
	g.PrevSnake = core.ClonePoints(g.Snake)
	g.Food = core.Point{}
	g.HasFood = false
}
