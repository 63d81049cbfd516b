package game

import (
	"math/rand"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// Rand is the random source consumed by food placement
// *rand.Rand satisfies it; tests supply scripted sequences
type Rand interface {
	Intn(n int) int
}

// FoodPlacer picks food cells by rejection sampling against the snake body
type FoodPlacer struct {
	rng       Rand
	attempts  int
	fallback  core.Point
	fallbacks int
}

// NewFoodPlacer creates a placer over rng, nil falls back to math/rand seeded with 1
func NewFoodPlacer(rng Rand) *FoodPlacer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodPlacer{
		rng:      rng,
		attempts: constant.FoodPlacementAttempts,
		fallback: core.Point{X: constant.FoodFallbackX, Y: constant.FoodFallbackY},
	}
}

// NewSeededFoodPlacer creates a placer backed by math/rand with the given seed
func NewSeededFoodPlacer(seed int64) *FoodPlacer {
	return NewFoodPlacer(rand.New(rand.NewSource(seed)))
}

// Place samples up to the attempt cap for a free cell
// On exhaustion returns the fixed fallback cell even if the snake covers it
func (f *FoodPlacer) Place(snake []core.Point, tileCount int) core.Point {
	if tileCount > 0 {
		for i := 0; i < f.attempts; i++ {
			p := core.Point{X: f.rng.Intn(tileCount), Y: f.rng.Intn(tileCount)}
			if !core.Contains(snake, p) {
				return p
			}
		}
	}
	f.fallbacks++
	return f.fallback
}

// Fallbacks returns how many placements hit the attempt cap
func (f *FoodPlacer) Fallbacks() int {
	return f.fallbacks
}
