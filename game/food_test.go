package game

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// scriptedRand replays a fixed sequence, wrapping around
type scriptedRand struct {
	vals []int
	pos  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.pos%len(r.vals)] % n
	r.pos++
	return v
}

func TestFoodPlacerRejectsOccupied(t *testing.T) {
	rng := &scriptedRand{vals: []int{10, 10, 10, 10, 3, 7}}
	placer := NewFoodPlacer(rng)

	snake := []core.Point{{X: 10, Y: 10}}
	got := placer.Place(snake, 20)

	if got != (core.Point{X: 3, Y: 7}) {
		t.Errorf("Expected (3,7), got %v", got)
	}
	if rng.pos != 6 {
		t.Errorf("Expected 6 draws, got %d", rng.pos)
	}
}

func TestFoodPlacerNeverOnSnake(t *testing.T) {
	placer := NewSeededFoodPlacer(42)
	snake := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}}

	for i := 0; i < 500; i++ {
		p := placer.Place(snake, 5)
		if core.Contains(snake, p) {
			t.Fatalf("Placement %d landed on snake at %v", i, p)
		}
		if !p.InBounds(5) {
			t.Fatalf("Placement %d out of bounds: %v", i, p)
		}
	}
	if placer.Fallbacks() != 0 {
		t.Errorf("Expected no fallbacks, got %d", placer.Fallbacks())
	}
}

func TestFoodPlacerFallbackOnFullBoard(t *testing.T) {
	var snake []core.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			snake = append(snake, core.Point{X: x, Y: y})
		}
	}

	rng := &scriptedRand{vals: []int{0, 1, 2, 3}}
	placer := NewFoodPlacer(rng)
	got := placer.Place(snake, 4)

	if got != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Expected fallback (1,1), got %v", got)
	}
	if rng.pos != 200 {
		t.Errorf("Expected 200 draws before fallback, got %d", rng.pos)
	}
	if placer.Fallbacks() != 1 {
		t.Errorf("Expected 1 fallback, got %d", placer.Fallbacks())
	}
}

func TestFoodPlacerSeedDeterministic(t *testing.T) {
	a := NewSeededFoodPlacer(7)
	b := NewSeededFoodPlacer(7)
	for i := 0; i < 20; i++ {
		pa, pb := a.Place(nil, 20), b.Place(nil, 20)
		if pa != pb {
			t.Fatalf("Draw %d: expected equal placements, got %v and %v", i, pa, pb)
		}
	}
}
