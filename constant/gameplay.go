package constant

import "time"

// Board
const (
	// TileCount is the default side length of the square grid (400px canvas / 20px tiles)
	TileCount = 20

	// MinTileCount keeps the start cell and the food fallback cell distinct and inside the board
	MinTileCount = 4

	// MaxTileCount bounds the board so a terminal cell-per-tile layout stays drawable
	MaxTileCount = 200
)

// Scoring & Difficulty
const (
	// ScorePerFood is the score added for every food eaten
	ScorePerFood = 10

	// SpeedUpEvery is the score multiple at which the tick interval shrinks
	SpeedUpEvery = 50

	// InitialTickInterval is the simulation step duration at session start
	InitialTickInterval = 150 * time.Millisecond

	// MinTickInterval is the floor; the interval is only decremented while strictly above it
	MinTickInterval = 50 * time.Millisecond

	// TickIntervalStep is the decrement applied on each speed-up
	TickIntervalStep = 10 * time.Millisecond
)

// Food Placement
const (
	// FoodPlacementAttempts caps rejection sampling before the fallback is used
	FoodPlacementAttempts = 100

	// FoodFallbackX, FoodFallbackY is the fixed cell used when sampling is exhausted
	// May overlap the snake on a near-full board
	FoodFallbackX = 1
	FoodFallbackY = 1
)

// History
const (
	// RecentSessions is how many finished sessions the game-over box lists
	RecentSessions = 3
)
