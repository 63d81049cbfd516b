package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundSpeedUp                   // Tick interval decreased
	SoundGameOver                  // Wall or self collision
	SoundNewHigh                   // Session ended with a new high score
	SoundTypeCount
)
