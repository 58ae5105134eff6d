package core

import "time"

// DefaultTickInterval is the delay between two simulation ticks.
const DefaultTickInterval = 75 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Delay between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      30,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ended bool // True only on the tick that ended the game
}
