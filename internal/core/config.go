package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the shuffle; 0 means derive from time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int           // Current score
	Moves   int           // Successful actions still on the undo stack
	Elapsed time.Duration // Wall time since the deal
	Won     bool          // Whether the game has been won
}

// StepResult is returned by Game.Apply() after each command.
type StepResult struct {
	State   GameState
	Message string // Outcome line for the status bar
	Err     error  // Non-nil when the command was rejected
	Quit    bool   // The player asked to leave the game
}
