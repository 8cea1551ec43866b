package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain and initial drift
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as seen by the platform.
// The Outcome/FuelLeft/Ticks fields let the platform persist a full flight
// record without reaching into the simulation.
type GameState struct {
	Score    int    // Final score (non-zero only after a successful landing)
	GameOver bool   // Whether the flight has ended (landed or crashed)
	Landed   bool   // True if the flight ended on the pad within tolerances
	Message  string // Outcome message for the platform to display
	Outcome  string // Outcome tag for the flight log, empty while airborne
	FuelLeft int    // Remaining fuel units
	Ticks    int    // Simulation ticks flown
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface the platform drives. It contains pure logic with no
// terminal dependencies; the platform handles input mapping, timing, and
// display.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game. Called once at start and again
	// when restarting after a flight ends. The RuntimeConfig provides screen
	// dimensions and the RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
