package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Platform frames per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// Default frame rate when none is configured.
const DefaultTickRate = 60

// DefaultConfig returns an 80x24 terminal at the default frame rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Normalized fills zero or negative fields from DefaultConfig.
// The seed is left alone.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// GameState is the platform's view of a running game.
type GameState struct {
	Score    int    // Kills in the current run
	Level    string // Name of the level being played
	Health   int    // Remaining hits before defeat
	GameOver bool   // The run ended in defeat or final victory
	Paused   bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
