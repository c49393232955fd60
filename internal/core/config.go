package core

// RuntimeConfig carries the frontend-specific settings a game session starts with.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in cells
	ScreenH  int // Terminal height in cells
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
