package core

// RuntimeConfig contains configuration passed to the simulation driver at
// startup. Drivers use this to size the viewport and for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Driver ticks per second (default 10)
	Seed     int64 // RNG seed for reproducible randomized fields
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in the platform layer
	}
}
