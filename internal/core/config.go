package core

// RuntimeConfig contains what the platform layer knows at startup.
// The simulation itself only reads world settings; this describes the
// display surface and the loop driving it.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in cells (terminal) or pixels (window)
	ScreenH  int    // Screen height in cells or pixels
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed for gap placement, 0 = time based
	Player   string // Name recorded in the run journal
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
		Player:   "local",
	}
}
