package core

// RuntimeConfig contains the per-run settings a frontend hands to the game.
type RuntimeConfig struct {
	ScreenW int    // Terminal width in characters (terminal frontends only)
	ScreenH int    // Terminal height in characters (terminal frontends only)
	Session string // Label recorded with finished matches
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Session: "local",
	}
}
