package core

import "time"

// DefaultFrameDelay is the fixed pause after every frame (roughly 60 FPS).
const DefaultFrameDelay = 16 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	FrameDelay time.Duration // Fixed sleep after each frame
	Seed       int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FrameDelay: DefaultFrameDelay,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
