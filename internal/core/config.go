// Package core holds runtime parameters shared by the engine and the
// platform layer.
package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains per-session runtime parameters.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// NewRand returns a generator for the given seed. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Rand returns a generator seeded from c.Seed.
func (c RuntimeConfig) Rand() *rand.Rand {
	return NewRand(c.Seed)
}
