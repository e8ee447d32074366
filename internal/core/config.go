package core

import "time"

// RuntimeConfig contains configuration passed to the simulation at initialization.
// Screen dimensions are terminal cells; the play field is measured in field units
// (the game's pixel space) and is derived from the screen by the platform.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	FieldW   float64 // Play-field width in field units
	FieldH   float64 // Play-field height in field units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FieldW:   800,
		FieldH:   480,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// WithScreen returns a copy with the screen set to w×h cells and the field
// scaled by the given cell size in field units.
func (c RuntimeConfig) WithScreen(w, h int, cellW, cellH float64) RuntimeConfig {
	c.ScreenW = w
	c.ScreenH = h
	c.FieldW = float64(w) * cellW
	c.FieldH = float64(h) * cellH
	return c
}
