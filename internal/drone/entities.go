package drone

import "github.com/vovakirdan/neon-drone/internal/core"

// Drone is the player-controlled entity. X is fixed for a session; only Y moves.
type Drone struct {
	X, Y     float64
	W, H     float64
	Velocity float64 // Vertical velocity, positive is down
	Shield   bool    // Absorbs exactly one obstacle impact
	SlowMo   int     // Frames of slow motion remaining
}

// Box returns the drone hitbox.
func (d Drone) Box() core.Box {
	return core.NewBox(d.X, d.Y, d.W, d.H)
}

// Obstacle is a vertical barrier with a gap. Top is the height of the upper
// segment measured from the ceiling, Bottom the height of the lower segment
// measured from the floor.
type Obstacle struct {
	X      float64
	Width  float64
	Top    float64
	Bottom float64
	Passed bool // Scored

	// Oscillation state, used only when Moving is set
	Moving bool
	Dir    float64 // +1 opens downward, -1 upward
	MinTop float64
	MaxTop float64

	removed bool // Consumed by a shield this frame
}

// TopBox returns the upper blocking segment.
func (o Obstacle) TopBox() core.Box {
	return core.NewBox(o.X, 0, o.Width, o.Top)
}

// BottomBox returns the lower blocking segment for a field of height fieldH.
func (o Obstacle) BottomBox(fieldH float64) core.Box {
	return core.NewBox(o.X, fieldH-o.Bottom, o.Width, o.Bottom)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// PowerUpKind distinguishes power-up effects.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpSlowMo
)

// String returns the power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSlowMo:
		return "slowmo"
	default:
		return "unknown"
	}
}

// Pickup is a collectible square: a power-up or a data-bit.
type Pickup struct {
	X, Y float64 // Top-left corner
	Size float64
}

// Box returns the pickup bounds.
func (p Pickup) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Center returns the pickup center.
func (p Pickup) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// PowerUp is a pickup that grants a shield or slow motion.
type PowerUp struct {
	Pickup
	Kind PowerUpKind
}

// Coin is a data-bit pickup.
type Coin struct {
	Pickup
}

// Particle is a cosmetic exhaust speck.
type Particle struct {
	X, Y   float64
	VX, VY float64 // Subtracted from the position each frame
	Size   float64
	Life   int // Frames remaining
	Color  core.Color
}

// Star is a background speck. Its speed also sets its brightness.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Building is a parallax skyline block.
type Building struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Far   bool
	Seed  uint32 // Window texture seed
}
