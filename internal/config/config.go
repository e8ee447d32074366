// Package config provides YAML-based game configuration loading: the named
// difficulty table and the tuning constants of the drone simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownDifficulty is returned when a preset name is not in the table.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns the selectable difficulties in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a user-supplied name to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDifficulty, name)
}

// Difficulty is an immutable per-session physics and spawning profile.
type Difficulty struct {
	Gravity              float64 `yaml:"gravity"`                // Downward acceleration per frame
	Lift                 float64 `yaml:"lift"`                   // Velocity set on lift (negative = up)
	ObstacleGap          float64 `yaml:"obstacle_gap"`           // Total vertical gap of an obstacle
	ObstacleSpeed        float64 `yaml:"obstacle_speed"`         // Scroll speed in units per frame
	ObstacleInterval     int     `yaml:"obstacle_interval"`      // Frames between obstacle spawns
	MovingObstacleChance float64 `yaml:"moving_obstacle_chance"` // Probability in [0, 1]
}

// Difficulties is the fixed table of named difficulty profiles.
type Difficulties struct {
	Easy   Difficulty `yaml:"easy"`
	Normal Difficulty `yaml:"normal"`
	Hard   Difficulty `yaml:"hard"`
}

// Tuning holds the constants shared by every difficulty.
type Tuning struct {
	Drone      DroneTuning      `yaml:"drone"`
	Obstacles  ObstacleTuning   `yaml:"obstacles"`
	Pickups    PickupTuning     `yaml:"pickups"`
	Background BackgroundTuning `yaml:"background"`
	Particles  ParticleTuning   `yaml:"particles"`

	// DefaultSpeed is the scroll speed used before any difficulty is chosen.
	DefaultSpeed float64 `yaml:"default_speed"`
	// GameOverDelay is how long the game-over screen holds before the menu.
	GameOverDelay time.Duration `yaml:"game_over_delay"`
	// CellWidth and CellHeight map one terminal cell to field units.
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DroneTuning defines the drone hitbox.
type DroneTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleTuning defines obstacle geometry.
type ObstacleTuning struct {
	Width float64 `yaml:"width"`
	// TopOffset is the minimum height of an obstacle's top segment at spawn.
	TopOffset float64 `yaml:"top_offset"`
	// OscillationMargin bounds moving gaps to [margin, fieldH/2 - margin].
	OscillationMargin float64 `yaml:"oscillation_margin"`
	// OscillationStep is the vertical distance a moving gap travels per frame.
	OscillationStep float64 `yaml:"oscillation_step"`
}

// PickupTuning defines power-up and data-bit spawning.
type PickupTuning struct {
	PowerUpInterval int     `yaml:"powerup_interval"` // Frames between power-up spawns
	CoinInterval    int     `yaml:"coin_interval"`    // Frames between data-bit spawns
	PowerUpSize     float64 `yaml:"powerup_size"`
	CoinSize        float64 `yaml:"coin_size"`
	Radius          float64 `yaml:"radius"`      // Collection distance between centers
	SafeMargin      float64 `yaml:"safe_margin"` // Pickups spawn in [margin, fieldH - margin]
	SlowMoFrames    int     `yaml:"slowmo_frames"`
}

// BackgroundTuning defines the parallax decor.
type BackgroundTuning struct {
	Stars     int     `yaml:"stars"`
	Buildings int     `yaml:"buildings"`
	SpeedDiv  float64 `yaml:"speed_div"` // Decor moves at decor.speed * gameSpeed / SpeedDiv
}

// ParticleTuning defines the exhaust trail.
type ParticleTuning struct {
	Life   int     `yaml:"life"`   // Frames a particle lives
	Chance float64 `yaml:"chance"` // Per-frame spawn probability
	Speed  float64 `yaml:"speed"`  // Base leftward drift
}

// Config is the complete game configuration.
type Config struct {
	Difficulties Difficulties `yaml:"difficulties"`
	Tuning       Tuning       `yaml:"tuning"`
}

// Difficulty returns the profile for a preset.
func (c Config) Difficulty(preset DifficultyPreset) (Difficulty, error) {
	switch preset {
	case DifficultyEasy:
		return c.Difficulties.Easy, nil
	case DifficultyNormal:
		return c.Difficulties.Normal, nil
	case DifficultyHard:
		return c.Difficulties.Hard, nil
	default:
		return Difficulty{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, preset)
	}
}

// Validate checks that every value is usable by the simulation.
func (c Config) Validate() error {
	for _, p := range Presets() {
		d, _ := c.Difficulty(p)
		if err := d.validate(); err != nil {
			return fmt.Errorf("config: difficulty %s: %w", p, err)
		}
	}
	if err := c.Tuning.validate(); err != nil {
		return fmt.Errorf("config: tuning: %w", err)
	}
	return nil
}

func (d Difficulty) validate() error {
	switch {
	case d.Gravity <= 0:
		return errors.New("gravity must be positive")
	case d.Lift >= 0:
		return errors.New("lift must be negative")
	case d.ObstacleGap <= 0:
		return errors.New("obstacle_gap must be positive")
	case d.ObstacleSpeed <= 0:
		return errors.New("obstacle_speed must be positive")
	case d.ObstacleInterval <= 0:
		return errors.New("obstacle_interval must be positive")
	case d.MovingObstacleChance < 0 || d.MovingObstacleChance > 1:
		return errors.New("moving_obstacle_chance must be within [0, 1]")
	}
	return nil
}

func (t Tuning) validate() error {
	switch {
	case t.Drone.Width <= 0 || t.Drone.Height <= 0:
		return errors.New("drone size must be positive")
	case t.Obstacles.Width <= 0:
		return errors.New("obstacle width must be positive")
	case t.Pickups.PowerUpInterval <= 0 || t.Pickups.CoinInterval <= 0:
		return errors.New("pickup intervals must be positive")
	case t.Pickups.Radius <= 0:
		return errors.New("pickup radius must be positive")
	case t.Pickups.SlowMoFrames < 0:
		return errors.New("slowmo_frames must not be negative")
	case t.Background.SpeedDiv <= 0:
		return errors.New("background speed_div must be positive")
	case t.Particles.Life <= 0:
		return errors.New("particle life must be positive")
	case t.CellWidth <= 0 || t.CellHeight <= 0:
		return errors.New("cell size must be positive")
	case t.GameOverDelay < 0:
		return errors.New("game_over_delay must not be negative")
	}
	return nil
}
