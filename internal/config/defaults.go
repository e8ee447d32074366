package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/drone.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/drone.yaml and is the fallback when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Difficulties: Difficulties{
			Easy: Difficulty{
				Gravity:              0.4,
				Lift:                 -8,
				ObstacleGap:          250,
				ObstacleSpeed:        3,
				ObstacleInterval:     130,
				MovingObstacleChance: 0.1,
			},
			Normal: Difficulty{
				Gravity:              0.5,
				Lift:                 -9,
				ObstacleGap:          220,
				ObstacleSpeed:        4,
				ObstacleInterval:     110,
				MovingObstacleChance: 0.3,
			},
			Hard: Difficulty{
				Gravity:              0.6,
				Lift:                 -10,
				ObstacleGap:          200,
				ObstacleSpeed:        5,
				ObstacleInterval:     90,
				MovingObstacleChance: 0.5,
			},
		},
		Tuning: Tuning{
			Drone: DroneTuning{
				Width:  40,
				Height: 30,
			},
			Obstacles: ObstacleTuning{
				Width:             60,
				TopOffset:         80,
				OscillationMargin: 50,
				OscillationStep:   1,
			},
			Pickups: PickupTuning{
				PowerUpInterval: 500,
				CoinInterval:    150,
				PowerUpSize:     25,
				CoinSize:        15,
				Radius:          50,
				SafeMargin:      100,
				SlowMoFrames:    300, // 5 seconds at 60fps
			},
			Background: BackgroundTuning{
				Stars:     100,
				Buildings: 30,
				SpeedDiv:  5,
			},
			Particles: ParticleTuning{
				Life:   50,
				Chance: 0.5,
				Speed:  2,
			},
			DefaultSpeed:  4,
			GameOverDelay: 1500 * time.Millisecond,
			CellWidth:     10,
			CellHeight:    20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
