package drone

import (
	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/progress"
)

// EventKind identifies something that happened during a Step.
type EventKind int

const (
	EventLift      EventKind = iota // Lift impulse applied
	EventScore                      // Obstacle passed
	EventImpact                     // Shield absorbed an obstacle
	EventPowerUp                    // Power-up collected
	EventCoin                       // Data-bit collected
	EventCrash                      // Fatal collision
	EventMission                    // Mission completed at game over
	EventHighScore                  // High score beaten at game over
	EventGameOver                   // Session finished; carries the result
	EventMenu                       // Game-over delay elapsed
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLift:
		return "lift"
	case EventScore:
		return "score"
	case EventImpact:
		return "impact"
	case EventPowerUp:
		return "powerup"
	case EventCoin:
		return "coin"
	case EventCrash:
		return "crash"
	case EventMission:
		return "mission"
	case EventHighScore:
		return "highscore"
	case EventGameOver:
		return "gameover"
	case EventMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Sound is an abstract audio cue for the host's synthesizer.
type Sound string

const (
	SoundNone    Sound = ""
	SoundLift    Sound = "lift"
	SoundScore   Sound = "score"
	SoundCrash   Sound = "crash"
	SoundPowerUp Sound = "powerup"
	SoundCoin    Sound = "coin"
)

// Sounds lists every cue the simulation can emit.
func Sounds() []Sound {
	return []Sound{SoundLift, SoundScore, SoundCrash, SoundPowerUp, SoundCoin}
}

// SessionResult summarizes a finished session.
type SessionResult struct {
	Difficulty config.DifficultyPreset
	Stats      progress.SessionStats
	Frames     int
}

// Event is emitted by Step.
type Event struct {
	Kind    EventKind
	PowerUp PowerUpKind       // EventPowerUp
	Mission *progress.Mission // EventMission
	Score   int               // EventScore, EventHighScore, EventGameOver

	// Set on EventGameOver for the host to persist.
	Profile *profile.Profile
	Result  *SessionResult
}

// Sound returns the audio cue for the event, or SoundNone.
func (e Event) Sound() Sound {
	switch e.Kind {
	case EventLift:
		return SoundLift
	case EventScore:
		return SoundScore
	case EventImpact, EventCrash:
		return SoundCrash
	case EventPowerUp:
		return SoundPowerUp
	case EventCoin:
		return SoundCoin
	default:
		return SoundNone
	}
}
