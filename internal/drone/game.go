// Package drone implements the neon drone simulation: a side-scrolling field
// where the player lifts a drone through obstacle gaps while collecting
// power-ups and data-bits.
//
// The simulation is a context object advanced one frame at a time by Step.
// It never touches a terminal, a clock, audio, or storage; everything the host
// needs to react to is reported as events.
package drone

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/progress"
)

// Phase is the state machine position.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step.
type StepResult struct {
	Phase  Phase
	Score  int
	Events []Event
}

// Game is the simulation context: drone, entity stores, session statistics,
// the player profile, and the current difficulty.
type Game struct {
	cfg    config.Config
	tuning config.Tuning
	rt     core.RuntimeConfig
	rng    *rand.Rand

	fieldW, fieldH float64

	phase    Phase
	preset   config.DifficultyPreset
	diff     config.Difficulty
	selected bool // A difficulty has been chosen at least once

	drone     Drone
	obstacles []Obstacle
	powerUps  []PowerUp
	coins     []Coin
	particles []Particle
	stars     []Star
	buildings []Building

	score      int
	frame      int
	stats      progress.SessionStats
	delayLeft  int // Frames until gameover returns to menu
	profile    profile.Profile
	lastResult *SessionResult

	events []Event
}

// New creates a simulation in the menu phase.
// The RNG is seeded from rt.Seed, so equal seeds and inputs replay identically.
func New(cfg config.Config, rt core.RuntimeConfig, p profile.Profile) *Game {
	g := &Game{
		cfg:     cfg,
		tuning:  cfg.Tuning,
		rt:      rt,
		rng:     rand.New(rand.NewSource(rt.Seed)),
		fieldW:  rt.FieldW,
		fieldH:  rt.FieldH,
		phase:   PhaseMenu,
		profile: p.Normalize(),
	}

	g.drone = Drone{
		X: g.fieldW / 4,
		Y: g.fieldH / 2,
		W: g.tuning.Drone.Width,
		H: g.tuning.Drone.Height,
	}
	g.stars, g.buildings = newBackground(g.rng, g.tuning.Background, g.fieldW, g.fieldH)

	return g
}

// Start begins a session with the given difficulty. It resets every entity
// store and the session statistics, and places the drone at mid-field.
// Starting from gameover is allowed and abandons the pending return to menu.
func (g *Game) Start(preset config.DifficultyPreset) error {
	d, err := g.cfg.Difficulty(preset)
	if err != nil {
		return err
	}

	g.preset = preset
	g.diff = d
	g.selected = true
	g.reset()
	g.phase = PhasePlaying
	return nil
}

func (g *Game) reset() {
	g.score = 0
	g.frame = 0
	g.stats = progress.SessionStats{}
	g.delayLeft = 0

	g.drone.X = g.fieldW / 4
	g.drone.Y = g.fieldH / 2
	g.drone.Velocity = 0
	g.drone.Shield = false
	g.drone.SlowMo = 0

	g.obstacles = g.obstacles[:0]
	g.powerUps = g.powerUps[:0]
	g.coins = g.coins[:0]
	g.particles = g.particles[:0]
}

// Step advances the simulation by exactly one frame.
// The background always scrolls; only the playing phase runs physics,
// spawning, and collisions. In gameover it counts down to the menu.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = nil

	speed := g.baseSpeed()
	if g.phase == PhasePlaying && g.drone.SlowMo > 0 {
		speed *= 0.5
		g.drone.SlowMo--
	}

	g.updateBackground(speed)

	switch g.phase {
	case PhasePlaying:
		if in.Has(core.ActionLift) {
			g.drone.Velocity = g.diff.Lift
			g.emit(Event{Kind: EventLift})
		}
		g.updateDrone()
		g.updateObstacles(speed)
		g.updatePickups(speed)
		g.updateParticles()
		g.resolveCollisions()
		g.frame++

	case PhaseGameOver:
		g.delayLeft--
		if g.delayLeft <= 0 {
			g.phase = PhaseMenu
			g.emit(Event{Kind: EventMenu})
		}
	}

	return StepResult{
		Phase:  g.phase,
		Score:  g.score,
		Events: g.events,
	}
}

// baseSpeed is the scroll speed before slow motion. Before the first
// session it falls back to the configured default.
func (g *Game) baseSpeed() float64 {
	if !g.selected {
		return g.tuning.DefaultSpeed
	}
	return g.diff.ObstacleSpeed
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// gameOver ends the session: it freezes the score into the statistics,
// evaluates missions, records the high score, and schedules the menu.
func (g *Game) gameOver() {
	if g.phase != PhasePlaying {
		return
	}
	g.emit(Event{Kind: EventCrash})
	g.phase = PhaseGameOver

	g.stats.Score = g.score
	for _, m := range progress.Evaluate(&g.profile, g.stats) {
		g.emit(Event{Kind: EventMission, Mission: &m})
	}
	if g.profile.RecordScore(g.score) {
		g.emit(Event{Kind: EventHighScore, Score: g.score})
	}

	result := &SessionResult{
		Difficulty: g.preset,
		Stats:      g.stats,
		Frames:     g.frame,
	}
	g.lastResult = result
	snapshot := g.profile.Clone()
	g.emit(Event{
		Kind:    EventGameOver,
		Score:   g.score,
		Profile: &snapshot,
		Result:  result,
	})

	g.delayLeft = delayFrames(g.tuning.GameOverDelay, g.rt.TickRate)
}

// delayFrames converts a wall-clock delay to whole frames, rounding up.
func delayFrames(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	if d <= 0 {
		return 0
	}
	n := int64(d) * int64(tickRate)
	frames := n / int64(time.Second)
	if n%int64(time.Second) != 0 {
		frames++
	}
	return int(frames)
}

// Resize changes the play-field dimensions without resetting the session.
// The drone keeps its height and moves to a quarter of the new width.
func (g *Game) Resize(fieldW, fieldH float64) {
	g.fieldW = fieldW
	g.fieldH = fieldH
	g.drone.X = fieldW / 4
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the session score.
func (g *Game) Score() int {
	return g.score
}

// Frame returns the number of playing frames in the session.
func (g *Game) Frame() int {
	return g.frame
}

// Drone returns a copy of the drone state.
func (g *Game) Drone() Drone {
	return g.drone
}

// Field returns the play-field size in field units.
func (g *Game) Field() (float64, float64) {
	return g.fieldW, g.fieldH
}

// Difficulty returns the selected preset and its profile.
func (g *Game) Difficulty() (config.DifficultyPreset, config.Difficulty) {
	return g.preset, g.diff
}

// Stats returns the running session statistics.
func (g *Game) Stats() progress.SessionStats {
	return g.stats
}

// LastResult returns the result of the most recent finished session, or nil.
func (g *Game) LastResult() *SessionResult {
	return g.lastResult
}

// Obstacles returns a copy of the obstacle store.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}

// PowerUps returns a copy of the power-up store.
func (g *Game) PowerUps() []PowerUp {
	return append([]PowerUp(nil), g.powerUps...)
}

// Coins returns a copy of the data-bit store.
func (g *Game) Coins() []Coin {
	return append([]Coin(nil), g.coins...)
}

// Particles returns a copy of the particle store.
func (g *Game) Particles() []Particle {
	return append([]Particle(nil), g.particles...)
}

// Profile returns a copy of the player profile as mutated by play.
func (g *Game) Profile() profile.Profile {
	return g.profile.Clone()
}

// SetProfile replaces the player profile, for example after a shop purchase.
func (g *Game) SetProfile(p profile.Profile) {
	g.profile = p.Normalize()
}
