// Package progress tracks per-session statistics and evaluates the static
// mission table against them at the end of a session.
package progress

import "github.com/vovakirdan/neon-drone/internal/profile"

// SessionStats counts what happened during one session.
type SessionStats struct {
	Score         int // Obstacles passed
	BitsCollected int // Data-bits picked up
	ShieldsUsed   int // Shield power-ups picked up
	PowerUpsUsed  int // Power-ups of any kind picked up
}

// Mission is one row of the mission table.
type Mission struct {
	ID          string
	Description string
	Reward      int // Data-bits granted on completion
	Check       func(SessionStats) bool
}

var missions = []Mission{
	{
		ID:          "score10",
		Description: "Reach a score of 10",
		Reward:      20,
		Check:       func(s SessionStats) bool { return s.Score >= 10 },
	},
	{
		ID:          "score50",
		Description: "Reach a score of 50",
		Reward:      100,
		Check:       func(s SessionStats) bool { return s.Score >= 50 },
	},
	{
		ID:          "collect5",
		Description: "Collect 5 Data-Bits in one game",
		Reward:      15,
		Check:       func(s SessionStats) bool { return s.BitsCollected >= 5 },
	},
	{
		ID:          "useShield",
		Description: "Use a Shield power-up",
		Reward:      10,
		Check:       func(s SessionStats) bool { return s.ShieldsUsed > 0 },
	},
}

// Missions returns the mission table in display order.
func Missions() []Mission {
	out := make([]Mission, len(missions))
	copy(out, missions)
	return out
}

// Lookup finds a mission by id.
func Lookup(id string) (Mission, bool) {
	for _, m := range missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// Evaluate checks every mission not yet completed in p against stats.
// Each newly satisfied mission is marked completed and its reward is added to
// the balance. Completed missions are never checked again, so calling
// Evaluate twice with the same stats grants nothing the second time.
// Returns the missions completed by this call, in table order.
func Evaluate(p *profile.Profile, stats SessionStats) []Mission {
	if p.Missions == nil {
		p.Missions = make(map[string]bool)
	}

	var completed []Mission
	for _, m := range missions {
		if p.Missions[m.ID] || !m.Check(stats) {
			continue
		}
		p.Missions[m.ID] = true
		p.DataBits += m.Reward
		completed = append(completed, m)
	}
	return completed
}

// Status pairs a mission with its completion state for listing.
type Status struct {
	Mission
	Completed bool
}

// Statuses returns the mission table annotated with p's completion flags.
func Statuses(p profile.Profile) []Status {
	out := make([]Status, 0, len(missions))
	for _, m := range missions {
		out = append(out, Status{Mission: m, Completed: p.MissionDone(m.ID)})
	}
	return out
}
