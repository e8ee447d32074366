// Package profile holds the persistent player profile: currency, high score,
// cosmetic unlocks, and mission completion. The simulation mutates a profile
// during play; storage owns reading and writing it.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// DefaultVariant is the cosmetic every profile owns.
const DefaultVariant = "default"

// Shop errors.
var (
	ErrUnknownVariant    = errors.New("profile: unknown variant")
	ErrAlreadyUnlocked   = errors.New("profile: variant already unlocked")
	ErrInsufficientFunds = errors.New("profile: not enough data-bits")
	ErrLocked            = errors.New("profile: variant is locked")
)

// Profile is the player's persistent meta-progression.
type Profile struct {
	DataBits         int             // Currency balance, never negative
	HighScore        int             // Best session score, never negative
	UnlockedVariants []string        // Owned cosmetic ids in unlock order; always contains DefaultVariant
	EquippedVariant  string          // Currently equipped cosmetic id
	Missions         map[string]bool // Mission id -> completed
}

// Default returns a fresh profile.
func Default() Profile {
	return Profile{
		UnlockedVariants: []string{DefaultVariant},
		EquippedVariant:  DefaultVariant,
		Missions:         make(map[string]bool),
	}
}

// Normalize repairs a profile so that every invariant holds: non-negative
// counters, DefaultVariant unlocked, no duplicate unlocks, an equipped variant
// that is unlocked, and a non-nil mission map.
func (p Profile) Normalize() Profile {
	if p.DataBits < 0 {
		p.DataBits = 0
	}
	if p.HighScore < 0 {
		p.HighScore = 0
	}

	unlocked := make([]string, 0, len(p.UnlockedVariants)+1)
	seen := make(map[string]bool, len(p.UnlockedVariants)+1)
	if !slices.Contains(p.UnlockedVariants, DefaultVariant) {
		unlocked = append(unlocked, DefaultVariant)
		seen[DefaultVariant] = true
	}
	for _, id := range p.UnlockedVariants {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unlocked = append(unlocked, id)
	}
	p.UnlockedVariants = unlocked

	if !seen[p.EquippedVariant] {
		p.EquippedVariant = DefaultVariant
	}

	missions := make(map[string]bool, len(p.Missions))
	for id, done := range p.Missions {
		missions[id] = done
	}
	p.Missions = missions

	return p
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	c := p
	c.UnlockedVariants = slices.Clone(p.UnlockedVariants)
	c.Missions = make(map[string]bool, len(p.Missions))
	for id, done := range p.Missions {
		c.Missions[id] = done
	}
	return c
}

// Equal reports whether two profiles hold the same data.
// A missing mission entry and a false one are the same.
func (p Profile) Equal(o Profile) bool {
	if p.DataBits != o.DataBits || p.HighScore != o.HighScore || p.EquippedVariant != o.EquippedVariant {
		return false
	}
	if !slices.Equal(p.UnlockedVariants, o.UnlockedVariants) {
		return false
	}
	return slices.Equal(p.CompletedMissions(), o.CompletedMissions())
}

// Unlocked reports whether the variant is owned.
func (p Profile) Unlocked(id string) bool {
	return slices.Contains(p.UnlockedVariants, id)
}

// MissionDone reports whether a mission has been completed.
func (p Profile) MissionDone(id string) bool {
	return p.Missions[id]
}

// CompletedMissions returns the ids of completed missions, sorted.
func (p Profile) CompletedMissions() []string {
	ids := make([]string, 0, len(p.Missions))
	for id, done := range p.Missions {
		if done {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// RecordScore raises the high score if score beats it.
// Returns true when the high score changed.
func (p *Profile) RecordScore(score int) bool {
	if score > p.HighScore {
		p.HighScore = score
		return true
	}
	return false
}

// Buy unlocks a variant for price data-bits.
func (p *Profile) Buy(id string, price int) error {
	if p.Unlocked(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyUnlocked, id)
	}
	if p.DataBits < price {
		return fmt.Errorf("%w: %s costs %d, balance %d", ErrInsufficientFunds, id, price, p.DataBits)
	}
	p.DataBits -= price
	p.UnlockedVariants = append(p.UnlockedVariants, id)
	return nil
}

// Equip selects an unlocked variant.
func (p *Profile) Equip(id string) error {
	if !p.Unlocked(id) {
		return fmt.Errorf("%w: %s", ErrLocked, id)
	}
	p.EquippedVariant = id
	return nil
}
