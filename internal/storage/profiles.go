package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vovakirdan/neon-drone/internal/profile"
)

// DefaultOwner is the profile owner for local play.
const DefaultOwner = "local"

// Profile record keys.
const (
	keyDataBits  = "playerDataBits"
	keyHighScore = "playerHighscore"
	keyUnlocked  = "unlockedSkins"
	keyEquipped  = "equippedSkin"
	keyMissions  = "missions"
)

// LoadProfile reads the profile for owner.
// Absent or malformed fields fall back to their defaults; only database
// failures are returned as errors.
func (s *Store) LoadProfile(owner string) (profile.Profile, error) {
	rows, err := s.db.Query(`SELECT key, value FROM profile WHERE owner = ?`, owner)
	if err != nil {
		return profile.Default(), fmt.Errorf("storage: cannot query profile: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return profile.Default(), fmt.Errorf("storage: cannot scan profile row: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return profile.Default(), fmt.Errorf("storage: row iteration error: %w", err)
	}

	return decodeProfile(values), nil
}

// decodeProfile builds a profile from raw values, field by field.
func decodeProfile(values map[string]string) profile.Profile {
	p := profile.Default()

	if n, err := strconv.Atoi(values[keyDataBits]); err == nil {
		p.DataBits = n
	}
	if n, err := strconv.Atoi(values[keyHighScore]); err == nil {
		p.HighScore = n
	}

	var unlocked []string
	if err := json.Unmarshal([]byte(values[keyUnlocked]), &unlocked); err == nil && len(unlocked) > 0 {
		p.UnlockedVariants = unlocked
	}

	if v := values[keyEquipped]; v != "" {
		p.EquippedVariant = v
	}

	var missions map[string]bool
	if err := json.Unmarshal([]byte(values[keyMissions]), &missions); err == nil {
		p.Missions = missions
	}

	return p.Normalize()
}

// SaveProfile writes every profile field for owner in one transaction.
func (s *Store) SaveProfile(owner string, p profile.Profile) error {
	p = p.Normalize()

	unlocked, err := json.Marshal(p.UnlockedVariants)
	if err != nil {
		return fmt.Errorf("storage: cannot encode unlocked variants: %w", err)
	}
	missions, err := json.Marshal(p.Missions)
	if err != nil {
		return fmt.Errorf("storage: cannot encode missions: %w", err)
	}

	values := []struct {
		key, value string
	}{
		{keyDataBits, strconv.Itoa(p.DataBits)},
		{keyHighScore, strconv.Itoa(p.HighScore)},
		{keyUnlocked, string(unlocked)},
		{keyEquipped, p.EquippedVariant},
		{keyMissions, string(missions)},
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, kv := range values {
		_, err := tx.Exec(
			`INSERT INTO profile (owner, key, value, updated_at)
			 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(owner, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			owner, kv.key, kv.value,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save profile field %s: %w", kv.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit profile: %w", err)
	}
	return nil
}

// ResetProfile deletes every stored field for owner.
func (s *Store) ResetProfile(owner string) error {
	if _, err := s.db.Exec(`DELETE FROM profile WHERE owner = ?`, owner); err != nil {
		return fmt.Errorf("storage: cannot reset profile: %w", err)
	}
	return nil
}

// Owners lists every owner with a stored profile.
func (s *Store) Owners() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT owner FROM profile ORDER BY owner`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query owners: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, fmt.Errorf("storage: cannot scan owner: %w", err)
		}
		owners = append(owners, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return owners, nil
}
