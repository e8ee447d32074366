package skins

import (
	"fmt"

	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/registry"
)

// Buy unlocks a registered variant at its listed price.
func Buy(p *profile.Profile, id string) error {
	v, ok := registry.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", profile.ErrUnknownVariant, id)
	}
	return p.Buy(v.ID, v.Price)
}

// Equip selects a registered, unlocked variant.
func Equip(p *profile.Profile, id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("%w: %s", profile.ErrUnknownVariant, id)
	}
	return p.Equip(id)
}

// Action is what Select did.
type Action int

const (
	ActionNone Action = iota
	ActionBought
	ActionEquipped
)

// Select is the shop button: it buys a locked variant, or equips an owned
// one. Buying does not equip.
func Select(p *profile.Profile, id string) (Action, error) {
	if p.Unlocked(id) {
		if p.EquippedVariant == id {
			return ActionNone, nil
		}
		if err := Equip(p, id); err != nil {
			return ActionNone, err
		}
		return ActionEquipped, nil
	}
	if err := Buy(p, id); err != nil {
		return ActionNone, err
	}
	return ActionBought, nil
}
