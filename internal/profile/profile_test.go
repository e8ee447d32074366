package profile

import (
	"errors"
	"slices"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.DataBits != 0 || p.HighScore != 0 {
		t.Errorf("Default() counters = %d/%d, expected 0/0", p.DataBits, p.HighScore)
	}
	if !slices.Equal(p.UnlockedVariants, []string{DefaultVariant}) {
		t.Errorf("Default() unlocked = %v", p.UnlockedVariants)
	}
	if p.EquippedVariant != DefaultVariant {
		t.Errorf("Default() equipped = %q", p.EquippedVariant)
	}
	if p.Missions == nil || len(p.Missions) != 0 {
		t.Errorf("Default() missions = %v, expected empty map", p.Missions)
	}
}

func TestNormalize(t *testing.T) {
	p := Profile{
		DataBits:         -5,
		HighScore:        -1,
		UnlockedVariants: []string{"enforcer", "enforcer", ""},
		EquippedVariant:  "ghost",
	}.Normalize()

	if p.DataBits != 0 || p.HighScore != 0 {
		t.Errorf("negative counters should clamp to 0, got %d/%d", p.DataBits, p.HighScore)
	}
	if !slices.Equal(p.UnlockedVariants, []string{DefaultVariant, "enforcer"}) {
		t.Errorf("unlocked = %v, expected [default enforcer]", p.UnlockedVariants)
	}
	if p.EquippedVariant != DefaultVariant {
		t.Errorf("equipping a locked variant should fall back to default, got %q", p.EquippedVariant)
	}
	if p.Missions == nil {
		t.Error("Normalize should allocate the mission map")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	p.Missions["score10"] = true

	c := p.Clone()
	c.UnlockedVariants[0] = "changed"
	c.Missions["score50"] = true

	if p.UnlockedVariants[0] != DefaultVariant {
		t.Error("Clone should copy unlocked variants")
	}
	if p.Missions["score50"] {
		t.Error("Clone should copy missions")
	}
	if !p.Equal(p.Clone()) {
		t.Error("a profile should equal its clone")
	}
}

func TestEqualIgnoresFalseMissions(t *testing.T) {
	a := Default()
	b := Default()
	b.Missions["collect5"] = false

	if !a.Equal(b) {
		t.Error("false mission entries should not affect equality")
	}

	b.Missions["collect5"] = true
	if a.Equal(b) {
		t.Error("completed mission should affect equality")
	}
}

func TestRecordScore(t *testing.T) {
	p := Default()
	p.HighScore = 10

	if p.RecordScore(10) {
		t.Error("equal score should not replace the high score")
	}
	if !p.RecordScore(11) || p.HighScore != 11 {
		t.Errorf("higher score should replace the high score, got %d", p.HighScore)
	}
}

func TestBuyAndEquip(t *testing.T) {
	p := Default()
	p.DataBits = 300

	if err := p.Equip("enforcer"); !errors.Is(err, ErrLocked) {
		t.Errorf("Equip(locked) error = %v, expected ErrLocked", err)
	}

	if err := p.Buy("enforcer", 250); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if p.DataBits != 50 {
		t.Errorf("balance after purchase = %d, expected 50", p.DataBits)
	}
	if !p.Unlocked("enforcer") {
		t.Error("purchased variant should be unlocked")
	}

	if err := p.Buy("enforcer", 250); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Errorf("second Buy() error = %v, expected ErrAlreadyUnlocked", err)
	}

	if err := p.Equip("enforcer"); err != nil {
		t.Fatalf("Equip() failed: %v", err)
	}
	if p.EquippedVariant != "enforcer" {
		t.Errorf("equipped = %q, expected enforcer", p.EquippedVariant)
	}
}

func TestBuyInsufficientFunds(t *testing.T) {
	p := Default()
	p.DataBits = 249

	err := p.Buy("enforcer", 250)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Buy() error = %v, expected ErrInsufficientFunds", err)
	}
	if p.DataBits != 249 || p.Unlocked("enforcer") {
		t.Error("failed purchase must not change the profile")
	}
}
