package skins

import (
	"testing"

	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		price int
	}{
		{Default, 0},
		{Enforcer, 250},
	}

	for _, tc := range tests {
		v, err := registry.Get(tc.id)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", tc.id, err)
		}
		if v.Price != tc.price {
			t.Errorf("%s price = %d, expected %d", tc.id, v.Price, tc.price)
		}
	}
}

func TestDrawDefault(t *testing.T) {
	s := core.NewScreen(20, 10)
	body := core.NewRect(5, 4, 4, 2)

	drawDefault(s, body, false)
	if c := s.GetCell(5, 4); c.Rune != '█' || c.Color != core.ColorCyan {
		t.Errorf("body cell = %+v, expected cyan block", c)
	}
	if s.Get(4, 3) != ' ' {
		t.Error("no outline should be drawn without a shield")
	}

	s.Clear()
	drawDefault(s, body, true)
	if s.Get(4, 3) != '┌' || s.Get(9, 6) != '┘' {
		t.Errorf("shield outline missing:\n%s", s.String())
	}
}

func TestDrawEnforcer(t *testing.T) {
	s := core.NewScreen(20, 10)
	body := core.NewRect(5, 4, 5, 2)

	drawEnforcer(s, body, true)

	if c := s.GetCell(6, 4); c.Color != core.ColorBrass {
		t.Errorf("visor cell = %+v, expected brass", c)
	}
	if c := s.GetCell(5, 5); c.Color != core.ColorMagenta || c.Rune != '▄' {
		t.Errorf("trim cell = %+v, expected magenta trim", c)
	}
	if c := s.GetCell(4, 3); c.Rune != '┌' || c.Color != core.ColorMagenta {
		t.Errorf("shield corner = %+v, expected magenta outline", c)
	}
}
