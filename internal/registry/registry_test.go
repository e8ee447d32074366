package registry

import (
	"testing"

	"github.com/vovakirdan/neon-drone/internal/core"
)

func noopDraw(*core.Screen, core.Rect, bool) {}

func TestRegisterAndList(t *testing.T) {
	Register(Variant{ID: "zz-test-cheap", Title: "Cheap", Price: 1, Draw: noopDraw})
	Register(Variant{ID: "zz-test-pricey", Title: "Pricey", Price: 1000000, Draw: noopDraw})

	if !Exists("zz-test-cheap") {
		t.Fatal("registered variant should exist")
	}

	list := List()
	cheap, pricey := -1, -1
	for i, v := range list {
		switch v.ID {
		case "zz-test-cheap":
			cheap = i
		case "zz-test-pricey":
			pricey = i
		}
	}
	if cheap < 0 || pricey < 0 || cheap > pricey {
		t.Errorf("List() should order by price, got cheap=%d pricey=%d", cheap, pricey)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Variant{ID: "zz-test-dup", Draw: noopDraw})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Variant{ID: "zz-test-dup", Draw: noopDraw})
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("zz-missing"); err == nil {
		t.Error("Get() of unknown variant should fail")
	}
}

func TestResolveFallback(t *testing.T) {
	Register(Variant{ID: "zz-test-fallback", Title: "Fallback", Draw: noopDraw})

	if v := Resolve("zz-missing", "zz-test-fallback"); v.ID != "zz-test-fallback" {
		t.Errorf("Resolve() = %q, expected fallback", v.ID)
	}

	v := Resolve("zz-missing", "zz-missing-too")
	if v.Draw == nil {
		t.Fatal("Resolve() should always return a draw routine")
	}

	s := core.NewScreen(10, 10)
	v.Draw(s, core.NewRect(3, 3, 2, 2), true)
	if s.Get(3, 3) != '█' {
		t.Errorf("plain draw should fill the body, got %q", s.Get(3, 3))
	}
	if s.Get(2, 2) != '┌' {
		t.Errorf("plain draw should outline the shield, got %q", s.Get(2, 2))
	}
}
