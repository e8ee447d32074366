// Package skins defines the cosmetic drone variants sold in the shop.
// Importing the package registers them.
package skins

import (
	"math"

	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/registry"
)

// Variant ids.
const (
	Default  = profile.DefaultVariant
	Enforcer = "enforcer"
)

func init() {
	registry.Register(registry.Variant{
		ID:    Default,
		Title: "Default",
		Price: 0,
		Draw:  drawDefault,
	})
	registry.Register(registry.Variant{
		ID:    Enforcer,
		Title: "Enforcer",
		Price: 250,
		Draw:  drawEnforcer,
	})
}

// shieldOutline returns the ring one cell outside the body.
func shieldOutline(r core.Rect) core.Rect {
	return core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
}

func drawDefault(dst *core.Screen, r core.Rect, shield bool) {
	dst.DrawRect(r, '█', core.ColorCyan)
	if shield {
		dst.DrawBox(shieldOutline(r), core.ColorCyan)
	}
}

func drawEnforcer(dst *core.Screen, r core.Rect, shield bool) {
	dst.DrawRect(r, '█', core.ColorCharcoal)

	// Visor: middle 60% of the top row
	visorX := r.X + int(math.Round(float64(r.W)*0.2))
	visorW := core.Max(1, int(math.Round(float64(r.W)*0.6)))
	dst.DrawHLine(visorX, r.Y, visorW, '▀', core.ColorBrass)

	// Neon trim at 80% of the height
	trimY := core.Min(r.Y+int(float64(r.H)*0.8), r.Bottom()-1)
	dst.DrawHLine(r.X, trimY, r.W, '▄', core.ColorMagenta)

	if shield {
		dst.DrawBox(shieldOutline(r), core.ColorMagenta)
	}
}
