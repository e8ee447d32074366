package drone

import (
	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/registry"
)

// Visual characters for rendering
const (
	BuildingChar = '▒'
	WindowChar   = '▪'
	ObstacleChar = '█'
	PowerUpChar  = '●'
	CoinChar     = '◆'
)

// Render draws the current state onto dst, scaling the field to the screen.
// It reads the simulation but never changes it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	scale := core.NewScale(dst.Width(), dst.Height(), g.fieldW, g.fieldH)

	g.drawBackground(dst, scale)

	if g.phase == PhaseMenu {
		return
	}

	v := registry.Resolve(g.profile.EquippedVariant, profile.DefaultVariant)
	v.Draw(dst, scale.Rect(g.drone.Box()), g.drone.Shield)

	for _, o := range g.obstacles {
		if top := o.TopBox(); !top.Empty() {
			dst.DrawRect(scale.Rect(top), ObstacleChar, core.ColorMagenta)
		}
		if bottom := o.BottomBox(g.fieldH); !bottom.Empty() {
			dst.DrawRect(scale.Rect(bottom), ObstacleChar, core.ColorMagenta)
		}
	}

	for _, p := range g.powerUps {
		c := core.ColorCyan
		if p.Kind == PowerUpSlowMo {
			c = core.ColorPink
		}
		dst.DrawRect(scale.Rect(p.Box()), PowerUpChar, c)
	}

	for _, c := range g.coins {
		dst.DrawRect(scale.Rect(c.Box()), CoinChar, core.ColorGold)
	}

	life := float64(g.tuning.Particles.Life)
	for _, p := range g.particles {
		x, y := scale.Point(p.X, p.Y)
		dst.SetColored(x, y, core.Shade(float64(p.Life)/life), p.Color)
	}
}

// drawBackground draws the skyline, then the stars over it.
func (g *Game) drawBackground(dst *core.Screen, scale core.Scale) {
	for _, b := range g.buildings {
		color := core.ColorIndigo
		if b.Far {
			color = core.ColorNavy
		}
		r := scale.Rect(core.NewBox(b.X, b.Y, b.W, b.H))
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				col, row := x-r.X, y-r.Y
				if col%2 == 1 && windowLit(b.Seed, col, row) {
					dst.SetColored(x, y, WindowChar, core.ColorWindow)
				} else {
					dst.SetColored(x, y, BuildingChar, color)
				}
			}
		}
	}

	for _, s := range g.stars {
		alpha := s.Speed * 2
		color := core.ColorDimWhite
		if alpha >= 0.5 {
			color = core.ColorWhite
		}
		x, y := scale.Point(s.X, s.Y)
		dst.SetColored(x, y, core.Shade(alpha), color)
	}
}

// windowLit decides whether a window cell is lit. The texture is a hash of
// the building seed and the cell, so it stays put between frames.
func windowLit(seed uint32, col, row int) bool {
	h := seed ^ uint32(col)*0x9E3779B1 ^ uint32(row)*0x85EBCA77
	h ^= h >> 15
	h *= 0x2C1B3C6D
	h ^= h >> 12
	return h%10 >= 3
}
