package drone

import (
	"testing"

	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/skins"
)

func hasColor(s *core.Screen, c core.Color) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Color == c {
				return true
			}
		}
	}
	return false
}

func TestRenderMenuDrawsOnlyBackground(t *testing.T) {
	g := newTestGame(t, 2, 0)
	s := core.NewScreen(80, 24)

	g.Render(s)

	if hasColor(s, core.ColorCyan) || hasColor(s, core.ColorMagenta) {
		t.Error("menu render should not draw the drone or obstacles")
	}
	if !hasColor(s, core.ColorNavy) && !hasColor(s, core.ColorIndigo) {
		t.Error("menu render should draw the skyline")
	}
}

func TestRenderDrawsEquippedVariant(t *testing.T) {
	tests := []struct {
		variant string
		want    core.Color
	}{
		{profile.DefaultVariant, core.ColorCyan},
		{skins.Enforcer, core.ColorBrass},
		{"retired-variant", core.ColorCyan},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			g := startTestGame(t, 2, 0)
			p := profile.Default()
			p.UnlockedVariants = append(p.UnlockedVariants, skins.Enforcer, "retired-variant")
			p.EquippedVariant = tc.variant
			g.SetProfile(p)
			g.Step(idle())

			s := core.NewScreen(80, 24)
			g.Render(s)

			// Drone at (200, 240.5) 40×30 covers cells x 20..23, y 12..13
			if got := s.GetCell(22, 12).Color; got != tc.want {
				t.Errorf("drone cell color = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := startTestGame(t, 4, 0)
	for i := 0; i < 30; i++ {
		in := idle()
		if i%10 == 0 {
			in = liftInput()
		}
		g.Step(in)
	}

	drone := g.Drone()
	score, frame := g.Score(), g.Frame()
	particles := len(g.Particles())
	star := g.stars[0]

	s := core.NewScreen(80, 24)
	g.Render(s)
	first := s.String()
	g.Render(s)

	if g.Drone() != drone || g.Score() != score || g.Frame() != frame {
		t.Error("Render changed simulation state")
	}
	if len(g.Particles()) != particles || g.stars[0] != star {
		t.Error("Render changed entity stores")
	}
	if s.String() != first {
		t.Error("rendering the same state twice should give the same frame")
	}
}

func TestRenderObstaclesAndPickups(t *testing.T) {
	g := startTestGame(t, 2, 0)
	g.obstacles = []Obstacle{{X: 600, Width: 60, Top: 100, Bottom: 100}}
	g.coins = []Coin{{Pickup{X: 500, Y: 100, Size: 15}}}
	g.powerUps = []PowerUp{{Pickup: Pickup{X: 400, Y: 300, Size: 25}, Kind: PowerUpSlowMo}}

	s := core.NewScreen(80, 24)
	g.Render(s)

	if c := s.GetCell(61, 0); c.Rune != ObstacleChar || c.Color != core.ColorMagenta {
		t.Errorf("top segment cell = %+v", c)
	}
	if c := s.GetCell(61, 23); c.Rune != ObstacleChar {
		t.Errorf("bottom segment cell = %+v", c)
	}
	if c := s.GetCell(50, 5); c.Rune != CoinChar || c.Color != core.ColorGold {
		t.Errorf("coin cell = %+v", c)
	}
	if c := s.GetCell(40, 15); c.Rune != PowerUpChar || c.Color != core.ColorPink {
		t.Errorf("slow-mo cell = %+v", c)
	}
}

func TestWindowLitIsStable(t *testing.T) {
	lit := 0
	for col := 0; col < 20; col++ {
		for row := 0; row < 20; row++ {
			a := windowLit(42, col, row)
			if a != windowLit(42, col, row) {
				t.Fatal("windowLit should be deterministic")
			}
			if a {
				lit++
			}
		}
	}
	if lit == 0 || lit == 400 {
		t.Errorf("lit windows = %d of 400, expected a mix", lit)
	}
}
