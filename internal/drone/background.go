package drone

import (
	"math/rand"

	"github.com/vovakirdan/neon-drone/internal/config"
)

// newBackground lays out the star field and the skyline across the field.
func newBackground(rng *rand.Rand, bt config.BackgroundTuning, w, h float64) ([]Star, []Building) {
	stars := make([]Star, bt.Stars)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Size:  rng.Float64()*2 + 1,
			Speed: rng.Float64()*0.2 + 0.1,
		}
	}

	buildings := make([]Building, bt.Buildings)
	for i := range buildings {
		far := rng.Float64() > 0.5
		speed := 0.4
		if far {
			speed = 0.2
		}
		var spacing float64
		if bt.Buildings > 0 {
			spacing = w / float64(bt.Buildings)
		}
		buildings[i] = Building{
			X:     spacing*float64(i)*2 + rng.Float64()*100,
			Y:     h - (rng.Float64()*h*0.6 + h*0.1),
			W:     rng.Float64()*50 + 30,
			H:     h,
			Speed: speed,
			Far:   far,
			Seed:  rng.Uint32(),
		}
	}

	return stars, buildings
}

// updateBackground scrolls the decor at a fraction of the game speed and
// wraps anything that leaves on the left back to the right edge.
func (g *Game) updateBackground(speed float64) {
	rate := speed / g.tuning.Background.SpeedDiv

	for i := range g.stars {
		s := &g.stars[i]
		s.X -= s.Speed * rate
		if s.X < 0 {
			s.X = g.fieldW
		}
	}
	for i := range g.buildings {
		b := &g.buildings[i]
		b.X -= b.Speed * rate
		if b.X+b.W < 0 {
			b.X = g.fieldW
		}
	}
}
