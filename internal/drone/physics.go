package drone

import "github.com/vovakirdan/neon-drone/internal/core"

// updateDrone applies gravity and emits exhaust.
func (g *Game) updateDrone() {
	g.drone.Velocity += g.diff.Gravity
	g.drone.Y += g.drone.Velocity

	pt := g.tuning.Particles
	if g.rng.Float64() < pt.Chance {
		g.particles = append(g.particles, Particle{
			X:     g.drone.X,
			Y:     g.drone.Y + g.drone.H/2,
			VX:    g.rng.Float64()*2 + pt.Speed,
			VY:    (g.rng.Float64() - 0.5) * 2,
			Size:  g.rng.Float64()*3 + 1,
			Life:  pt.Life,
			Color: core.ColorMagenta,
		})
	}
}

// updateObstacles spawns, scrolls, oscillates, and culls obstacles.
func (g *Game) updateObstacles(speed float64) {
	if g.frame > 0 && g.frame%g.diff.ObstacleInterval == 0 {
		g.obstacles = append(g.obstacles, g.spawnObstacle())
	}

	step := g.tuning.Obstacles.OscillationStep
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= speed
		if o.Moving {
			o.Top += o.Dir * step
			o.Bottom -= o.Dir * step
			// Reverse only when heading away from the band.
			if (o.Top < o.MinTop && o.Dir < 0) || (o.Top > o.MaxTop && o.Dir > 0) {
				o.Dir = -o.Dir
			}
		}
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept
}

// updatePickups spawns, scrolls, and culls power-ups and data-bits.
func (g *Game) updatePickups(speed float64) {
	pt := g.tuning.Pickups

	if g.frame > 0 && g.frame%pt.PowerUpInterval == 0 {
		g.powerUps = append(g.powerUps, g.spawnPowerUp())
	}
	keptP := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.X -= speed
		if p.X+p.Size > 0 {
			keptP = append(keptP, p)
		}
	}
	g.powerUps = keptP

	if g.frame > 0 && g.frame%pt.CoinInterval == 0 {
		g.coins = append(g.coins, g.spawnCoin())
	}
	keptC := g.coins[:0]
	for _, c := range g.coins {
		c.X -= speed
		if c.X+c.Size > 0 {
			keptC = append(keptC, c)
		}
	}
	g.coins = keptC
}

// updateParticles drifts particles and drops expired ones.
func (g *Game) updateParticles() {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.X -= p.VX
		p.Y -= p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}
