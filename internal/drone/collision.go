package drone

import "github.com/vovakirdan/neon-drone/internal/core"

// resolveCollisions runs the per-frame checks in order: field bounds,
// obstacles (impact before scoring), power-ups, then data-bits.
// Every store is walked in insertion order.
func (g *Game) resolveCollisions() {
	d := g.drone
	if d.Y < 0 || d.Y+d.H > g.fieldH {
		g.gameOver()
		return
	}

	box := d.Box()
	consumed := false
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if box.Overlaps(o.TopBox()) || box.Overlaps(o.BottomBox(g.fieldH)) {
			if !g.drone.Shield {
				g.gameOver()
				return
			}
			g.drone.Shield = false
			o.removed = true
			consumed = true
			g.emit(Event{Kind: EventImpact})
			continue
		}
		if !o.Passed && d.X > o.Right() {
			o.Passed = true
			g.score++
			g.emit(Event{Kind: EventScore, Score: g.score})
		}
	}
	if consumed {
		kept := g.obstacles[:0]
		for _, o := range g.obstacles {
			if !o.removed {
				kept = append(kept, o)
			}
		}
		g.obstacles = kept
	}

	radius := g.tuning.Pickups.Radius
	cx, cy := box.Center()

	keptP := g.powerUps[:0]
	for _, p := range g.powerUps {
		px, py := p.Center()
		if core.Dist(cx, cy, px, py) >= radius {
			keptP = append(keptP, p)
			continue
		}
		switch p.Kind {
		case PowerUpShield:
			g.drone.Shield = true
			g.stats.ShieldsUsed++
		case PowerUpSlowMo:
			g.drone.SlowMo = g.tuning.Pickups.SlowMoFrames
		}
		g.stats.PowerUpsUsed++
		g.emit(Event{Kind: EventPowerUp, PowerUp: p.Kind})
	}
	g.powerUps = keptP

	keptC := g.coins[:0]
	for _, c := range g.coins {
		px, py := c.Center()
		if core.Dist(cx, cy, px, py) >= radius {
			keptC = append(keptC, c)
			continue
		}
		g.profile.DataBits++
		g.stats.BitsCollected++
		g.emit(Event{Kind: EventCoin})
	}
	g.coins = keptC
}
