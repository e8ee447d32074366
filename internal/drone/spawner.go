package drone

// spawnObstacle creates an obstacle at the right edge. The upper segment is
// at least TopOffset tall and the gap always equals the difficulty's gap.
func (g *Game) spawnObstacle() Obstacle {
	ot := g.tuning.Obstacles
	gap := g.diff.ObstacleGap

	top := g.rng.Float64()*(g.fieldH/2-gap/2) + ot.TopOffset
	moving := g.rng.Float64() < g.diff.MovingObstacleChance

	return Obstacle{
		X:      g.fieldW,
		Width:  ot.Width,
		Top:    top,
		Bottom: g.fieldH - top - gap,
		Moving: moving,
		Dir:    1,
		MinTop: ot.OscillationMargin,
		MaxTop: g.fieldH/2 - ot.OscillationMargin,
	}
}

// spawnPowerUp creates a shield or slow-mo power-up, chosen uniformly.
func (g *Game) spawnPowerUp() PowerUp {
	kind := PowerUpSlowMo
	if g.rng.Float64() > 0.5 {
		kind = PowerUpShield
	}
	return PowerUp{
		Pickup: g.spawnPickup(g.tuning.Pickups.PowerUpSize),
		Kind:   kind,
	}
}

func (g *Game) spawnCoin() Coin {
	return Coin{Pickup: g.spawnPickup(g.tuning.Pickups.CoinSize)}
}

// spawnPickup places a pickup at the right edge inside the safe band.
func (g *Game) spawnPickup(size float64) Pickup {
	margin := g.tuning.Pickups.SafeMargin
	band := g.fieldH - 2*margin
	if band < 0 {
		band = 0
	}
	return Pickup{
		X:    g.fieldW,
		Y:    g.rng.Float64()*band + margin,
		Size: size,
	}
}
