package tui

import (
	"fmt"

	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/drone"
)

// drawHUD writes the score line on the top row.
func drawHUD(dst *core.Screen, g *drone.Game, tickRate int) {
	p := g.Profile()

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE: %d", g.Score()), core.ColorCyan)
	dst.DrawTextColored(14, 0, fmt.Sprintf("DATA-BITS: %d", p.DataBits), core.ColorGold)

	if status := powerUpStatus(g.Drone(), tickRate); status != "" {
		dst.DrawTextCentered(0, status, core.ColorPink)
	}

	high := fmt.Sprintf("HIGHSCORE: %d", p.HighScore)
	dst.DrawTextColored(dst.Width()-len(high)-1, 0, high, core.ColorGray)
}

// powerUpStatus describes the active power-up. Slow-mo wins over shield
// and shows whole seconds left, rounded up.
func powerUpStatus(d drone.Drone, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	switch {
	case d.SlowMo > 0:
		return fmt.Sprintf("SLOW-MO: %d", (d.SlowMo+tickRate-1)/tickRate)
	case d.Shield:
		return "SHIELD ACTIVE"
	}
	return ""
}

// drawGameOver draws the end-of-session panel.
func drawGameOver(dst *core.Screen, g *drone.Game, completed []string) {
	p := g.Profile()
	r := panelRect(dst, 44, len(completed)+8)
	clearPanel(dst, r, core.ColorRed)

	y := r.Y + 1
	dst.DrawTextCentered(y, "GAME OVER", core.ColorRed)
	y += 2
	dst.DrawTextCentered(y, fmt.Sprintf("SCORE: %d", g.Score()), core.ColorCyan)
	y++
	dst.DrawTextCentered(y, fmt.Sprintf("HIGHSCORE: %d", p.HighScore), core.ColorGold)
	y += 2

	for i, desc := range completed {
		dst.DrawTextCentered(y+i, "MISSION COMPLETE: "+desc, core.ColorMagenta)
	}
}
