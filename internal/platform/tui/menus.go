package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-drone/internal/config"
	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
)

// menuItem is an entry of the main menu.
type menuItem string

const (
	menuPlay     menuItem = "PLAY"
	menuShop     menuItem = "SHOP"
	menuMissions menuItem = "MISSIONS"
	menuScores   menuItem = "SCORES"
	menuQuit     menuItem = "QUIT"
)

func mainMenuItems() []menuItem {
	return []menuItem{menuPlay, menuShop, menuMissions, menuScores, menuQuit}
}

const gameTitle = "N E O N   D R O N E"

// panelRect returns a box of w×h cells centered on the screen.
func panelRect(dst *core.Screen, w, h int) core.Rect {
	w = core.Min(w, dst.Width())
	h = core.Min(h, dst.Height())
	return core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
}

// clearPanel blanks a box so the background does not bleed through, then
// outlines it.
func clearPanel(dst *core.Screen, r core.Rect, c core.Color) {
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
}

// menuLine formats a selectable row.
func menuLine(label string, selected bool) (string, core.Color) {
	if selected {
		return "> " + label + " <", core.ColorCyan
	}
	return label, core.ColorWhite
}

// drawMainMenu draws the title menu over the background.
func drawMainMenu(dst *core.Screen, p profile.Profile, cursor int) {
	items := mainMenuItems()
	r := panelRect(dst, 36, len(items)+9)
	clearPanel(dst, r, core.ColorMagenta)

	y := r.Y + 1
	dst.DrawTextCentered(y, gameTitle, core.ColorMagenta)
	y += 2
	dst.DrawTextCentered(y, fmt.Sprintf("HIGHSCORE: %d", p.HighScore), core.ColorGold)
	y++
	dst.DrawTextCentered(y, fmt.Sprintf("DATA-BITS: %d", p.DataBits), core.ColorGold)
	y += 2

	for i, item := range items {
		text, c := menuLine(string(item), i == cursor)
		dst.DrawTextCentered(y+i, text, c)
	}

	drawFooter(dst, "↑/↓ select · enter confirm · q quit")
}

// drawDifficultyMenu draws the difficulty picker with the highlighted
// preset's physics.
func drawDifficultyMenu(dst *core.Screen, cfg config.Config, cursor int) {
	presets := config.Presets()
	r := panelRect(dst, 40, len(presets)+9)
	clearPanel(dst, r, core.ColorCyan)

	y := r.Y + 1
	dst.DrawTextCentered(y, "SELECT DIFFICULTY", core.ColorCyan)
	y += 2

	for i, p := range presets {
		text, c := menuLine(strings.ToUpper(string(p)), i == cursor)
		dst.DrawTextCentered(y+i, text, c)
	}
	text, c := menuLine("BACK", cursor == len(presets))
	dst.DrawTextCentered(y+len(presets), text, c)

	if cursor < len(presets) {
		if d, err := cfg.Difficulty(presets[cursor]); err == nil {
			dst.DrawTextCentered(r.Bottom()-3, difficultySummary(d), core.ColorGray)
		}
	}

	drawFooter(dst, "↑/↓ select · enter start · esc back")
}

// difficultySummary describes a difficulty in one line.
func difficultySummary(d config.Difficulty) string {
	return fmt.Sprintf("gap %.0f · speed %.0f · moving %.0f%%",
		d.ObstacleGap, d.ObstacleSpeed, d.MovingObstacleChance*100)
}

// drawFooter writes a hint on the bottom row.
func drawFooter(dst *core.Screen, text string) {
	dst.DrawTextCentered(dst.Height()-1, text, core.ColorGray)
}
