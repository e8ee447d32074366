package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-drone/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")),
	core.ColorMagenta:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")),
	core.ColorGold:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd700")),
	core.ColorBrass:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d4af37")),
	core.ColorCharcoal: lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	core.ColorDimWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a9a")),
	core.ColorNavy:     lipgloss.NewStyle().Foreground(lipgloss.Color("#0a0a32")),
	core.ColorIndigo:   lipgloss.NewStyle().Foreground(lipgloss.Color("#141450")),
	core.ColorWindow:   lipgloss.NewStyle().Foreground(lipgloss.Color("#b4b4ff")),
	core.ColorPink:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4dff")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3355")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
