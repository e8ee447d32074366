package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Neon palette used by the drone game.
const (
	ColorDefault  Color = iota
	ColorCyan           // #0ff: default drone, shield power-up, shield outline
	ColorMagenta        // #f0f: obstacles, exhaust particles, enforcer trim
	ColorGold           // #ffd700: data-bits
	ColorBrass          // #D4AF37: enforcer visor
	ColorCharcoal       // #333: enforcer body
	ColorWhite          // stars
	ColorDimWhite       // faint stars
	ColorNavy           // far buildings rgba(10,10,50)
	ColorIndigo         // near buildings rgba(20,20,80)
	ColorWindow         // lit windows rgba(180,180,255)
	ColorPink           // slow-mo power-up #ff00ff
	ColorGray           // HUD secondary text
	ColorRed            // game over banner
)
