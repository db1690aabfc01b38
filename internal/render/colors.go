package render

import "github.com/gdamore/tcell/v2"

// Theme holds the board colours. Emoji carry their own colours, so only
// the background and the edge glyphs are themed.
type Theme struct {
	Floor    tcell.Color // board background
	Wall     string      // edge glyph when walls are electric
	WrapEdge string      // edge glyph when the board wraps around
	Text     tcell.Color
	Accent   tcell.Color
}

// Themes maps display palette names to board themes.
var Themes = map[string]Theme{
	"green": {
		Floor:    tcell.NewRGBColor(16, 32, 16),
		Wall:     "⚡",
		WrapEdge: "🌀",
		Text:     tcell.ColorWhite,
		Accent:   tcell.ColorLightGreen,
	},
	"blue": {
		Floor:    tcell.NewRGBColor(12, 20, 40),
		Wall:     "⚡",
		WrapEdge: "🌊",
		Text:     tcell.ColorWhite,
		Accent:   tcell.ColorLightBlue,
	},
	"purple": {
		Floor:    tcell.NewRGBColor(28, 12, 36),
		Wall:     "⚡",
		WrapEdge: "🔮",
		Text:     tcell.ColorWhite,
		Accent:   tcell.ColorViolet,
	},
	"gold": {
		Floor:    tcell.NewRGBColor(36, 30, 8),
		Wall:     "⚡",
		WrapEdge: "✨",
		Text:     tcell.ColorWhite,
		Accent:   tcell.ColorGold,
	},
}

// ThemeFor returns the named theme, falling back to green.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["green"]
}
