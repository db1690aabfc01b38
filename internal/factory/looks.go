package factory

import "github.com/gdamore/tcell/v2"

// SnakeLook is one snake colour scheme.
type SnakeLook struct {
	HeadGlyph string
	BodyGlyph string
	HeadColor tcell.Color
	BodyColor tcell.Color
}

// Looks maps palette names to snake colour schemes.
var Looks = map[string]SnakeLook{
	"green":  {HeadGlyph: "🐲", BodyGlyph: "🟩", HeadColor: tcell.ColorGreen, BodyColor: tcell.ColorLightGreen},
	"blue":   {HeadGlyph: "🐳", BodyGlyph: "🟦", HeadColor: tcell.ColorBlue, BodyColor: tcell.ColorLightBlue},
	"purple": {HeadGlyph: "👾", BodyGlyph: "🟪", HeadColor: tcell.ColorPurple, BodyColor: tcell.ColorViolet},
	"gold":   {HeadGlyph: "🦁", BodyGlyph: "🟨", HeadColor: tcell.ColorGold, BodyColor: tcell.ColorYellow},
}
