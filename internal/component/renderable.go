package component

import (
	"naja/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 4

// Renderable is how an entity looks. For the snake, Glyph and FGColor draw
// the head and AltGlyph and AltColor the rest of the body.
type Renderable struct {
	Glyph       string
	AltGlyph    string
	FGColor     tcell.Color
	BGColor     tcell.Color
	AltColor    tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
