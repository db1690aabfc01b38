package factory

import (
	"fmt"

	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// Default edible values for a regular apple.
const (
	ApplePoints        = 10
	AppleGrowth        = 1
	AppleSpeedModifier = 1.1
)

// Grapes grow the snake like an apple but slow it down. Oranges are worth
// double and add two segments.
const (
	GrapeSpeedModifier  = 0.8
	OrangeGrowth        = 2
	OrangeSpeedModifier = 1.1
)

// SnakeSpec describes the snake created at round start.
type SnakeSpec struct {
	Head   grid.Cell
	Length int
	DX, DY int
	Speed  float64
	Look   SnakeLook // zero value means the green look
	Hunger int       // ticks until starvation; 0 disables hunger
}

// spawn creates an entity with the given components. The kinds passed by the
// prefabs below are distinct, so Add can only fail on a programming error.
func spawn(w *ecs.World, comps ...ecs.Component) ecs.EntityID {
	id := w.Create()
	if err := w.Add(id, comps...); err != nil {
		panic(fmt.Sprintf("factory: %v", err))
	}
	return id
}

// NewSnake creates the snake entity. The body trails behind the head,
// opposite to the initial direction.
func NewSnake(w *ecs.World, ss SnakeSpec) ecs.EntityID {
	length := max(ss.Length, 1)
	look := ss.Look
	if look.HeadGlyph == "" {
		look = Looks["green"]
	}
	segments := make([]grid.Cell, 0, length)
	for i := range length {
		segments = append(segments, ss.Head.Add(-ss.DX*i, -ss.DY*i))
	}
	comps := []ecs.Component{
		ecs.Tagged{Tag: component.TagSnake},
		component.At(ss.Head),
		component.Velocity{DX: ss.DX, DY: ss.DY, Speed: ss.Speed},
		component.Body{Segments: segments, Alive: true},
		component.Renderable{
			Glyph:       look.HeadGlyph,
			AltGlyph:    look.BodyGlyph,
			FGColor:     look.HeadColor,
			BGColor:     tcell.ColorDefault,
			AltColor:    look.BodyColor,
			RenderOrder: 10,
		},
	}
	if ss.Hunger > 0 {
		comps = append(comps, component.Hunger{Remaining: ss.Hunger, Max: ss.Hunger})
	}
	return spawn(w, comps...)
}

// NewApple creates a regular apple worth points.
func NewApple(w *ecs.World, c grid.Cell, points int) ecs.EntityID {
	return spawn(w,
		ecs.Tagged{Tag: component.TagApple},
		component.At(c),
		component.Edible{Points: points, Growth: AppleGrowth, SpeedModifier: AppleSpeedModifier},
		component.Renderable{
			Glyph:       "🍎",
			FGColor:     tcell.ColorRed,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 5,
		},
	)
}

// NewGrape creates a grape worth points that slows the snake.
func NewGrape(w *ecs.World, c grid.Cell, points int) ecs.EntityID {
	return spawn(w,
		ecs.Tagged{Tag: component.TagApple},
		component.At(c),
		component.Edible{Points: points, Growth: AppleGrowth, SpeedModifier: GrapeSpeedModifier},
		component.Renderable{
			Glyph:       "🍇",
			FGColor:     tcell.ColorPurple,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 5,
		},
	)
}

// NewOrange creates an orange worth twice points.
func NewOrange(w *ecs.World, c grid.Cell, points int) ecs.EntityID {
	return spawn(w,
		ecs.Tagged{Tag: component.TagApple},
		component.At(c),
		component.Edible{Points: 2 * points, Growth: OrangeGrowth, SpeedModifier: OrangeSpeedModifier},
		component.Renderable{
			Glyph:       "🍊",
			FGColor:     tcell.ColorOrange,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 5,
		},
	)
}

// NewPoisonedApple creates an apple that kills the snake when eaten.
func NewPoisonedApple(w *ecs.World, c grid.Cell) ecs.EntityID {
	return spawn(w,
		ecs.Tagged{Tag: component.TagPoison},
		component.At(c),
		component.Edible{SpeedModifier: 1, Poisoned: true},
		component.Renderable{
			Glyph:       "🍄",
			FGColor:     tcell.NewRGBColor(75, 0, 130),
			BGColor:     tcell.ColorDefault,
			RenderOrder: 5,
		},
	)
}

// NewObstacle creates a static blocking cell.
func NewObstacle(w *ecs.World, c grid.Cell) ecs.EntityID {
	return spawn(w,
		ecs.Tagged{Tag: component.TagObstacle},
		component.At(c),
		component.Renderable{
			Glyph:       "🧱",
			FGColor:     tcell.ColorGray,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 1,
		},
	)
}
