package component

import (
	"naja/internal/ecs"
	"naja/internal/grid"
)

const CPosition ecs.ComponentType = 1

// Position is the head cell. PrevX/PrevY hold the cell of the previous tick
// and are only read by presentation.
type Position struct {
	X, Y         int
	PrevX, PrevY int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Cell returns the current cell.
func (p Position) Cell() grid.Cell { return grid.Cell{X: p.X, Y: p.Y} }

// At returns a Position resting on c with no movement history.
func At(c grid.Cell) Position {
	return Position{X: c.X, Y: c.Y, PrevX: c.X, PrevY: c.Y}
}
