package component

import (
	"naja/internal/ecs"
	"naja/internal/grid"
)

const CBody ecs.ComponentType = 3

// Body is the ordered list of occupied cells, head first.
type Body struct {
	Segments []grid.Cell
	Growth   int // segments still to be added
	Alive    bool

	// Vacated is the tail cell dropped by the last move; Shed reports
	// whether the last move dropped one at all.
	Vacated grid.Cell
	Shed    bool
}

func (Body) Type() ecs.ComponentType { return CBody }

// Head returns the first segment.
func (b Body) Head() grid.Cell {
	if len(b.Segments) == 0 {
		return grid.Cell{}
	}
	return b.Segments[0]
}

// Len returns the number of segments.
func (b Body) Len() int { return len(b.Segments) }

func (b Body) CloneComponent() ecs.Component { return b.Clone() }

// Clone returns a Body that shares no memory with b.
func (b Body) Clone() Body {
	b.Segments = append([]grid.Cell(nil), b.Segments...)
	return b
}
