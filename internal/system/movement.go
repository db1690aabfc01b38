package system

import (
	"naja/internal/component"
	"naja/internal/grid"
)

// Advance moves body one cell along vel and returns the new head position and
// body. Off-grid heads wrap unless electric walls are on, in which case the
// head is left outside the grid for collision to judge. A pending growth
// keeps the tail in place; otherwise the tail cell is dropped and recorded
// in Vacated.
func Advance(pos component.Position, vel component.Velocity, body component.Body, g grid.Grid, electric bool) (component.Position, component.Body) {
	if vel.Still() || len(body.Segments) == 0 {
		return pos, body
	}
	head := body.Head().Add(vel.DX, vel.DY)
	if !electric {
		head = g.Wrap(head)
	}

	next := body.Clone()
	next.Segments = append([]grid.Cell{head}, next.Segments...)
	if next.Growth > 0 {
		next.Growth--
		next.Shed = false
	} else {
		last := len(next.Segments) - 1
		next.Vacated = next.Segments[last]
		next.Segments = next.Segments[:last]
		next.Shed = true
	}

	return component.Position{X: head.X, Y: head.Y, PrevX: pos.X, PrevY: pos.Y}, next
}

// MovementSystem advances the snake by one cell per tick.
type MovementSystem struct{}

func (MovementSystem) Name() string { return "movement" }
func (MovementSystem) Phase() Phase { return PhaseLogic }

func (MovementSystem) Update(f *Frame) {
	s, ok := SnakeOf(f.World)
	if !ok || !s.Body.Alive || s.Vel.Still() {
		return
	}
	pos, body := Advance(s.Pos, s.Vel, s.Body, f.Grid, f.Rules.ElectricWalls)
	_ = f.World.Set(s.ID, pos)
	_ = f.World.Set(s.ID, body)
}
