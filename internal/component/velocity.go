package component

import "naja/internal/ecs"

const CVelocity ecs.ComponentType = 2

// Velocity is a discrete direction with at most one non-zero axis,
// plus a speed in cells per second.
type Velocity struct {
	DX, DY int
	Speed  float64
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

// Still reports whether the velocity has no direction.
func (v Velocity) Still() bool { return v.DX == 0 && v.DY == 0 }

// Valid reports whether each axis is in {-1, 0, 1} and at most one is non-zero.
func (v Velocity) Valid() bool {
	if v.DX < -1 || v.DX > 1 || v.DY < -1 || v.DY > 1 {
		return false
	}
	return v.DX == 0 || v.DY == 0
}
