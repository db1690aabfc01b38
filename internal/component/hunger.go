package component

import "naja/internal/ecs"

const CHunger ecs.ComponentType = 6

// Hunger counts down logic ticks until the snake starves.
type Hunger struct {
	Remaining, Max int
}

func (Hunger) Type() ecs.ComponentType { return CHunger }
