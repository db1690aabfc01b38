package component

import "naja/internal/ecs"

const CEdible ecs.ComponentType = 5

// Edible describes what eating an entity does to the snake.
type Edible struct {
	Points        int
	Growth        int
	SpeedModifier float64 // multiplies Velocity.Speed; 1 leaves it unchanged
	Poisoned      bool    // eating it is fatal
}

func (Edible) Type() ecs.ComponentType { return CEdible }
