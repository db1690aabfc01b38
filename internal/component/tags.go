package component

import "naja/internal/ecs"

const (
	TagSnake    ecs.Tag = "snake"
	TagApple    ecs.Tag = "apple"
	TagPoison   ecs.Tag = "poison"
	TagObstacle ecs.Tag = "obstacle"
)
