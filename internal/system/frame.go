package system

import (
	"errors"
	"math/rand"

	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/event"
	"naja/internal/grid"

	"go.uber.org/zap"
)

// ErrNotInitialized is returned when the frame's singletons have not been set up yet.
// It marks an expected condition during bootstrap, not a fault.
var ErrNotInitialized = errors.New("system: world singletons not initialized")

// Rules are the per-round gameplay parameters the systems read.
type Rules struct {
	ElectricWalls bool
	Apples        int // desired apple count
	ApplePoints   int
	Fruits        bool // spawn grapes and oranges alongside apples
	MinSpeed      float64
	MaxSpeed      float64
	ObstacleCount int
	PoisonChance  float64 // per-tick chance of a poisoned apple appearing
	HungerTicks   int     // 0 disables starvation
}

// Frame is everything one tick of systems may touch. Singletons are plain
// fields instead of components looked up by convention.
type Frame struct {
	World  *ecs.World
	Grid   grid.Grid
	Rules  Rules
	State  *component.GameState
	Score  *component.Score
	Events *event.Queue
	Rand   *rand.Rand
	Log    *zap.Logger
	Tick   uint64
}

// Singletons returns the game state and score, or ErrNotInitialized.
func (f *Frame) Singletons() (*component.GameState, *component.Score, error) {
	if f.State == nil || f.Score == nil {
		return nil, nil, ErrNotInitialized
	}
	return f.State, f.Score, nil
}

// Active reports whether logic systems should run: the round is initialized,
// not paused and not over.
func (f *Frame) Active() bool {
	return f.State != nil && !f.State.Paused && !f.State.GameOver
}

func (f *Frame) logger() *zap.Logger {
	if f.Log == nil {
		return zap.NewNop()
	}
	return f.Log
}

// Snake is a read-only view of the snake entity's components.
type Snake struct {
	ID   ecs.EntityID
	Pos  component.Position
	Vel  component.Velocity
	Body component.Body
}

// SnakeOf returns the first live snake entity with position, velocity and body.
func SnakeOf(w *ecs.World) (Snake, bool) {
	for _, id := range w.TaggedIDs(component.TagSnake) {
		pos, ok1 := w.Component(id, component.CPosition).(component.Position)
		vel, ok2 := w.Component(id, component.CVelocity).(component.Velocity)
		body, ok3 := w.Component(id, component.CBody).(component.Body)
		if ok1 && ok2 && ok3 {
			return Snake{ID: id, Pos: pos, Vel: vel, Body: body}, true
		}
	}
	return Snake{}, false
}

// Occupied returns every cell held by an entity: positions of all positioned
// entities plus every snake body segment.
func Occupied(w *ecs.World) map[grid.Cell]bool {
	occ := make(map[grid.Cell]bool)
	for _, e := range w.QueryByComponent(component.CPosition) {
		occ[e.Get(component.CPosition).(component.Position).Cell()] = true
		if b, ok := e.Get(component.CBody).(component.Body); ok {
			for _, s := range b.Segments {
				occ[s] = true
			}
		}
	}
	return occ
}

// cellsOf returns the cells of every entity tagged tag.
func cellsOf(w *ecs.World, tag ecs.Tag) map[grid.Cell]ecs.EntityID {
	out := make(map[grid.Cell]ecs.EntityID)
	for _, id := range w.TaggedIDs(tag) {
		if p, ok := w.Component(id, component.CPosition).(component.Position); ok {
			out[p.Cell()] = id
		}
	}
	return out
}
