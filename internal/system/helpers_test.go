package system

import (
	"math/rand"
	"testing"

	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/event"
	"naja/internal/factory"
	"naja/internal/grid"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFrame(w, h int) *Frame {
	return &Frame{
		World:  ecs.NewWorld(),
		Grid:   grid.New(w, h),
		Rules:  Rules{Apples: 1, ApplePoints: 10, MaxSpeed: 20},
		State:  &component.GameState{},
		Score:  &component.Score{},
		Events: event.NewQueue(),
		Rand:   rand.New(rand.NewSource(1)),
		Log:    zap.NewNop(),
	}
}

func addSnake(f *Frame, head grid.Cell, length, dx, dy int) ecs.EntityID {
	return factory.NewSnake(f.World, factory.SnakeSpec{
		Head: head, Length: length, DX: dx, DY: dy, Speed: 4,
	})
}

func mustSnake(t *testing.T, f *Frame) Snake {
	t.Helper()
	s, ok := SnakeOf(f.World)
	require.True(t, ok, "snake missing")
	return s
}
