package system

import (
	"testing"

	"naja/internal/component"
	"naja/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementAdvancesHeadAndDropsTail(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)

	MovementSystem{}.Update(f)

	s := mustSnake(t, f)
	assert.Equal(t, grid.Cell{X: 6, Y: 5}, s.Pos.Cell())
	assert.Equal(t, []grid.Cell{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Body.Segments)
	assert.Equal(t, 3, s.Body.Len())
	assert.True(t, s.Body.Shed)
	assert.Equal(t, grid.Cell{X: 3, Y: 5}, s.Body.Vacated)
	assert.Equal(t, 5, s.Pos.PrevX)
	assert.Equal(t, 5, s.Pos.PrevY)
}

func TestMovementZeroVelocityIsNoop(t *testing.T) {
	f := newFrame(10, 10)
	id := addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	require.NoError(t, f.World.Set(id, component.Velocity{Speed: 4}))
	before := mustSnake(t, f)

	for range 3 {
		MovementSystem{}.Update(f)
	}

	after := mustSnake(t, f)
	assert.Equal(t, before.Pos, after.Pos)
	assert.Equal(t, before.Body.Segments, after.Body.Segments)
}

func TestMovementGrowthKeepsTail(t *testing.T) {
	f := newFrame(10, 10)
	id := addSnake(f, grid.Cell{X: 5, Y: 5}, 2, 1, 0)
	s := mustSnake(t, f)
	s.Body.Growth = 2
	require.NoError(t, f.World.Set(id, s.Body))

	MovementSystem{}.Update(f)
	MovementSystem{}.Update(f)
	MovementSystem{}.Update(f)

	s = mustSnake(t, f)
	assert.Equal(t, 4, s.Body.Len())
	assert.Equal(t, 0, s.Body.Growth)
	assert.Equal(t, grid.Cell{X: 8, Y: 5}, s.Body.Head())
}

func TestMovementWrapsWithoutElectricWalls(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 9, Y: 5}, 2, 1, 0)

	MovementSystem{}.Update(f)

	assert.Equal(t, grid.Cell{X: 0, Y: 5}, mustSnake(t, f).Body.Head())
}

func TestMovementLeavesHeadOffGridWithElectricWalls(t *testing.T) {
	f := newFrame(10, 10)
	f.Rules.ElectricWalls = true
	addSnake(f, grid.Cell{X: 5, Y: 0}, 2, 0, -1)

	MovementSystem{}.Update(f)

	assert.Equal(t, grid.Cell{X: 5, Y: -1}, mustSnake(t, f).Body.Head())
}

func TestAdvanceDoesNotAliasInput(t *testing.T) {
	body := component.Body{Segments: []grid.Cell{{X: 1, Y: 1}, {X: 0, Y: 1}}, Alive: true}
	_, next := Advance(component.At(grid.Cell{X: 1, Y: 1}), component.Velocity{DX: 1}, body, grid.New(5, 5), false)

	assert.Equal(t, []grid.Cell{{X: 1, Y: 1}, {X: 0, Y: 1}}, body.Segments)
	assert.Equal(t, []grid.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}}, next.Segments)
}
