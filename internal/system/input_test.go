package system

import (
	"testing"

	"naja/internal/component"
	"naja/internal/grid"

	"github.com/stretchr/testify/assert"
)

func TestInputTurnsSnake(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	in := &InputSystem{}

	in.Submit(CmdUp)
	in.Update(f)

	v := mustSnake(t, f).Vel
	assert.Equal(t, 0, v.DX)
	assert.Equal(t, -1, v.DY)
	assert.InDelta(t, 4.0, v.Speed, 1e-9)
}

func TestInputRejectsReversal(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	in := &InputSystem{}

	in.Submit(CmdLeft)
	in.Update(f)

	assert.Equal(t, 1, mustSnake(t, f).Vel.DX)
}

func TestInputRejectsReversalOfLastMoveNotVelocity(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	in := &InputSystem{}

	// Up then left before the snake has moved: left would reverse the
	// last executed move and must be ignored even though velocity is up.
	in.Submit(CmdUp)
	in.Update(f)
	in.Submit(CmdLeft)
	in.Update(f)

	v := mustSnake(t, f).Vel
	assert.Equal(t, 0, v.DX)
	assert.Equal(t, -1, v.DY)
}

func TestInputAppliesOneTurnPerTick(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	in := &InputSystem{}

	in.Submit(CmdUp)
	in.Submit(CmdLeft)
	in.Update(f)
	assert.Equal(t, -1, mustSnake(t, f).Vel.DY)

	MovementSystem{}.Update(f)
	in.Update(f)
	v := mustSnake(t, f).Vel
	assert.Equal(t, -1, v.DX)
	assert.Equal(t, 0, v.DY)
}

func TestInputBufferIsBounded(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	in := &InputSystem{}
	for range 10 {
		in.Submit(CmdDown)
	}
	in.Update(f)

	assert.Len(t, in.turns, maxBufferedTurns-1)
}

func TestInputDropsTurnsWhilePaused(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	f.State.Paused = true
	in := &InputSystem{}

	in.Submit(CmdUp)
	in.Update(f)

	assert.Empty(t, in.turns)
	assert.Equal(t, 1, mustSnake(t, f).Vel.DX)
}

func TestInputPauseToggle(t *testing.T) {
	f := newFrame(10, 10)
	in := &InputSystem{}

	in.Submit(CmdPause)
	in.Update(f)
	assert.True(t, f.State.Paused)

	in.Submit(CmdPause)
	in.Update(f)
	assert.False(t, f.State.Paused)

	f.State.GameOver = true
	in.Submit(CmdPause)
	in.Update(f)
	assert.False(t, f.State.Paused, "pause is ignored once the round is over")
}

func TestInputSceneRequests(t *testing.T) {
	f := newFrame(10, 10)
	in := &InputSystem{}

	in.Submit(CmdMenu)
	in.Update(f)
	assert.Equal(t, component.SceneMenu, f.State.NextScene)

	in.Submit(CmdQuit)
	in.Update(f)
	assert.Equal(t, component.SceneQuit, f.State.NextScene)
}

func TestInputWrappedHeading(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 9, Y: 5}, 3, 1, 0)
	in := &InputSystem{}
	MovementSystem{}.Update(f) // head wraps to (0,5), neck at (9,5)

	in.Submit(CmdLeft)
	in.Update(f)

	assert.Equal(t, 1, mustSnake(t, f).Vel.DX, "left reverses a wrapped rightward move")
}

func TestInputIgnoresUnknownCommands(t *testing.T) {
	f := newFrame(10, 10)
	addSnake(f, grid.Cell{X: 5, Y: 5}, 3, 1, 0)
	in := &InputSystem{}

	in.Submit(Command(200))
	in.Submit(CmdUp)
	in.Update(f)

	v := mustSnake(t, f).Vel
	assert.Equal(t, 0, v.DX)
	assert.Equal(t, -1, v.DY, "the valid turn behind it still applies")
	assert.Empty(t, in.turns)
}
