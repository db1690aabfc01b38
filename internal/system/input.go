package system

import "naja/internal/component"

// Command is a player intent, produced by a front end from a key press.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdQuit
	CmdMenu
)

// maxBufferedTurns caps how many turns may queue up between ticks.
const maxBufferedTurns = 3

func (c Command) direction() (dx, dy int, ok bool) {
	switch c {
	case CmdUp:
		return 0, -1, true
	case CmdDown:
		return 0, 1, true
	case CmdLeft:
		return -1, 0, true
	case CmdRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// InputSystem turns submitted commands into velocity changes and state flags.
// At most one turn is applied per tick; the rest wait in a short buffer so
// quick double taps are not lost.
type InputSystem struct {
	pending []Command
	turns   []Command
}

func (*InputSystem) Name() string { return "input" }
func (*InputSystem) Phase() Phase { return PhaseInput }

// Submit queues a command for the next tick.
func (s *InputSystem) Submit(c Command) {
	if c == CmdNone {
		return
	}
	s.pending = append(s.pending, c)
}

// Reset drops everything queued.
func (s *InputSystem) Reset() {
	s.pending = s.pending[:0]
	s.turns = s.turns[:0]
}

func (s *InputSystem) Update(f *Frame) {
	state, _, err := f.Singletons()
	if err != nil {
		s.pending = s.pending[:0]
		return
	}
	for _, c := range s.pending {
		switch c {
		case CmdPause:
			if !state.GameOver {
				state.Paused = !state.Paused
			}
		case CmdQuit:
			state.NextScene = component.SceneQuit
		case CmdMenu:
			state.NextScene = component.SceneMenu
		default:
			if _, _, ok := c.direction(); ok && len(s.turns) < maxBufferedTurns {
				s.turns = append(s.turns, c)
			}
		}
	}
	s.pending = s.pending[:0]

	if !f.Active() {
		s.turns = s.turns[:0]
		return
	}
	snake, ok := SnakeOf(f.World)
	if !ok {
		s.turns = s.turns[:0]
		return
	}
	hx, hy := heading(snake)
	for len(s.turns) > 0 {
		c := s.turns[0]
		s.turns = s.turns[1:]
		dx, dy, ok := c.direction()
		if !ok || dx == hx && dy == hy {
			continue
		}
		if (hx != 0 || hy != 0) && dx == -hx && dy == -hy {
			continue
		}
		vel := snake.Vel
		vel.DX, vel.DY = dx, dy
		_ = f.World.Set(snake.ID, vel)
		return
	}
}

// heading returns the direction of the last executed move: from the neck to
// the head, undoing wrap-around, or the velocity for a one-cell snake.
func heading(s Snake) (int, int) {
	if s.Body.Len() < 2 {
		return s.Vel.DX, s.Vel.DY
	}
	head, neck := s.Body.Segments[0], s.Body.Segments[1]
	return unwrapStep(head.X - neck.X), unwrapStep(head.Y - neck.Y)
}

func unwrapStep(d int) int {
	switch {
	case d > 1:
		return -1
	case d < -1:
		return 1
	}
	return d
}
