package system

import (
	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/event"
	"naja/internal/grid"

	"go.uber.org/zap"
)

// OutcomeKind is the result class of one collision check.
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeAte
	OutcomeDied
)

// Outcome is the single result of a collision check. Entity is the edible
// touched, if any.
type Outcome struct {
	Kind   OutcomeKind
	Entity ecs.EntityID
	Cause  component.DeathCause
}

// Detect inspects the post-move snake and reports what it ran into. Checks
// run in a fixed order and the first match wins: edible, wall, obstacle,
// own body.
func Detect(w *ecs.World, g grid.Grid, electric bool, body component.Body) Outcome {
	if len(body.Segments) == 0 {
		return Outcome{}
	}
	head := body.Head()

	for _, tag := range []ecs.Tag{component.TagApple, component.TagPoison} {
		for _, id := range w.TaggedIDs(tag) {
			p, ok := w.Component(id, component.CPosition).(component.Position)
			if !ok || p.Cell() != head {
				continue
			}
			e, ok := w.Component(id, component.CEdible).(component.Edible)
			if !ok {
				continue
			}
			if e.Poisoned {
				return Outcome{Kind: OutcomeDied, Entity: id, Cause: component.CausePoison}
			}
			return Outcome{Kind: OutcomeAte, Entity: id}
		}
	}

	if electric && !g.InBounds(head) {
		return Outcome{Kind: OutcomeDied, Cause: component.CauseWall}
	}

	if _, hit := cellsOf(w, component.TagObstacle)[head]; hit {
		return Outcome{Kind: OutcomeDied, Cause: component.CauseObstacle}
	}

	for _, s := range body.Segments[1:] {
		if s == head {
			return Outcome{Kind: OutcomeDied, Cause: component.CauseSelf}
		}
	}
	// A two-segment snake that doubles back swaps head and neck; the head
	// lands on the cell its tail just left.
	if body.Len() == 2 && body.Shed && body.Vacated == head {
		return Outcome{Kind: OutcomeDied, Cause: component.CauseSelf}
	}
	return Outcome{}
}

// CollisionSystem resolves the snake's head against everything on the board
// and applies the consequences.
type CollisionSystem struct{}

func (CollisionSystem) Name() string { return "collision" }
func (CollisionSystem) Phase() Phase { return PhaseLogic }

func (CollisionSystem) Update(f *Frame) {
	state, score, err := f.Singletons()
	if err != nil {
		f.logger().Debug("collision skipped", zap.Error(err))
		return
	}
	s, ok := SnakeOf(f.World)
	if !ok || !s.Body.Alive {
		return
	}

	out := Detect(f.World, f.Grid, f.Rules.ElectricWalls, s.Body)
	switch out.Kind {
	case OutcomeAte:
		eat(f, s, out.Entity, score)
	case OutcomeDied:
		if out.Entity != ecs.NilEntity {
			f.World.Remove(out.Entity)
		}
		kill(f, s, state, out.Cause)
	}
}

func eat(f *Frame, s Snake, appleID ecs.EntityID, score *component.Score) {
	edible, _ := f.World.Component(appleID, component.CEdible).(component.Edible)
	f.World.Remove(appleID)

	body := s.Body.Clone()
	body.Growth += edible.Growth
	_ = f.World.Set(s.ID, body)

	points := edible.Points
	if points == 0 && f.Rules.ApplePoints > 0 {
		points = f.Rules.ApplePoints
	}
	score.Current += points

	head := s.Body.Head()
	f.Events.Push(event.Event{Kind: event.KindAte, Entity: s.ID, Cell: head, Points: points})

	if edible.SpeedModifier > 0 && edible.SpeedModifier != 1 {
		vel := s.Vel
		vel.Speed *= edible.SpeedModifier
		if f.Rules.MaxSpeed > 0 && vel.Speed > f.Rules.MaxSpeed {
			vel.Speed = f.Rules.MaxSpeed
		}
		if vel.Speed < f.Rules.MinSpeed {
			vel.Speed = f.Rules.MinSpeed
		}
		if vel.Speed != s.Vel.Speed {
			_ = f.World.Set(s.ID, vel)
			f.Events.Push(event.Event{Kind: event.KindSpeedChanged, Entity: s.ID, Speed: vel.Speed})
		}
	}
}

// kill ends the round. It is shared by every system that can end it.
func kill(f *Frame, s Snake, state *component.GameState, cause component.DeathCause) {
	body := s.Body.Clone()
	body.Alive = false
	_ = f.World.Set(s.ID, body)

	state.GameOver = true
	state.DeathReason = cause
	f.Events.Push(event.Event{Kind: event.KindDied, Entity: s.ID, Cell: s.Body.Head(), Cause: cause})
	f.logger().Info("snake died",
		zap.String("cause", string(cause)),
		zap.Int("length", s.Body.Len()),
		zap.Uint64("tick", f.Tick),
	)
}
