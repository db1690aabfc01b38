package system

import (
	"naja/internal/component"
	"naja/internal/event"
)

// HungerSystem starves a snake that goes too long without eating.
// Snakes without a Hunger component never starve.
type HungerSystem struct{}

func (HungerSystem) Name() string { return "hunger" }
func (HungerSystem) Phase() Phase { return PhaseLogic }

func (HungerSystem) Update(f *Frame) {
	state, _, err := f.Singletons()
	if err != nil {
		return
	}
	s, ok := SnakeOf(f.World)
	if !ok || !s.Body.Alive {
		return
	}
	h, ok := f.World.Component(s.ID, component.CHunger).(component.Hunger)
	if !ok {
		return
	}
	if f.Events.Has(event.KindAte) {
		h.Remaining = h.Max
	} else {
		h.Remaining--
	}
	if h.Remaining <= 0 {
		h.Remaining = 0
		_ = f.World.Set(s.ID, h)
		kill(f, s, state, component.CauseStarvation)
		return
	}
	_ = f.World.Set(s.ID, h)
}
