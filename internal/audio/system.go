package audio

import (
	"naja/internal/component"
	"naja/internal/event"
	"naja/internal/system"
)

// System turns the tick's events into sound effects.
type System struct {
	Player Player
}

func (*System) Name() string        { return "audio" }
func (*System) Phase() system.Phase { return system.PhasePresent }

func (s *System) Update(f *system.Frame) {
	for _, e := range f.Events.Events() {
		if snd, ok := soundFor(e); ok {
			s.Player.Play(snd)
		}
	}
}

func soundFor(e event.Event) (Sound, bool) {
	switch e.Kind {
	case event.KindAte:
		return SoundAte, true
	case event.KindSpeedChanged:
		return SoundSpeedUp, true
	case event.KindDied:
		if e.Cause == component.CausePoison {
			return SoundPoison, true
		}
		return SoundDeath, true
	case event.KindHighScore:
		return SoundHighScore, true
	case event.KindRoundStarted:
		return SoundStart, true
	}
	return 0, false
}
