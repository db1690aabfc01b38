package system

import "naja/internal/event"

// ScoringSystem raises the high score as the current score passes it and
// announces the first time that happens in a round.
type ScoringSystem struct {
	announced bool
}

func (*ScoringSystem) Name() string { return "scoring" }
func (*ScoringSystem) Phase() Phase { return PhaseLogic }

func (s *ScoringSystem) Reset() { s.announced = false }

func (s *ScoringSystem) Update(f *Frame) {
	_, score, err := f.Singletons()
	if err != nil || score.Current <= score.High {
		return
	}
	score.High = score.Current
	if !s.announced {
		s.announced = true
		f.Events.Push(event.Event{Kind: event.KindHighScore, Points: score.High})
	}
}
