package system

import "time"

// Phase groups systems by when they may run.
type Phase int

const (
	PhaseInput   Phase = iota // runs every tick, also while paused
	PhaseLogic                // skipped while paused or after game over
	PhasePresent              // runs every tick, reads final state
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseLogic:
		return "logic"
	case PhasePresent:
		return "present"
	}
	return "unknown"
}

// System is the interface every system implements.
type System interface {
	Name() string
	Phase() Phase
	Update(f *Frame)
}

// Resetter is implemented by systems that keep per-round state.
type Resetter interface {
	Reset()
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Phase          Phase
	ExecutionCount int64
	SkippedCount   int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	skippedCount   int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order. The order is the
// configuration; there is no sorting.
type Scheduler struct {
	systems []System
	stats   []*systemStatsInternal
}

// NewScheduler creates a scheduler with the given systems, in order.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Register(sys)
	}
	return s
}

// Register appends a system to the end of the run order.
func (s *Scheduler) Register(sys System) {
	s.systems = append(s.systems, sys)
	s.stats = append(s.stats, &systemStatsInternal{minDuration: time.Duration(1<<63 - 1)})
}

// Systems returns the registered systems in run order.
func (s *Scheduler) Systems() []System { return s.systems }

// Tick runs one frame. Logic systems are re-checked before each one runs,
// so a death halfway through the frame stops the remaining logic.
// The event queue is cleared and the tick counter advanced at the end.
func (s *Scheduler) Tick(f *Frame) {
	for i, sys := range s.systems {
		st := s.stats[i]
		if sys.Phase() == PhaseLogic && !f.Active() {
			st.skippedCount++
			continue
		}
		start := time.Now()
		sys.Update(f)
		d := time.Since(start)

		st.executionCount++
		st.lastDuration = d
		st.totalDuration += d
		st.minDuration = min(st.minDuration, d)
		st.maxDuration = max(st.maxDuration, d)
	}
	if f.Events != nil {
		f.Events.Clear()
	}
	f.Tick++
}

// Reset calls Reset on every system holding per-round state.
func (s *Scheduler) Reset() {
	for _, sys := range s.systems {
		if r, ok := sys.(Resetter); ok {
			r.Reset()
		}
	}
}

// Stats returns per-system execution statistics in run order.
func (s *Scheduler) Stats() []SystemStats {
	out := make([]SystemStats, len(s.systems))
	for i, sys := range s.systems {
		st := s.stats[i]
		var avg time.Duration
		if st.executionCount > 0 {
			avg = st.totalDuration / time.Duration(st.executionCount)
		}
		minD := st.minDuration
		if st.executionCount == 0 {
			minD = 0
		}
		out[i] = SystemStats{
			Name:           sys.Name(),
			Phase:          sys.Phase(),
			ExecutionCount: st.executionCount,
			SkippedCount:   st.skippedCount,
			MinDuration:    minD,
			MaxDuration:    st.maxDuration,
			AvgDuration:    avg,
			LastDuration:   st.lastDuration,
		}
	}
	return out
}
