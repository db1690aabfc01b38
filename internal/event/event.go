package event

import (
	"naja/internal/component"
	"naja/internal/ecs"
	"naja/internal/grid"
)

// Kind identifies what happened.
type Kind uint8

const (
	KindAte Kind = iota + 1
	KindDied
	KindSpeedChanged
	KindHighScore
	KindRoundStarted
)

func (k Kind) String() string {
	switch k {
	case KindAte:
		return "ate"
	case KindDied:
		return "died"
	case KindSpeedChanged:
		return "speed"
	case KindHighScore:
		return "high_score"
	case KindRoundStarted:
		return "round_started"
	}
	return "unknown"
}

// Event is a cross-system signal raised during one tick.
type Event struct {
	Kind   Kind
	Entity ecs.EntityID
	Cell   grid.Cell
	Points int
	Speed  float64
	Cause  component.DeathCause
}

// Queue buffers the events of the current tick. Logic systems push,
// later systems read, and the scheduler clears it when the tick ends.
type Queue struct {
	events []Event
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Events returns the pending events in emission order.
// The slice is only valid until Clear.
func (q *Queue) Events() []Event { return q.events }

// Has reports whether an event of kind k is pending.
func (q *Queue) Has(k Kind) bool {
	for _, e := range q.events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Count returns the number of pending events of kind k.
func (q *Queue) Count(k Kind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }

// Clear drops every pending event.
func (q *Queue) Clear() { q.events = q.events[:0] }
