package uibridge

import "github.com/hubastard/canopy/engine/ui"

// EventQueue is the per-tick buffer of translated toolkit events. It is
// rebuilt every tick and shared by all sessions: the first session to
// display consumes it.
type EventQueue struct {
	events []ui.Event
}

func (q *EventQueue) Push(ev ui.Event) { q.events = append(q.events, ev) }

// Events returns the buffered events in arrival order without consuming
// them.
func (q *EventQueue) Events() []ui.Event { return q.events }

func (q *EventQueue) Len() int { return len(q.events) }

// Clear empties the queue, keeping its storage.
func (q *EventQueue) Clear() { q.events = q.events[:0] }
