package component

import "github.com/odvcencio/panekit/pkg/ui/input"

// EventBuffer records the events routed to each component, in arrival order.
type EventBuffer struct {
	events map[ID][]input.Event
}

// NewEventBuffer creates an empty buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{events: make(map[ID][]input.Event)}
}

// Add appends ev to id's history. A nil event is ignored.
func (b *EventBuffer) Add(id ID, ev *input.Event) {
	if b == nil || ev == nil {
		return
	}
	if b.events == nil {
		b.events = make(map[ID][]input.Event)
	}
	b.events[id] = append(b.events[id], *ev)
}

// Get returns a copy of id's history. Unknown ids yield an empty slice.
func (b *EventBuffer) Get(id ID) []input.Event {
	if b == nil {
		return []input.Event{}
	}
	return append([]input.Event{}, b.events[id]...)
}

// Len returns the number of ids with recorded events.
func (b *EventBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.events)
}

// Reset drops all recorded events.
func (b *EventBuffer) Reset() {
	if b == nil {
		return
	}
	clear(b.events)
}
