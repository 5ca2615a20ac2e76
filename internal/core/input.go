package core

import "strings"

// EventKind identifies the type of an input event.
type EventKind int

const (
	EventNone    EventKind = iota
	EventQuit            // Window closed or a quit key pressed
	EventKeyDown         // A key was pressed; Event.Key names it
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Event is a single input event, abstracted from the frontend that produced it.
// Key names are lower-case ("space", "up", "w") regardless of frontend.
type Event struct {
	Kind EventKind
	Key  string
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key press event for the named key.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// EventQueue is a FIFO of pending input events.
// Frontends push events as they arrive; the frame loop drains them once per tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Poll removes and returns the oldest event.
// The second result is false when the queue is empty.
func (q *EventQueue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// NormalizeKey returns the canonical name of a key.
// Names are lower-cased and a few common aliases are folded together.
func NormalizeKey(name string) string {
	if name == " " {
		return "space"
	}

	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "escape":
		return "esc"
	case "return":
		return "enter"
	case "arrowup":
		return "up"
	case "arrowdown":
		return "down"
	case "arrowleft":
		return "left"
	case "arrowright":
		return "right"
	}
	return name
}
