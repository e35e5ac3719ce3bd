package ecs

// EventType names an event payload.
type EventType string

const (
	EventShotDespawned EventType = "shot_despawned"
	EventStateChanged  EventType = "state_changed"
	EventPrefabReload  EventType = "prefab_reload"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// ShotDespawned is published once when a projectile leaves the scene.
type ShotDespawned struct {
	Owner Entity
	Shot  Entity
}

// StateChanged is published on every real character state transition.
type StateChanged struct {
	Entity Entity
	From   string
	To     string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Count returns how many queued events have the given type.
func (q *EventQueue) Count(t EventType) int {
	if q == nil {
		return 0
	}
	n := 0
	for _, evt := range q.items {
		if evt.Type == t {
			n++
		}
	}
	return n
}
