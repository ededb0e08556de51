package ecs

// EventType identifies gameplay events.
type EventType uint8

const (
	EventStarCollected EventType = iota + 1
	EventWaveCleared
	EventBombSpawned
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventStarCollected:
		return "star_collected"
	case EventWaveCleared:
		return "wave_cleared"
	case EventBombSpawned:
		return "bomb_spawned"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a gameplay notification produced by systems and drained by the
// host once per frame.
type Event struct {
	Type   EventType
	Entity Entity
	Score  int
	X, Y   float64
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
