package sim

// EventType identifies event payload kinds.
type EventType string

const (
	// EventSensorOverlap is published once per overlapping sensor pair
	// per tick. Sensors never cause positional correction.
	EventSensorOverlap EventType = "sensor_overlap"
)

// SensorOverlap reports that Mover's collider overlapped Sensor's collider
// this tick.
type SensorOverlap struct {
	Sensor Entity
	Mover  Entity
}

// Event is a simulation event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a FIFO queue of events published during a tick. At the
// start of tick N+1 the runner mirrors tick N's sensor overlaps into the
// context for the behavior pass, then clears the queue.
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

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
