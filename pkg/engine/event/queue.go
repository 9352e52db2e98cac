// Package event provides a small typed event queue for decoupling game
// systems. Producers push events during a tick; the game loop drains the
// queue once per tick and dispatches to consumers. The simulation is single
// threaded, so no locking is needed.
package event

// Type identifies an event.
type Type int

// Event types.
const (
	// DoorAnimationFinished fires when a door finishes its open or close
	// animation. Payload: world.AnimationKind.
	DoorAnimationFinished Type = iota
	// LevelFinished fires once per level when the last hostile is removed.
	// Payload: nil.
	LevelFinished
	// LevelSwitch fires when the player walks out through a passable door.
	// Payload: world.DoorInfo (the exit door).
	LevelSwitch
)

// Event is one queued occurrence.
type Event struct {
	Type    Type
	Payload any
}

// Queue is an ordered single-consumer event queue.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(t Type, payload any) {
	q.events = append(q.events, Event{Type: t, Payload: payload})
}

// Drain returns all queued events in push order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
