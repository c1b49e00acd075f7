package event

import "sync"

type Type string

const (
	// LevelReset asks the simulation to despawn every beam and forget all
	// cached paths and playback progress
	LevelReset Type = "LevelReset"
	// BeamSpawned is published after a beam source is created
	BeamSpawned Type = "BeamSpawned"
	// BeamDespawned is published after a beam source is removed
	BeamDespawned Type = "BeamDespawned"
)

type Event struct {
	Type Type
	Data any
}

// Listener receives events published through a Dispatcher
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers published events synchronously to subscribers
type Dispatcher struct {
	listeners map[Type][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType Type, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) Unsubscribe(eventType Type, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Publish(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Queue collects events to be consumed in a batch once per simulation tick.
// Push may be called from input handlers; Drain is called by the tick owner.
type Queue struct {
	mu      sync.Mutex
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(event Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, event)
}

// Drain returns all pending events in push order and empties the queue
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending
	q.pending = nil
	return drained
}
