package event

import (
	"sync"
	"testing"
)

type countingListener struct {
	seen []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.seen = append(c.seen, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(BeamSpawned, a)
	d.Subscribe(BeamSpawned, b)
	d.Subscribe(LevelReset, a)

	d.Publish(Event{Type: BeamSpawned, Data: 1})
	d.Publish(Event{Type: LevelReset})
	d.Publish(Event{Type: BeamDespawned, Data: 1})

	if len(a.seen) != 2 {
		t.Fatalf("listener a saw %d events, want 2", len(a.seen))
	}
	if len(b.seen) != 1 {
		t.Fatalf("listener b saw %d events, want 1", len(b.seen))
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(BeamSpawned, l)
	d.Unsubscribe(BeamSpawned, l)

	d.Publish(Event{Type: BeamSpawned})

	if len(l.seen) != 0 {
		t.Fatalf("unsubscribed listener saw %d events", len(l.seen))
	}
}

func TestQueueDrainsInPushOrder(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: BeamSpawned, Data: 1})
	q.Push(Event{Type: BeamSpawned, Data: 2})
	q.Push(Event{Type: LevelReset})

	drained := q.Drain()
	if len(drained) != 3 {
		t.Fatalf("drained %d events, want 3", len(drained))
	}
	if drained[0].Data != 1 || drained[1].Data != 2 || drained[2].Type != LevelReset {
		t.Fatalf("events out of order: %+v", drained)
	}

	if again := q.Drain(); len(again) != 0 {
		t.Fatalf("second drain returned %d events, want 0", len(again))
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Push(Event{Type: BeamSpawned})
		}()
	}
	wg.Wait()

	if got := len(q.Drain()); got != 50 {
		t.Fatalf("drained %d events, want 50", got)
	}
}
