package notifications

import (
	"context"
	"log/slog"
	"sync"
)

// Publisher delivers a single notification event to its channel, for example
// a message broker or a log sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Dispatcher decouples notification delivery from the request path. Enqueue
// never blocks: events go into a bounded buffer consumed by a single
// goroutine, and when the buffer is full the event is dropped with a warning.
type Dispatcher struct {
	publisher Publisher
	events    chan Event

	stopOnce sync.Once
	done     chan struct{}
}

// NewDispatcher creates a dispatcher with the given buffer size and starts its
// consumer goroutine.
func NewDispatcher(publisher Publisher, bufferSize int) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		events:    make(chan Event, bufferSize),
		done:      make(chan struct{}),
	}

	go d.run()
	return d
}

// Enqueue hands an event to the dispatcher without blocking the caller.
func (d *Dispatcher) Enqueue(event Event) {
	select {
	case d.events <- event:
	default:
		slog.Warn("notification buffer full, dropping event",
			"kind", event.Kind.Title(),
			"orderId", event.OrderID.String(),
		)
	}
}

// Stop closes the intake, drains buffered events and waits for the consumer
// to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.events)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.events {
		if err := d.publisher.Publish(context.Background(), event); err != nil {
			slog.Error("failed to publish notification",
				"kind", event.Kind.Title(),
				"orderId", event.OrderID.String(),
				"error", err,
			)
		}
	}
}
