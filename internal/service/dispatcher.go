package service

import (
	"context"
	"sync"
	"time"

	"linkpulse/internal/metrics"
	"linkpulse/internal/model"
	"linkpulse/internal/mq"

	"github.com/rs/zerolog/log"
)

// Dispatcher publishes click events off the request path. Events wait in a
// bounded buffer; when it is full the event is dropped and logged.
type Dispatcher struct {
	publisher mq.Publisher
	events    chan *model.ClickEvent
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewDispatcher creates a dispatcher with the given buffer size and per-event
// enqueue timeout
func NewDispatcher(publisher mq.Publisher, buffer int, timeout time.Duration) *Dispatcher {
	if buffer < 1 {
		buffer = 1
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Dispatcher{
		publisher: publisher,
		events:    make(chan *model.ClickEvent, buffer),
		timeout:   timeout,
		done:      make(chan struct{}),
	}
}

// Dispatch queues the event for publishing. It never blocks and reports
// whether the event was accepted.
func (d *Dispatcher) Dispatch(event *model.ClickEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.EventsEnqueued.WithLabelValues("dropped").Inc()
		log.Warn().Str("event_id", event.EventID).Msg("Dispatcher closed, click event dropped")
		return false
	}

	select {
	case d.events <- event:
		return true
	default:
		metrics.EventsEnqueued.WithLabelValues("dropped").Inc()
		log.Error().
			Str("event_id", event.EventID).
			Str("short_code", event.ShortCode).
			Msg("Dispatch buffer full, click event dropped")
		return false
	}
}

// Run publishes buffered events until Close is called and the buffer is drained
func (d *Dispatcher) Run() {
	defer close(d.done)

	for event := range d.events {
		d.publish(event)
	}
}

func (d *Dispatcher) publish(event *model.ClickEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	handle, err := d.publisher.Enqueue(ctx, event)
	if err != nil {
		metrics.EventsEnqueued.WithLabelValues("failed").Inc()
		log.Error().
			Err(err).
			Str("event_id", event.EventID).
			Str("short_code", event.ShortCode).
			Msg("Failed to enqueue click event")
		return
	}

	metrics.EventsEnqueued.WithLabelValues("ok").Inc()
	log.Debug().Str("handle", handle).Str("event_id", event.EventID).Msg("Click event published")
}

// Close stops accepting events and waits until Run has drained the buffer
// or ctx is done
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.events)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
