package testkit

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/saga"
)

var _ events.Publisher = (*Bus)(nil)

type subscription struct {
	router *saga.EventRouter
	types  map[string]bool
}

// Bus is a synchronous in-process message channel. Published events are
// encoded, queued and delivered by Drain to every router bound to their type.
type Bus struct {
	mu            sync.Mutex
	queue         [][]byte
	subscriptions []subscription
	delivered     []*events.Event
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Bind subscribes router to the event types it registered
func (b *Bus) Bind(router *saga.EventRouter) {
	types := make(map[string]bool)
	for _, eventType := range router.EventTypes() {
		types[eventType] = true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = append(b.subscriptions, subscription{router: router, types: types})
}

// Publish queues events in their wire encoding
func (b *Bus) Publish(ctx context.Context, evts ...*events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, event := range evts {
		body, err := event.ToJSON()
		if err != nil {
			return errors.Wrap(err, "failed to encode event")
		}
		b.queue = append(b.queue, body)
	}
	return nil
}

// Drain delivers queued events, including those published while delivering,
// until the queue is empty. It stops at the first handler error.
func (b *Bus) Drain(ctx context.Context) error {
	for {
		body, ok := b.next()
		if !ok {
			return nil
		}
		if err := b.deliver(ctx, body); err != nil {
			return err
		}
	}
}

// Redeliver hands a copy of event to its subscribers once more, as the broker
// does after a lost acknowledgement, with the delivery attempt bumped.
func (b *Bus) Redeliver(ctx context.Context, event *events.Event) error {
	retry := event.Clone().WithMetadata(events.DeliveryAttemptKey, strconv.Itoa(event.Attempt()+1))
	body, err := retry.ToJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}
	return b.deliver(ctx, body)
}

// Delivered returns every event delivered so far, in order
func (b *Bus) Delivered() []*events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*events.Event(nil), b.delivered...)
}

// DeliveredOfType returns the delivered events of one type
func (b *Bus) DeliveredOfType(eventType string) []*events.Event {
	var matching []*events.Event
	for _, event := range b.Delivered() {
		if event.Type == eventType {
			matching = append(matching, event)
		}
	}
	return matching
}

func (b *Bus) next() ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.queue) == 0 {
		return nil, false
	}
	body := b.queue[0]
	b.queue = b.queue[1:]
	return body, true
}

func (b *Bus) deliver(ctx context.Context, body []byte) error {
	event, err := events.FromJSON(body)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.delivered = append(b.delivered, event)
	subscriptions := append([]subscription(nil), b.subscriptions...)
	b.mu.Unlock()

	for _, sub := range subscriptions {
		if !sub.types[event.Type] {
			continue
		}
		if err := sub.router.Handle(ctx, event); err != nil {
			return errors.Wrapf(err, "%s failed on %s", sub.router.HandlerID(), event.Type)
		}
	}
	return nil
}
