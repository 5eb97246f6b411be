// Package saga routes channel deliveries to the per-service choreography
// handlers. There is no orchestrator: each service registers the event types it
// reacts to and publishes its own outcomes.
package saga

import (
	"context"
	"log/slog"
	"time"

	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EventHandlerFunc wraps a function as an events.EventHandler
type EventHandlerFunc struct {
	id string
	fn func(ctx context.Context, event *events.Event) error
}

func NewEventHandlerFunc(id string, fn func(ctx context.Context, event *events.Event) error) *EventHandlerFunc {
	return &EventHandlerFunc{id: id, fn: fn}
}

func (h *EventHandlerFunc) HandlerID() string {
	return h.id
}

func (h *EventHandlerFunc) Handle(ctx context.Context, event *events.Event) error {
	return h.fn(ctx, event)
}

// EventRouter dispatches an event to every handler registered for its type
type EventRouter struct {
	name     string
	handlers map[string][]events.EventHandler
	tel      *telemetry.Telemetry
	logger   *slog.Logger
}

// NewEventRouter creates a router; tel may be nil.
func NewEventRouter(name string, tel *telemetry.Telemetry, logger *slog.Logger) *EventRouter {
	return &EventRouter{
		name:     name,
		handlers: make(map[string][]events.EventHandler),
		tel:      tel,
		logger:   logger,
	}
}

// RegisterHandler registers an event handler for a specific event type
func (r *EventRouter) RegisterHandler(eventType string, handler events.EventHandler) {
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// EventTypes lists the registered types, used as channel bindings
func (r *EventRouter) EventTypes() []string {
	types := make([]string, 0, len(r.handlers))
	for eventType := range r.handlers {
		types = append(types, eventType)
	}
	return types
}

// HandlerID identifies the router in logs
func (r *EventRouter) HandlerID() string {
	return r.name
}

// Handle runs the registered handlers in order and stops at the first error so
// the delivery is redelivered. Handlers must therefore be idempotent.
func (r *EventRouter) Handle(ctx context.Context, event *events.Event) error {
	handlers, exists := r.handlers[event.Type]
	if !exists {
		r.logger.DebugContext(ctx, "no handler registered, acknowledging",
			slog.String("event_type", event.Type),
			slog.String("event_id", event.ID.String()),
		)
		return nil
	}

	if r.tel != nil {
		ctx = telemetry.WithTelemetry(ctx, r.tel)
	}

	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "event "+event.Type,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("event.id", event.ID.String()),
			attribute.String("event.type", event.Type),
			attribute.String("event.aggregate_id", event.AggregateID.String()),
		),
	)
	defer span.End()

	var err error
	for _, handler := range handlers {
		if err = handler.Handle(ctx, event); err != nil {
			break
		}
	}

	outcome := "ack"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "event handling failed",
			slog.String("event_type", event.Type),
			slog.String("event_id", event.ID.String()),
			slog.String("aggregate_id", event.AggregateID.String()),
			slog.Int("attempt", event.Attempt()),
			slog.Any("error", err),
		)
	}

	telemetry.RecordCounter(ctx, "events_handled_total", "Events handled by the choreography router", 1,
		attribute.String("event_type", event.Type),
		attribute.String("outcome", outcome),
	)
	telemetry.RecordHistogram(ctx, "event_handling_duration_seconds", "Event handling duration", time.Since(start).Seconds(),
		attribute.String("event_type", event.Type),
	)

	return err
}
