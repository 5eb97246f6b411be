package infrastructure

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

var _ events.Subscriber = (*RabbitMQSubscriber)(nil)

const (
	attemptHeader      = "x-attempt"
	deathReasonHeader  = "x-dead-letter-reason"
	originalKeyHeader  = "x-original-routing-key"
	deadLetterSuffix   = ".dead-letter"
	defaultMaxAttempts = 5
)

// amqpPublisher is the part of *amqp.Channel used to requeue and dead-letter.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitMQSubscriberOptions struct {
	prefetch     int
	maxAttempts  int
	retryBackoff time.Duration
}

type RabbitMQSubscriberOption func(*rabbitMQSubscriberOptions)

// WithPrefetch sets how many unacknowledged deliveries the broker hands out.
func WithPrefetch(prefetch int) RabbitMQSubscriberOption {
	return func(o *rabbitMQSubscriberOptions) {
		if prefetch > 0 {
			o.prefetch = prefetch
		}
	}
}

// WithMaxAttempts caps deliveries per message before it is dead-lettered.
func WithMaxAttempts(attempts int) RabbitMQSubscriberOption {
	return func(o *rabbitMQSubscriberOptions) {
		if attempts > 0 {
			o.maxAttempts = attempts
		}
	}
}

// WithRetryBackoff sets the base wait before a failed message is requeued;
// it grows linearly with the attempt number.
func WithRetryBackoff(backoff time.Duration) RabbitMQSubscriberOption {
	return func(o *rabbitMQSubscriberOptions) {
		if backoff >= 0 {
			o.retryBackoff = backoff
		}
	}
}

// RabbitMQSubscriber consumes one durable queue bound to a set of event types.
// Deliveries are acknowledged only after the handler succeeds; failures are
// requeued with an attempt counter and dead-lettered once it reaches the cap.
// Errors that cannot succeed on retry are dead-lettered at once.
type RabbitMQSubscriber struct {
	conn     *RabbitMQConnection
	exchange string
	queue    string
	bindings []string
	options  *rabbitMQSubscriberOptions
	logger   *slog.Logger
}

// NewRabbitMQSubscriber creates a subscriber for queue bound to bindings on exchange
func NewRabbitMQSubscriber(
	conn *RabbitMQConnection,
	exchange string,
	queue string,
	bindings []string,
	logger *slog.Logger,
	opts ...RabbitMQSubscriberOption,
) *RabbitMQSubscriber {
	options := &rabbitMQSubscriberOptions{
		prefetch:     1,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: time.Second,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &RabbitMQSubscriber{
		conn:     conn,
		exchange: exchange,
		queue:    queue,
		bindings: bindings,
		options:  options,
		logger:   logger.With(slog.String("queue", queue)),
	}
}

// DeadLetterQueue is the inspection queue for messages that exhausted retries
func (s *RabbitMQSubscriber) DeadLetterQueue() string {
	return s.queue + deadLetterSuffix
}

// routedHandler is implemented by handlers that know which event types they consume
type routedHandler interface {
	EventTypes() []string
}

// Subscribe consumes until ctx is done, re-establishing the consumer after
// every connection loss. A handler listing its event types adds them to the
// queue bindings.
func (s *RabbitMQSubscriber) Subscribe(ctx context.Context, handler events.EventHandler) error {
	if routed, ok := handler.(routedHandler); ok {
		s.bindings = mergeBindings(s.bindings, routed.EventTypes())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.conn.Ready():
		}

		err := s.consume(ctx, handler)
		if ctx.Err() != nil {
			return nil
		}

		s.logger.Warn("consumer stopped, restarting",
			slog.Duration("retry_in", s.conn.ReconnectDelay()),
			slog.Any("error", err),
		)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.conn.ReconnectDelay()):
		}
	}
}

func (s *RabbitMQSubscriber) consume(ctx context.Context, handler events.EventHandler) error {
	ch, err := s.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := s.declareTopology(ch); err != nil {
		return err
	}

	if err := ch.Qos(s.options.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "failed to set prefetch")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, s.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to consume %s", s.queue)
	}

	s.logger.Info("consumer started", slog.Any("bindings", s.bindings))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			s.process(ctx, ch, delivery, handler)
		}
	}
}

func (s *RabbitMQSubscriber) declareTopology(ch *amqp.Channel) error {
	if err := declareExchange(ch, s.exchange); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", s.queue)
	}

	if _, err := ch.QueueDeclare(s.DeadLetterQueue(), true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", s.DeadLetterQueue())
	}

	for _, key := range s.bindings {
		if err := ch.QueueBind(s.queue, key, s.exchange, false, nil); err != nil {
			return errors.Wrapf(err, "failed to bind %s to %s", key, s.queue)
		}
	}

	return nil
}

func (s *RabbitMQSubscriber) process(ctx context.Context, pub amqpPublisher, d amqp.Delivery, handler events.EventHandler) {
	event, err := events.FromJSON(d.Body)
	if err != nil {
		s.deadLetter(ctx, pub, d, "malformed envelope: "+err.Error())
		return
	}

	attempt := attemptOf(d.Headers)
	event.WithMetadata(events.DeliveryAttemptKey, strconv.Itoa(attempt))
	logger := s.logger.With(
		slog.String("event_type", event.Type),
		slog.String("event_id", event.ID.String()),
		slog.Int("attempt", attempt),
	)

	handleErr := handler.Handle(ctx, event)
	if handleErr == nil {
		if err := d.Ack(false); err != nil {
			logger.Error("ack failed", slog.Any("error", err))
		}
		return
	}

	if ctx.Err() != nil {
		// Shutting down: let the broker hand the message to another consumer.
		_ = d.Nack(false, true)
		return
	}

	if attempt >= s.options.maxAttempts || !retryable(handleErr) {
		logger.Error("dead-lettering", slog.Any("error", handleErr))
		s.deadLetter(ctx, pub, d, handleErr.Error())
		return
	}

	logger.Warn("event handling failed, requeueing", slog.Any("error", handleErr))

	select {
	case <-ctx.Done():
		_ = d.Nack(false, true)
		return
	case <-time.After(s.options.retryBackoff * time.Duration(attempt)):
	}

	retry := republishing(d)
	retry.Headers[attemptHeader] = int32(attempt + 1)
	if err := pub.PublishWithContext(ctx, "", s.queue, false, false, retry); err != nil {
		logger.Error("requeue failed, returning to broker", slog.Any("error", err))
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

func (s *RabbitMQSubscriber) deadLetter(ctx context.Context, pub amqpPublisher, d amqp.Delivery, reason string) {
	msg := republishing(d)
	msg.Headers[deathReasonHeader] = reason
	msg.Headers[originalKeyHeader] = d.RoutingKey

	if err := pub.PublishWithContext(ctx, "", s.DeadLetterQueue(), false, false, msg); err != nil {
		s.logger.Error("dead-letter publish failed, returning to broker", slog.Any("error", err))
		_ = d.Nack(false, true)
		return
	}

	s.logger.Warn("message dead-lettered",
		slog.String("message_id", d.MessageId),
		slog.String("reason", reason),
	)
	_ = d.Ack(false)
}

// retryable reports whether redelivering can change the outcome. Payloads that
// do not decode and input the handler rejects fail the same way every time.
func retryable(err error) bool {
	return !errors.Is(err, events.ErrInvalidPayload) && !errors.Is(err, models.ErrInvalidInput)
}

func mergeBindings(current, extra []string) []string {
	seen := make(map[string]bool, len(current)+len(extra))
	merged := make([]string, 0, len(current)+len(extra))
	for _, key := range append(append([]string{}, current...), extra...) {
		if !seen[key] {
			seen[key] = true
			merged = append(merged, key)
		}
	}
	return merged
}

func republishing(d amqp.Delivery) amqp.Publishing {
	headers := amqp.Table{}
	for k, v := range d.Headers {
		headers[k] = v
	}
	return amqp.Publishing{
		ContentType:   d.ContentType,
		DeliveryMode:  amqp.Persistent,
		MessageId:     d.MessageId,
		CorrelationId: d.CorrelationId,
		Type:          d.Type,
		Timestamp:     d.Timestamp,
		Headers:       headers,
		Body:          d.Body,
	}
}

// attemptOf reads the delivery attempt header; messages without it are on
// their first attempt. A broker redelivery does not increment it.
func attemptOf(headers amqp.Table) int {
	switch v := headers[attemptHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case int16:
		return int(v)
	case int8:
		return int(v)
	default:
		return 1
	}
}
