package infrastructure

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/servicehub/booking-system/shared/events"
)

var _ events.Publisher = (*RabbitMQPublisher)(nil)

// RabbitMQPublisher publishes events as persistent messages on a durable topic
// exchange, using the event type as routing key.
type RabbitMQPublisher struct {
	conn     *RabbitMQConnection
	exchange string
	confirm  bool
	logger   *slog.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

// NewRabbitMQPublisher creates a publisher. With confirm set, Publish waits for
// the broker to acknowledge persistence before returning.
func NewRabbitMQPublisher(conn *RabbitMQConnection, exchange string, confirm bool, logger *slog.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		conn:     conn,
		exchange: exchange,
		confirm:  confirm,
		logger:   logger,
	}
}

func (p *RabbitMQPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := declareExchange(ch, p.exchange); err != nil {
		_ = ch.Close()
		return nil, err
	}

	if p.confirm {
		if err := ch.Confirm(false); err != nil {
			_ = ch.Close()
			return nil, errors.Wrap(err, "failed to enable publisher confirms")
		}
	}

	p.ch = ch
	return ch, nil
}

// Publish sends every event; the first failure aborts the rest.
func (p *RabbitMQPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return errors.Wrap(err, "failed to publish events")
	}

	for _, event := range evts {
		msg, err := toPublishing(event)
		if err != nil {
			return err
		}

		if !p.confirm {
			if err := ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
				return errors.Wrapf(err, "failed to publish %s", event.Type)
			}
			continue
		}

		confirmation, err := ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, event.Type, false, false, msg)
		if err != nil {
			return errors.Wrapf(err, "failed to publish %s", event.Type)
		}
		acked, err := confirmation.WaitContext(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to confirm %s", event.Type)
		}
		if !acked {
			return errors.Errorf("broker rejected %s", event.Type)
		}
	}

	p.logger.DebugContext(ctx, "events published", slog.Int("count", len(evts)))
	return nil
}

// Close closes the publishing channel
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}
	return p.ch.Close()
}

func toPublishing(event *events.Event) (amqp.Publishing, error) {
	body, err := event.ToJSON()
	if err != nil {
		return amqp.Publishing{}, errors.Wrapf(err, "failed to marshal %s", event.Type)
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.ID.String(),
		CorrelationId: event.CorrelationID.String(),
		Type:          event.Type,
		Timestamp:     event.Timestamp,
		Headers:       amqp.Table{attemptHeader: int32(1)},
		Body:          body,
	}, nil
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}
	return nil
}
