package infrastructure

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/shared/events"
)

// Supported message channel drivers
const (
	DriverRabbitMQ = "rabbitmq"
	DriverAWS      = "aws"
)

// ChannelConfig selects and tunes the message channel of one service
type ChannelConfig struct {
	Driver         string
	URL            string
	Exchange       string
	Queue          string
	ReconnectDelay time.Duration
	MaxAttempts    int
	RetryBackoff   time.Duration
	Prefetch       int
	ConfirmPublish bool
	AWS            AWSChannelConfig
}

type closer interface {
	Close() error
}

// Channel bundles the publisher and subscriber of one service
type Channel struct {
	Publisher  events.Publisher
	Subscriber events.Subscriber
	closers    []closer
}

// NewChannel connects the configured driver. The RabbitMQ queue is bound to the
// event types of the handler passed to Subscribe; with the AWS driver they are
// SNS subscription filters managed outside the service.
func NewChannel(ctx context.Context, cfg ChannelConfig, logger *slog.Logger) (*Channel, error) {
	switch cfg.Driver {
	case DriverRabbitMQ, "":
		conn := NewRabbitMQConnection(cfg.URL, cfg.ReconnectDelay, logger)
		conn.Start(ctx)

		publisher := NewRabbitMQPublisher(conn, cfg.Exchange, cfg.ConfirmPublish, logger)
		subscriber := NewRabbitMQSubscriber(conn, cfg.Exchange, cfg.Queue, nil, logger,
			WithPrefetch(cfg.Prefetch),
			WithMaxAttempts(cfg.MaxAttempts),
			WithRetryBackoff(cfg.RetryBackoff),
		)

		return &Channel{
			Publisher:  publisher,
			Subscriber: subscriber,
			closers:    []closer{publisher, conn},
		}, nil

	case DriverAWS:
		awsCfg := cfg.AWS
		if awsCfg.MaxAttempts == 0 {
			awsCfg.MaxAttempts = int32(cfg.MaxAttempts)
		}

		publisher, err := NewSNSPublisherFromConfig(ctx, awsCfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create SNS publisher")
		}
		subscriber, err := NewSQSSubscriberAdapter(ctx, awsCfg, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create SQS subscriber")
		}

		return &Channel{Publisher: publisher, Subscriber: subscriber}, nil
	}

	return nil, errors.Errorf("unknown message channel driver %q", cfg.Driver)
}

// Close releases the driver's connections
func (c *Channel) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("errors closing message channel: %v", errs)
	}
	return nil
}
