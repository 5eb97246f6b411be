package infrastructure

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/shared/events"
)

// AWSChannelConfig selects the SNS topic and SQS queues of one service.
// Endpoints are only set against LocalStack.
type AWSChannelConfig struct {
	Region             string
	EndpointSNS        string
	EndpointSQS        string
	TopicArn           string
	QueueURL           string
	DeadLetterQueueURL string
	MaxAttempts        int32
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load AWS config")
	}
	return cfg, nil
}

// NewSNSPublisherFromConfig builds an SNS publisher from the default credential chain
func NewSNSPublisherFromConfig(ctx context.Context, channel AWSChannelConfig) (*SNSEventPublisher, error) {
	cfg, err := loadAWSConfig(ctx, channel.Region)
	if err != nil {
		return nil, err
	}

	client := sns.NewFromConfig(cfg, func(o *sns.Options) {
		if channel.EndpointSNS != "" {
			o.BaseEndpoint = aws.String(channel.EndpointSNS)
		}
	})
	return NewSNSEventPublisher(client, channel.TopicArn), nil
}

// SQSSubscriberAdapter runs an SQSEventSubscriber for the lifetime of Subscribe
type SQSSubscriberAdapter struct {
	client  *sqs.Client
	channel AWSChannelConfig
	logger  *slog.Logger
}

var _ events.Subscriber = (*SQSSubscriberAdapter)(nil)

// NewSQSSubscriberAdapter creates a new SQS subscriber adapter
func NewSQSSubscriberAdapter(ctx context.Context, channel AWSChannelConfig, logger *slog.Logger) (*SQSSubscriberAdapter, error) {
	cfg, err := loadAWSConfig(ctx, channel.Region)
	if err != nil {
		return nil, err
	}

	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if channel.EndpointSQS != "" {
			o.BaseEndpoint = aws.String(channel.EndpointSQS)
		}
	})

	return &SQSSubscriberAdapter{
		client:  client,
		channel: channel,
		logger:  logger,
	}, nil
}

// Subscribe consumes the configured queue until ctx is done
func (a *SQSSubscriberAdapter) Subscribe(ctx context.Context, handler events.EventHandler) error {
	subscriber := NewSQSEventSubscriber(
		a.client,
		a.channel.QueueURL,
		a.channel.DeadLetterQueueURL,
		handler,
		a.logger,
		WithSQSMaxAttempts(a.channel.MaxAttempts),
	)

	if err := subscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}

	<-ctx.Done()
	subscriber.Stop()
	return nil
}
