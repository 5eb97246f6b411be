package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/shared/events"
)

const (
	SQSMessageIDKey     = "sqs_message_id"
	receiveCountAttr    = "ApproximateReceiveCount"
	deadLetterReasonKey = "dead_letter_reason"
)

// sqsAPI is the subset of *sqs.Client the subscriber uses
type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(ctx context.Context, params *sqs.ChangeMessageVisibilityInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type sqsMessage struct {
	Message types.Message
	Event   *events.Event
	Err     error
}

// SQSEventSubscriber implements event subscription using AWS SQS
type SQSEventSubscriber struct {
	mux              sync.RWMutex
	inboundMessages  chan *sqsMessage
	outboundMessages chan *sqsMessage
	cancel           context.CancelFunc
	running          atomic.Bool
	options          *sqsSubscriberOptions

	client      sqsAPI
	queueURL    string
	deadLetters string
	handler     events.EventHandler
	logger      *slog.Logger
}

type sqsSubscriberOptions struct {
	workers                    int32
	readers                    int32
	cleaners                   int32
	maxNumberOfMessages        int32
	waitTimeSeconds            int32
	visibilityTimeout          int32
	sleepTimeAfterEmptyReceive time.Duration
	sleepTimeAfterError        time.Duration
	maxAttempts                int32
	receiveCountRange          int32
	visibilityTimeoutOffset    int32
	maxVisibilityTimeout       int32
}

type SQSSubscriberOption func(*sqsSubscriberOptions)

func WithWorkers(workers int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

func WithReaders(readers int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.readers = readers
	}
}

func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

// WithSQSMaxAttempts caps receives before a message is moved to the dead-letter queue.
func WithSQSMaxAttempts(attempts int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		if attempts > 0 {
			o.maxAttempts = attempts
		}
	}
}

// NewSQSEventSubscriber creates a new SQS event subscriber. deadLetterURL may be
// empty, in which case failing messages keep cycling with growing visibility.
func NewSQSEventSubscriber(
	client sqsAPI,
	queueURL string,
	deadLetterURL string,
	handler events.EventHandler,
	logger *slog.Logger,
	opts ...SQSSubscriberOption,
) *SQSEventSubscriber {
	options := &sqsSubscriberOptions{
		workers:                    1,
		readers:                    1,
		cleaners:                   1,
		maxNumberOfMessages:        5,
		waitTimeSeconds:            15,
		visibilityTimeout:          30,
		sleepTimeAfterEmptyReceive: 2 * time.Second,
		sleepTimeAfterError:        defaultReconnectDelay,
		maxAttempts:                defaultMaxAttempts,
		receiveCountRange:          1,
		visibilityTimeoutOffset:    30,
		maxVisibilityTimeout:       900,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &SQSEventSubscriber{
		client:      client,
		queueURL:    queueURL,
		deadLetters: deadLetterURL,
		handler:     handler,
		logger:      logger.With(slog.String("queue", queueURL)),
		options:     options,
	}
}

// Start starts readers, workers and cleaners
func (s *SQSEventSubscriber) Start(ctx context.Context) error {
	if s.running.Load() {
		return nil
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.inboundMessages = make(chan *sqsMessage, s.options.maxNumberOfMessages)
	s.outboundMessages = make(chan *sqsMessage, s.options.maxNumberOfMessages)
	s.cancel = cancel

	for i := 0; i < int(s.options.workers); i++ {
		go s.startWorker(ctx)
	}

	for i := 0; i < int(s.options.readers); i++ {
		go s.startReader(ctx)
	}

	for i := 0; i < int(s.options.cleaners); i++ {
		go s.startCleaner(ctx)
	}

	s.running.Store(true)
	return nil
}

// Stop cancels every goroutine; in-flight messages become visible again on their own.
func (s *SQSEventSubscriber) Stop() {
	if !s.running.Load() {
		return
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.running.Store(false)
}

func (s *SQSEventSubscriber) startWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.inboundMessages:
			s.handle(ctx, message)
		}
	}
}

func (s *SQSEventSubscriber) startReader(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := s.read(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("sqs receive failed", slog.Any("error", err))
			sleep(ctx, s.options.sleepTimeAfterError)
		}
	}
}

func (s *SQSEventSubscriber) startCleaner(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.outboundMessages:
			if err := s.clean(ctx, message); err != nil {
				s.logger.Error("sqs clean failed", slog.Any("error", err))
			}
		}
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) error {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: s.options.maxNumberOfMessages,
		WaitTimeSeconds:     s.options.waitTimeSeconds,
		VisibilityTimeout:   s.options.visibilityTimeout,
		MessageSystemAttributeNames: []types.MessageSystemAttributeName{
			types.MessageSystemAttributeNameApproximateReceiveCount,
		},
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to receive message from SQS")
	}

	if len(output.Messages) == 0 {
		sleep(ctx, s.options.sleepTimeAfterEmptyReceive)
		return nil
	}

	for _, message := range output.Messages {
		event, err := decodeSQSBody(aws.ToString(message.Body))
		if err != nil {
			if dlErr := s.deadLetter(ctx, message, "malformed envelope: "+err.Error()); dlErr != nil {
				s.logger.Error("dropping malformed message failed", slog.Any("error", dlErr))
			}
			continue
		}

		event.WithMetadata(SQSMessageIDKey, aws.ToString(message.MessageId)).
			WithMetadata(events.DeliveryAttemptKey, strconv.Itoa(int(receiveCountOf(message))))

		select {
		case s.inboundMessages <- &sqsMessage{Message: message, Event: event}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func (s *SQSEventSubscriber) handle(ctx context.Context, message *sqsMessage) {
	message.Err = s.handler.Handle(ctx, message.Event)

	select {
	case s.outboundMessages <- message:
	case <-ctx.Done():
	}
}

func (s *SQSEventSubscriber) clean(ctx context.Context, message *sqsMessage) error {
	if message.Err == nil {
		return s.delete(ctx, message.Message)
	}

	receiveCount := receiveCountOf(message.Message)
	if s.deadLetters != "" && (receiveCount >= s.options.maxAttempts || !retryable(message.Err)) {
		s.logger.Error("dead-lettering",
			slog.String("event_type", message.Event.Type),
			slog.Any("error", message.Err),
		)
		return s.deadLetter(ctx, message.Message, message.Err.Error())
	}

	visibilityTimeout := s.options.visibilityTimeout
	visibilityTimeout += (receiveCount / s.options.receiveCountRange) * s.options.visibilityTimeoutOffset
	if visibilityTimeout > s.options.maxVisibilityTimeout {
		visibilityTimeout = s.options.maxVisibilityTimeout
	}

	_, err := s.client.ChangeMessageVisibility(ctx, &sqs.ChangeMessageVisibilityInput{
		QueueUrl:          aws.String(s.queueURL),
		ReceiptHandle:     message.Message.ReceiptHandle,
		VisibilityTimeout: visibilityTimeout,
	})
	if err != nil {
		return errors.Wrap(err, "failed to extend visibility timeout")
	}
	return nil
}

func (s *SQSEventSubscriber) deadLetter(ctx context.Context, message types.Message, reason string) error {
	if s.deadLetters == "" {
		return nil
	}

	_, err := s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.deadLetters),
		MessageBody: message.Body,
		MessageAttributes: map[string]types.MessageAttributeValue{
			deadLetterReasonKey: {
				DataType:    aws.String("String"),
				StringValue: aws.String(reason),
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to send message to dead-letter queue")
	}

	return s.delete(ctx, message)
}

func (s *SQSEventSubscriber) delete(ctx context.Context, message types.Message) error {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete message from SQS")
	}
	return nil
}

// decodeSQSBody accepts both raw deliveries and SNS notification wrappers.
func decodeSQSBody(body string) (*events.Event, error) {
	var notification struct {
		Type    string `json:"Type"`
		Message string `json:"Message"`
	}
	if err := json.Unmarshal([]byte(body), &notification); err == nil && notification.Type == "Notification" {
		body = notification.Message
	}
	return events.FromJSON([]byte(body))
}

func receiveCountOf(message types.Message) int32 {
	count, err := strconv.Atoi(message.Attributes[receiveCountAttr])
	if err != nil || count < 1 {
		return 1
	}
	return int32(count)
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
