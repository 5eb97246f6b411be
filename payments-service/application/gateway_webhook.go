package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// HandleGatewayWebhook verifies a gateway callback and hands its outcome to
// the channel, so reconciliation runs with the same retries as any event.
type HandleGatewayWebhook struct {
	gateway        domain.PaymentGateway
	eventPublisher events.Publisher
	logger         *slog.Logger
}

// NewHandleGatewayWebhook creates a new HandleGatewayWebhook use case
func NewHandleGatewayWebhook(gateway domain.PaymentGateway, eventPublisher events.Publisher, logger *slog.Logger) *HandleGatewayWebhook {
	return &HandleGatewayWebhook{
		gateway:        gateway,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Execute fails with an invalid input error on a bad signature. A publish
// failure is returned so the gateway retries the callback.
func (uc *HandleGatewayWebhook) Execute(ctx context.Context, payload []byte, signature string) error {
	webhookEvent, err := uc.gateway.ParseWebhook(payload, signature)
	if err != nil {
		uc.logger.WarnContext(ctx, "rejected gateway webhook", slog.Any("error", err))
		return err
	}
	if webhookEvent.Outcome == "" {
		uc.logger.DebugContext(ctx, "ignoring gateway webhook",
			slog.String("gateway_event_id", webhookEvent.ID),
			slog.String("gateway_event_type", webhookEvent.Type),
		)
		return nil
	}

	event := events.NewEvent(models.ID(webhookEvent.IntentID), events.GatewayIntentUpdatedEvent, events.GatewayIntentUpdatedData{
		GatewayEventID: webhookEvent.ID,
		Outcome:        webhookEvent.Outcome,
		IntentID:       webhookEvent.IntentID,
		Error:          webhookEvent.Error,
	})
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish gateway update")
	}
	return nil
}

// ReconcileGatewayUpdateCommand is a verified intent outcome
type ReconcileGatewayUpdateCommand struct {
	IntentID string
	Outcome  string
	Error    string
}

// ReconcileGatewayUpdate applies gateway outcomes to the payment holding the intent
type ReconcileGatewayUpdate struct {
	paymentRepository domain.PaymentRepository
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewReconcileGatewayUpdate creates a new ReconcileGatewayUpdate use case
func NewReconcileGatewayUpdate(paymentRepository domain.PaymentRepository, eventPublisher events.Publisher, logger *slog.Logger) *ReconcileGatewayUpdate {
	return &ReconcileGatewayUpdate{
		paymentRepository: paymentRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute emits only when its conditional update changed the row. Outcomes for
// unknown intents are logged and dropped.
func (uc *ReconcileGatewayUpdate) Execute(ctx context.Context, cmd *ReconcileGatewayUpdateCommand) error {
	payment, err := uc.paymentRepository.FindByGatewayRef(ctx, cmd.IntentID)
	if err != nil {
		return errors.Wrap(err, "failed to load payment")
	}
	if payment == nil {
		uc.logger.WarnContext(ctx, "gateway update for unknown intent",
			slog.String("intent_id", cmd.IntentID),
			slog.String("outcome", cmd.Outcome),
		)
		return nil
	}

	switch cmd.Outcome {
	case events.GatewayIntentSucceeded:
		if payment.Status == domain.PaymentStatusCompleted {
			return nil
		}
		if err := payment.Complete(cmd.IntentID); err != nil {
			return err
		}
	case events.GatewayIntentFailed:
		if payment.Status != domain.PaymentStatusPending {
			return nil
		}
		if err := payment.Fail(cmd.IntentID, cmd.Error); err != nil {
			return err
		}
	default:
		uc.logger.WarnContext(ctx, "unknown gateway outcome",
			slog.String("intent_id", cmd.IntentID),
			slog.String("outcome", cmd.Outcome),
		)
		return nil
	}

	changed, err := savePayment(ctx, uc.paymentRepository, uc.logger, payment)
	if err != nil || !changed {
		return err
	}

	uc.logger.InfoContext(ctx, "payment reconciled",
		slog.String("payment_id", payment.ID.String()),
		slog.String("status", string(payment.Status)),
	)
	publishRecorded(ctx, uc.eventPublisher, uc.logger, payment)
	return nil
}
