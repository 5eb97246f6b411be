package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// ConfirmPaymentCommand reports an intent the client confirmed
type ConfirmPaymentCommand struct {
	IntentID string `json:"payment_intent_id"`
	ClientID string `json:"-"`
}

// ConfirmPayment completes a payment once the gateway reports its intent succeeded
type ConfirmPayment struct {
	paymentRepository domain.PaymentRepository
	gateway           domain.PaymentGateway
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewConfirmPayment creates a new ConfirmPayment use case
func NewConfirmPayment(
	paymentRepository domain.PaymentRepository,
	gateway domain.PaymentGateway,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *ConfirmPayment {
	return &ConfirmPayment{
		paymentRepository: paymentRepository,
		gateway:           gateway,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute never trusts the client's word: the intent status comes from the
// gateway. A payment the webhook completed first is returned unchanged.
func (uc *ConfirmPayment) Execute(ctx context.Context, cmd *ConfirmPaymentCommand) (*PaymentResponse, error) {
	clientID, err := parseID(cmd.ClientID, "client ID")
	if err != nil {
		return nil, err
	}
	if cmd.IntentID == "" {
		return nil, models.NewInvalidInput("payment intent ID is required")
	}

	intent, err := uc.gateway.RetrieveIntent(ctx, cmd.IntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != domain.IntentStatusSucceeded {
		return nil, domain.ErrPaymentNotValidated
	}

	payment, err := uc.paymentRepository.FindByGatewayRef(ctx, intent.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment")
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.RequesterID != clientID {
		return nil, domain.ErrNotPaymentOwner
	}
	if payment.Status == domain.PaymentStatusCompleted {
		return newPaymentResponse(payment), nil
	}

	if err := payment.Complete(intent.ID); err != nil {
		return nil, err
	}

	changed, err := savePayment(ctx, uc.paymentRepository, uc.logger, payment)
	if err != nil {
		return nil, err
	}
	if !changed {
		current, err := uc.paymentRepository.FindByID(ctx, payment.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload payment")
		}
		if current == nil {
			return nil, domain.ErrPaymentNotFound
		}
		return newPaymentResponse(current), nil
	}

	uc.logger.InfoContext(ctx, "payment confirmed",
		slog.String("payment_id", payment.ID.String()),
		slog.String("intent_id", intent.ID),
	)
	response := newPaymentResponse(payment)
	publishRecorded(ctx, uc.eventPublisher, uc.logger, payment)

	return response, nil
}
