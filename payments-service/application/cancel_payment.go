package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// CancelPaymentCommand identifies the cancelled request
type CancelPaymentCommand struct {
	RequestID models.ID
}

// CancelPayment voids the pending payment of a cancelled request
type CancelPayment struct {
	paymentRepository domain.PaymentRepository
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewCancelPayment creates a new CancelPayment use case
func NewCancelPayment(paymentRepository domain.PaymentRepository, eventPublisher events.Publisher, logger *slog.Logger) *CancelPayment {
	return &CancelPayment{
		paymentRepository: paymentRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute cancels only a pending payment; completed and failed ones are kept
func (uc *CancelPayment) Execute(ctx context.Context, cmd *CancelPaymentCommand) error {
	payment, err := uc.paymentRepository.FindByRequestID(ctx, cmd.RequestID)
	if err != nil {
		return errors.Wrap(err, "failed to load payment")
	}
	if payment == nil {
		uc.logger.WarnContext(ctx, "cancellation for request without payment",
			slog.String("request_id", cmd.RequestID.String()),
		)
		return nil
	}

	if payment.Status != domain.PaymentStatusPending {
		return nil
	}
	if err := payment.Cancel(); err != nil {
		return err
	}

	changed, err := savePayment(ctx, uc.paymentRepository, uc.logger, payment)
	if err != nil || !changed {
		return err
	}

	uc.logger.InfoContext(ctx, "payment cancelled",
		slog.String("payment_id", payment.ID.String()),
		slog.String("request_id", payment.RequestID.String()),
	)
	publishRecorded(ctx, uc.eventPublisher, uc.logger, payment)
	return nil
}
