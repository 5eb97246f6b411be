package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// ProcessAutomaticPayment charges the requester's default auto-pay method
// once a request is completed.
type ProcessAutomaticPayment struct {
	register                *RegisterPayment
	paymentRepository       domain.PaymentRepository
	paymentMethodRepository domain.PaymentMethodRepository
	gateway                 domain.PaymentGateway
	eventPublisher          events.Publisher
	logger                  *slog.Logger
}

// NewProcessAutomaticPayment creates a new ProcessAutomaticPayment use case
func NewProcessAutomaticPayment(
	paymentRepository domain.PaymentRepository,
	paymentMethodRepository domain.PaymentMethodRepository,
	gateway domain.PaymentGateway,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *ProcessAutomaticPayment {
	return &ProcessAutomaticPayment{
		register:                NewRegisterPayment(paymentRepository, logger),
		paymentRepository:       paymentRepository,
		paymentMethodRepository: paymentMethodRepository,
		gateway:                 gateway,
		eventPublisher:          eventPublisher,
		logger:                  logger,
	}
}

// Execute makes one off-session charge. A decline fails the payment with the
// gateway's message and is not retried; transport errors are returned so the
// channel redelivers, and the idempotency key keeps the retry from charging twice.
func (uc *ProcessAutomaticPayment) Execute(ctx context.Context, cmd *RegisterPaymentCommand) error {
	payment, err := uc.paymentRepository.FindByRequestID(ctx, cmd.RequestID)
	if err != nil {
		return errors.Wrap(err, "failed to load payment")
	}
	if payment == nil {
		// REQUEST_CREATED not consumed yet
		if payment, err = uc.register.register(ctx, cmd); err != nil {
			return err
		}
	}

	if payment.Status != domain.PaymentStatusPending {
		uc.logger.InfoContext(ctx, "skipping automatic payment",
			slog.String("payment_id", payment.ID.String()),
			slog.String("status", string(payment.Status)),
		)
		return nil
	}

	method, err := uc.paymentMethodRepository.FindDefault(ctx, payment.RequesterID)
	if err != nil {
		return errors.Wrap(err, "failed to load default payment method")
	}
	if method == nil || !method.CanAutoPay() {
		uc.logger.InfoContext(ctx, "no auto-pay method, payment stays pending",
			slog.String("payment_id", payment.ID.String()),
			slog.String("requester_id", payment.RequesterID.String()),
		)
		return nil
	}

	intent, err := uc.gateway.ChargeOffSession(ctx, domain.IntentParams{
		Amount:         payment.Money(),
		CustomerRef:    method.GatewayCustomerRef,
		MethodRef:      method.GatewayMethodRef,
		Description:    "Service request " + payment.RequestID.String(),
		IdempotencyKey: payment.IdempotencyKey(),
		Metadata: map[string]string{
			"payment_id": payment.ID.String(),
			"request_id": payment.RequestID.String(),
		},
	})

	switch {
	case errors.Is(err, models.ErrGatewayDeclined):
		_, message, _ := models.KindOf(err)
		if err := payment.Fail("", message); err != nil {
			return err
		}
		uc.logger.WarnContext(ctx, "automatic payment declined",
			slog.String("payment_id", payment.ID.String()),
			slog.String("error", message),
		)
	case err != nil:
		return errors.Wrap(err, "automatic payment not processed")
	case intent.Status == domain.IntentStatusSucceeded:
		if err := payment.Complete(intent.ID); err != nil {
			return err
		}
	default:
		// settled later by the gateway webhook
		if err := payment.AttachIntent(intent.ID); err != nil {
			return err
		}
		uc.logger.InfoContext(ctx, "automatic payment awaiting gateway confirmation",
			slog.String("payment_id", payment.ID.String()),
			slog.String("intent_id", intent.ID),
			slog.String("intent_status", intent.Status),
		)
	}

	changed, err := savePayment(ctx, uc.paymentRepository, uc.logger, payment)
	if err != nil || !changed {
		return err
	}

	publishRecorded(ctx, uc.eventPublisher, uc.logger, payment)
	return nil
}
