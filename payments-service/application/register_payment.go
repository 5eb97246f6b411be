package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
)

// RegisterPaymentCommand carries the request a payment is owed for
type RegisterPaymentCommand struct {
	RequestID   models.ID
	RequesterID models.ID
	Amount      decimal.Decimal
	Currency    string
}

// RegisterPayment creates the pending payment of a new request
type RegisterPayment struct {
	paymentRepository domain.PaymentRepository
	logger            *slog.Logger
}

// NewRegisterPayment creates a new RegisterPayment use case
func NewRegisterPayment(paymentRepository domain.PaymentRepository, logger *slog.Logger) *RegisterPayment {
	return &RegisterPayment{
		paymentRepository: paymentRepository,
		logger:            logger,
	}
}

// Execute is idempotent per request: a second registration changes nothing
// unless the stored payment was cancelled, which is moved back to pending.
func (uc *RegisterPayment) Execute(ctx context.Context, cmd *RegisterPaymentCommand) error {
	_, err := uc.register(ctx, cmd)
	return err
}

// register returns the stored payment of the request, inserting it first
// when it does not exist yet.
func (uc *RegisterPayment) register(ctx context.Context, cmd *RegisterPaymentCommand) (*domain.Payment, error) {
	payment, err := domain.NewPendingPayment(cmd.RequestID, cmd.RequesterID, cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, err
	}

	inserted, err := uc.paymentRepository.Register(ctx, payment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register payment")
	}
	if inserted {
		uc.logger.InfoContext(ctx, "payment registered",
			slog.String("payment_id", payment.ID.String()),
			slog.String("request_id", payment.RequestID.String()),
			slog.String("amount", payment.Amount.String()),
		)
		return payment, nil
	}

	existing, err := uc.paymentRepository.FindByRequestID(ctx, cmd.RequestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment")
	}
	if existing == nil {
		return nil, errors.Errorf("payment of request %s not readable after conflict", cmd.RequestID)
	}

	if existing.Reactivate() {
		if _, err := savePayment(ctx, uc.paymentRepository, uc.logger, existing); err != nil {
			return nil, err
		}
		uc.logger.InfoContext(ctx, "cancelled payment reactivated",
			slog.String("payment_id", existing.ID.String()),
			slog.String("request_id", existing.RequestID.String()),
		)
	}

	return existing, nil
}
