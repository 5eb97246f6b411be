package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/payments-service/mocks"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testRequestID   = "550e8400-e29b-41d4-a716-446655440001"
	testRequesterID = "550e8400-e29b-41d4-a716-446655440010"
	testStrangerID  = "550e8400-e29b-41d4-a716-446655440030"
	testMethodID    = "550e8400-e29b-41d4-a716-446655440040"
)

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(evt *events.Event) bool {
		return evt.Type == eventType
	})
}

func paymentWithStatus(status domain.PaymentStatus) interface{} {
	return mock.MatchedBy(func(payment *domain.Payment) bool {
		return payment.Status == status
	})
}

// storedPayment returns a payment as loaded from the store, holding status
func storedPayment(t *testing.T, status domain.PaymentStatus) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPendingPayment(models.ID(testRequestID), models.ID(testRequesterID), decimal.RequireFromString("49.99"), "EUR")
	require.NoError(t, err)

	switch status {
	case domain.PaymentStatusCompleted:
		require.NoError(t, payment.Complete("pi_done"))
	case domain.PaymentStatusFailed:
		require.NoError(t, payment.Fail("pi_failed", "Your card was declined."))
	case domain.PaymentStatusCancelled:
		require.NoError(t, payment.Cancel())
	}
	payment.ClearEvents()
	return payment
}

func registerCommand() *RegisterPaymentCommand {
	return &RegisterPaymentCommand{
		RequestID:   models.ID(testRequestID),
		RequesterID: models.ID(testRequesterID),
		Amount:      decimal.RequireFromString("49.99"),
		Currency:    "EUR",
	}
}

func TestRegisterPayment_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *RegisterPaymentCommand
		setupMocks    func(*mocks.MockPaymentRepository)
		expectedError error
	}{
		{
			name:    "first registration inserts a pending payment",
			command: registerCommand(),
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Register(mock.Anything, mock.MatchedBy(func(payment *domain.Payment) bool {
					return payment.Status == domain.PaymentStatusPending && payment.Currency == "eur"
				})).Return(true, nil).Once()
			},
		},
		{
			name:    "redelivery leaves a pending payment alone",
			command: registerCommand(),
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Register(mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.EXPECT().FindByRequestID(mock.Anything, models.ID(testRequestID)).
					Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
			},
		},
		{
			name:    "cancelled payment is reactivated",
			command: registerCommand(),
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Register(mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.EXPECT().FindByRequestID(mock.Anything, models.ID(testRequestID)).
					Return(storedPayment(t, domain.PaymentStatusCancelled), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(payment *domain.Payment) bool {
					return payment.Status == domain.PaymentStatusPending && payment.ExpectedStatus() == domain.PaymentStatusCancelled
				})).Return(nil).Once()
			},
		},
		{
			name:    "reactivation lost to a concurrent delivery",
			command: registerCommand(),
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Register(mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.EXPECT().FindByRequestID(mock.Anything, models.ID(testRequestID)).
					Return(storedPayment(t, domain.PaymentStatusCancelled), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrConcurrentUpdate).Once()
			},
		},
		{
			name: "non-positive amount",
			command: &RegisterPaymentCommand{
				RequestID:   models.ID(testRequestID),
				RequesterID: models.ID(testRequesterID),
				Amount:      decimal.Zero,
			},
			setupMocks:    func(repo *mocks.MockPaymentRepository) {},
			expectedError: models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPaymentRepository(t)
			tt.setupMocks(repo)

			err := NewRegisterPayment(repo, telemetry.NopLogger()).Execute(context.Background(), tt.command)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegisterPayment_StorageFailure(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	repo.EXPECT().Register(mock.Anything, mock.Anything).Return(false, errors.New("connection reset")).Once()

	err := NewRegisterPayment(repo, telemetry.NopLogger()).Execute(context.Background(), registerCommand())
	assert.ErrorContains(t, err, "failed to register payment")
}
