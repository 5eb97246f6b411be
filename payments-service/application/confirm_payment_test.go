package application

import (
	"context"
	"testing"

	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/payments-service/mocks"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withGatewayRef(payment *domain.Payment, ref string) *domain.Payment {
	payment.GatewayRef = ref
	return payment
}

func TestConfirmPayment_Execute(t *testing.T) {
	succeeded := &domain.Intent{ID: "pi_1", Status: domain.IntentStatusSucceeded}

	tests := []struct {
		name           string
		clientID       string
		setupMocks     func(*mocks.MockPaymentRepository, *mocks.MockPaymentGateway, *mocks.MockPublisher)
		expectedError  error
		expectedStatus string
	}{
		{
			name:     "succeeded intent completes the payment",
			clientID: testRequesterID,
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil).Once()
				repo.EXPECT().FindByGatewayRef(mock.Anything, "pi_1").
					Return(withGatewayRef(storedPayment(t, domain.PaymentStatusPending), "pi_1"), nil).Once()
				repo.EXPECT().Save(mock.Anything, paymentWithStatus(domain.PaymentStatusCompleted)).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, eventOfType(events.PaymentCompletedEvent)).Return(nil).Once()
			},
			expectedStatus: "completed",
		},
		{
			name:     "intent not succeeded",
			clientID: testRequesterID,
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
					Return(&domain.Intent{ID: "pi_1", Status: "requires_payment_method"}, nil).Once()
			},
			expectedError: domain.ErrPaymentNotValidated,
		},
		{
			name:     "intent of no payment",
			clientID: testRequesterID,
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil).Once()
				repo.EXPECT().FindByGatewayRef(mock.Anything, "pi_1").Return(nil, nil).Once()
			},
			expectedError: models.ErrNotFound,
		},
		{
			name:     "payment of another client",
			clientID: testStrangerID,
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil).Once()
				repo.EXPECT().FindByGatewayRef(mock.Anything, "pi_1").Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
			},
			expectedError: models.ErrForbidden,
		},
		{
			name:     "already completed by the webhook",
			clientID: testRequesterID,
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil).Once()
				repo.EXPECT().FindByGatewayRef(mock.Anything, "pi_1").Return(storedPayment(t, domain.PaymentStatusCompleted), nil).Once()
			},
			expectedStatus: "completed",
		},
		{
			name:     "webhook completes it between read and write",
			clientID: testRequesterID,
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				pending := storedPayment(t, domain.PaymentStatusPending)
				gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeeded, nil).Once()
				repo.EXPECT().FindByGatewayRef(mock.Anything, "pi_1").Return(pending, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrConcurrentUpdate).Once()
				repo.EXPECT().FindByID(mock.Anything, pending.ID).Return(storedPayment(t, domain.PaymentStatusCompleted), nil).Once()
			},
			expectedStatus: "completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPaymentRepository(t)
			gateway := mocks.NewMockPaymentGateway(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(repo, gateway, publisher)

			response, err := NewConfirmPayment(repo, gateway, publisher, telemetry.NopLogger()).
				Execute(context.Background(), &ConfirmPaymentCommand{IntentID: "pi_1", ClientID: tt.clientID})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, response.Status)
		})
	}
}

func TestConfirmPayment_MissingIntent(t *testing.T) {
	_, err := NewConfirmPayment(mocks.NewMockPaymentRepository(t), mocks.NewMockPaymentGateway(t), mocks.NewMockPublisher(t), telemetry.NopLogger()).
		Execute(context.Background(), &ConfirmPaymentCommand{ClientID: testRequesterID})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
