package application

import (
	"context"
	"testing"

	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/payments-service/mocks"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type intentMocks struct {
	payments *mocks.MockPaymentRepository
	methods  *mocks.MockPaymentMethodRepository
	gateway  *mocks.MockPaymentGateway
}

func TestCreatePaymentIntent_Execute(t *testing.T) {
	requestID := models.ID(testRequestID)
	clientID := models.ID(testRequesterID)
	intent := &domain.Intent{ID: "pi_1", Status: "requires_confirmation", ClientSecret: "pi_1_secret"}

	tests := []struct {
		name          string
		command       *CreatePaymentIntentCommand
		setupMocks    func(m intentMocks)
		expectedError error
	}{
		{
			name:    "saved payment method",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, PaymentMethodID: testMethodID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindByID(mock.Anything, models.ID(testMethodID), clientID).Return(autoPayMethod(false), nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.MatchedBy(func(params domain.IntentParams) bool {
					return params.MethodRef == "pm_1" && params.CustomerRef == "cus_1" && params.Amount.Amount == 4999
				})).Return(intent, nil).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.GatewayRef == "pi_1" && p.Status == domain.PaymentStatusPending
				})).Return(nil).Once()
			},
		},
		{
			name:    "gateway customer created on first use",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindCustomerRef(mock.Anything, clientID).Return("", nil).Once()
				m.gateway.EXPECT().CreateCustomer(mock.Anything, clientID).Return("cus_new", nil).Once()
				m.methods.EXPECT().SaveCustomerRef(mock.Anything, clientID, "cus_new").Return(nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.MatchedBy(func(params domain.IntentParams) bool {
					return params.CustomerRef == "cus_new" && params.MethodRef == ""
				})).Return(intent, nil).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "failed payment is retried manually",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusFailed), nil).Once()
				m.methods.EXPECT().FindCustomerRef(mock.Anything, clientID).Return("cus_1", nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return(intent, nil).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusPending &&
						p.ExpectedStatus() == domain.PaymentStatusFailed &&
						p.ErrorMessage == ""
				})).Return(nil).Once()
			},
		},
		{
			name:    "unknown payment",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(nil, nil).Once()
			},
			expectedError: models.ErrNotFound,
		},
		{
			name:    "payment of another client",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, ClientID: testStrangerID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
			},
			expectedError: models.ErrForbidden,
		},
		{
			name:    "already completed",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusCompleted), nil).Once()
			},
			expectedError: domain.ErrPaymentAlreadyCompleted,
		},
		{
			name:    "cancelled",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusCancelled), nil).Once()
			},
			expectedError: domain.ErrPaymentCancelled,
		},
		{
			name:    "saved method of another client",
			command: &CreatePaymentIntentCommand{RequestID: testRequestID, PaymentMethodID: testMethodID, ClientID: testRequesterID},
			setupMocks: func(m intentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindByID(mock.Anything, models.ID(testMethodID), clientID).Return(nil, nil).Once()
			},
			expectedError: domain.ErrPaymentMethodNotFound,
		},
		{
			name:          "invalid request ID",
			command:       &CreatePaymentIntentCommand{RequestID: "nope", ClientID: testRequesterID},
			setupMocks:    func(m intentMocks) {},
			expectedError: models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := intentMocks{
				payments: mocks.NewMockPaymentRepository(t),
				methods:  mocks.NewMockPaymentMethodRepository(t),
				gateway:  mocks.NewMockPaymentGateway(t),
			}
			tt.setupMocks(m)

			response, err := NewCreatePaymentIntent(m.payments, m.methods, m.gateway, telemetry.NopLogger()).
				Execute(context.Background(), tt.command)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pi_1", response.IntentID)
			assert.Equal(t, "pi_1_secret", response.ClientSecret)
			assert.Equal(t, "49.99", response.Amount)
		})
	}
}
