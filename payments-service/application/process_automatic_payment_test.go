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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func autoPayMethod(autoPay bool) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:                 models.ID(testMethodID),
		ClientID:           models.ID(testRequesterID),
		Type:               domain.PaymentMethodTypeCard,
		GatewayMethodRef:   "pm_1",
		GatewayCustomerRef: "cus_1",
		IsDefault:          true,
		AutoPay:            autoPay,
	}
}

type automaticPaymentMocks struct {
	payments  *mocks.MockPaymentRepository
	methods   *mocks.MockPaymentMethodRepository
	gateway   *mocks.MockPaymentGateway
	publisher *mocks.MockPublisher
}

func TestProcessAutomaticPayment_Execute(t *testing.T) {
	requestID := models.ID(testRequestID)
	requesterID := models.ID(testRequesterID)

	chargeOf := func(payment *domain.Payment) interface{} {
		return mock.MatchedBy(func(params domain.IntentParams) bool {
			return params.Amount.Amount == 4999 &&
				params.Amount.Currency == "eur" &&
				params.MethodRef == "pm_1" &&
				params.CustomerRef == "cus_1" &&
				params.IdempotencyKey == payment.IdempotencyKey()
		})
	}

	tests := []struct {
		name          string
		setupMocks    func(m automaticPaymentMocks)
		expectedError string
	}{
		{
			name: "charge succeeds",
			setupMocks: func(m automaticPaymentMocks) {
				payment := storedPayment(t, domain.PaymentStatusPending)
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(payment, nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(autoPayMethod(true), nil).Once()
				m.gateway.EXPECT().ChargeOffSession(mock.Anything, chargeOf(payment)).
					Return(&domain.Intent{ID: "pi_1", Status: domain.IntentStatusSucceeded}, nil).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusCompleted && p.GatewayRef == "pi_1" && p.ExpectedStatus() == domain.PaymentStatusPending
				})).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, eventOfType(events.PaymentCompletedEvent)).Return(nil).Once()
			},
		},
		{
			name: "decline fails the payment with the gateway message",
			setupMocks: func(m automaticPaymentMocks) {
				payment := storedPayment(t, domain.PaymentStatusPending)
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(payment, nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(autoPayMethod(true), nil).Once()
				m.gateway.EXPECT().ChargeOffSession(mock.Anything, mock.Anything).
					Return(nil, models.NewGatewayDeclined("Your card was declined.")).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusFailed && p.ErrorMessage == "Your card was declined."
				})).Return(nil).Once()
				m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					var data events.PaymentFailedData
					return evt.Type == events.PaymentFailedEvent &&
						evt.UnmarshalPayload(&data) == nil &&
						data.Error == "Your card was declined."
				})).Return(nil).Once()
			},
		},
		{
			name: "gateway timeout is returned for redelivery",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(autoPayMethod(true), nil).Once()
				m.gateway.EXPECT().ChargeOffSession(mock.Anything, mock.Anything).
					Return(nil, errors.New("context deadline exceeded")).Once()
			},
			expectedError: "automatic payment not processed",
		},
		{
			name: "intent still processing keeps the payment pending",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(autoPayMethod(true), nil).Once()
				m.gateway.EXPECT().ChargeOffSession(mock.Anything, mock.Anything).
					Return(&domain.Intent{ID: "pi_2", Status: "processing"}, nil).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentStatusPending && p.GatewayRef == "pi_2"
				})).Return(nil).Once()
			},
		},
		{
			name: "default method without auto-pay",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(autoPayMethod(false), nil).Once()
			},
		},
		{
			name: "no saved method",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(nil, nil).Once()
			},
		},
		{
			name: "redelivery after completion",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusCompleted), nil).Once()
			},
		},
		{
			name: "failed payment is not retried automatically",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusFailed), nil).Once()
			},
		},
		{
			name: "completion seen before creation registers the payment",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(nil, nil).Once()
				m.payments.EXPECT().Register(mock.Anything, paymentWithStatus(domain.PaymentStatusPending)).Return(true, nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(nil, nil).Once()
			},
		},
		{
			name: "concurrent delivery already settled the payment",
			setupMocks: func(m automaticPaymentMocks) {
				m.payments.EXPECT().FindByRequestID(mock.Anything, requestID).Return(storedPayment(t, domain.PaymentStatusPending), nil).Once()
				m.methods.EXPECT().FindDefault(mock.Anything, requesterID).Return(autoPayMethod(true), nil).Once()
				m.gateway.EXPECT().ChargeOffSession(mock.Anything, mock.Anything).
					Return(&domain.Intent{ID: "pi_1", Status: domain.IntentStatusSucceeded}, nil).Once()
				m.payments.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrConcurrentUpdate).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := automaticPaymentMocks{
				payments:  mocks.NewMockPaymentRepository(t),
				methods:   mocks.NewMockPaymentMethodRepository(t),
				gateway:   mocks.NewMockPaymentGateway(t),
				publisher: mocks.NewMockPublisher(t),
			}
			tt.setupMocks(m)

			useCase := NewProcessAutomaticPayment(m.payments, m.methods, m.gateway, m.publisher, telemetry.NopLogger())
			err := useCase.Execute(context.Background(), registerCommand())

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
