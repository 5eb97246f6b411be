package domain

import (
	"testing"

	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRequestID   = models.ID("550e8400-e29b-41d4-a716-446655440001")
	testRequesterID = models.ID("550e8400-e29b-41d4-a716-446655440010")
)

func newTestPayment(t *testing.T, status PaymentStatus) *Payment {
	t.Helper()
	payment, err := NewPendingPayment(testRequestID, testRequesterID, decimal.RequireFromString("49.99"), "")
	require.NoError(t, err)
	payment.Status = status
	return payment
}

func TestNewPendingPayment(t *testing.T) {
	tests := []struct {
		name          string
		requestID     models.ID
		requesterID   models.ID
		amount        string
		expectedError string
	}{
		{name: "valid", requestID: testRequestID, requesterID: testRequesterID, amount: "10.50"},
		{name: "missing request", requesterID: testRequesterID, amount: "10", expectedError: "request ID is required"},
		{name: "missing requester", requestID: testRequestID, amount: "10", expectedError: "requester ID is required"},
		{name: "zero amount", requestID: testRequestID, requesterID: testRequesterID, amount: "0", expectedError: "amount must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := NewPendingPayment(tt.requestID, tt.requesterID, decimal.RequireFromString(tt.amount), "")

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PaymentStatusPending, payment.Status)
			assert.Equal(t, "eur", payment.Currency)
			assert.Empty(t, payment.Events())
		})
	}
}

func TestPayment_Complete(t *testing.T) {
	payment := newTestPayment(t, PaymentStatusPending)

	require.NoError(t, payment.Complete("pi_123"))
	assert.Equal(t, PaymentStatusCompleted, payment.Status)
	assert.Equal(t, PaymentStatusPending, payment.ExpectedStatus())
	assert.Equal(t, "pi_123", payment.GatewayRef)
	require.NotNil(t, payment.ProcessedAt)

	require.Len(t, payment.Events(), 1)
	event := payment.Events()[0]
	assert.Equal(t, events.PaymentCompletedEvent, event.Type)
	assert.Equal(t, testRequestID, event.CorrelationID)
	data := event.Data.(events.PaymentCompletedData)
	assert.Equal(t, testRequestID, data.RequestID)
	assert.True(t, data.Amount.Equal(decimal.RequireFromString("49.99")))

	assert.ErrorIs(t, payment.Complete("pi_456"), ErrPaymentAlreadyCompleted)
	assert.Len(t, payment.Events(), 1)
}

func TestPayment_Fail(t *testing.T) {
	t.Run("pending payment keeps the gateway message", func(t *testing.T) {
		payment := newTestPayment(t, PaymentStatusPending)

		require.NoError(t, payment.Fail("pi_123", "Your card was declined."))
		assert.Equal(t, PaymentStatusFailed, payment.Status)
		assert.Equal(t, "Your card was declined.", payment.ErrorMessage)
		require.Len(t, payment.Events(), 1)
		assert.Equal(t, events.PaymentFailedEvent, payment.Events()[0].Type)
	})

	t.Run("empty message gets a default", func(t *testing.T) {
		payment := newTestPayment(t, PaymentStatusPending)

		require.NoError(t, payment.Fail("", ""))
		assert.Equal(t, defaultFailureMessage, payment.ErrorMessage)
	})

	for _, status := range []PaymentStatus{PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled} {
		t.Run("rejected from "+string(status), func(t *testing.T) {
			payment := newTestPayment(t, status)

			assert.ErrorIs(t, payment.Fail("pi_123", "declined"), ErrPaymentNotPending)
			assert.Equal(t, status, payment.Status)
			assert.Empty(t, payment.Events())
		})
	}
}

func TestPayment_Cancel(t *testing.T) {
	payment := newTestPayment(t, PaymentStatusPending)
	require.NoError(t, payment.Cancel())
	assert.Equal(t, PaymentStatusCancelled, payment.Status)
	require.Len(t, payment.Events(), 1)
	assert.Equal(t, events.PaymentCancelledEvent, payment.Events()[0].Type)

	completed := newTestPayment(t, PaymentStatusCompleted)
	assert.ErrorIs(t, completed.Cancel(), ErrPaymentNotPending)
	assert.Equal(t, PaymentStatusCompleted, completed.Status)
}

func TestPayment_Reactivate(t *testing.T) {
	cancelled := newTestPayment(t, PaymentStatusCancelled)
	assert.True(t, cancelled.Reactivate())
	assert.Equal(t, PaymentStatusPending, cancelled.Status)
	assert.Equal(t, PaymentStatusCancelled, cancelled.ExpectedStatus())
	assert.Empty(t, cancelled.Events())

	completed := newTestPayment(t, PaymentStatusCompleted)
	assert.False(t, completed.Reactivate())
	assert.Equal(t, PaymentStatusCompleted, completed.Status)
}

func TestPayment_AttachIntent(t *testing.T) {
	tests := []struct {
		status        PaymentStatus
		expectedError error
	}{
		{status: PaymentStatusPending},
		{status: PaymentStatusFailed},
		{status: PaymentStatusCompleted, expectedError: ErrPaymentAlreadyCompleted},
		{status: PaymentStatusCancelled, expectedError: ErrPaymentCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			payment := newTestPayment(t, tt.status)
			payment.ErrorMessage = "previous failure"

			err := payment.AttachIntent("pi_retry")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, tt.status, payment.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PaymentStatusPending, payment.Status)
			assert.Equal(t, tt.status, payment.ExpectedStatus())
			assert.Equal(t, "pi_retry", payment.GatewayRef)
			assert.Empty(t, payment.ErrorMessage)
		})
	}
}

func TestPayment_Money(t *testing.T) {
	tests := []struct {
		amount   string
		expected int64
	}{
		{amount: "49.99", expected: 4999},
		{amount: "10", expected: 1000},
		{amount: "0.015", expected: 2},
		{amount: "19.994", expected: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			payment, err := NewPendingPayment(testRequestID, testRequesterID, decimal.RequireFromString(tt.amount), "EUR")
			require.NoError(t, err)
			assert.Equal(t, models.NewMoney(tt.expected, "eur"), payment.Money())
		})
	}
}

func TestPayment_IdempotencyKeyIsStable(t *testing.T) {
	payment := newTestPayment(t, PaymentStatusPending)
	assert.Equal(t, payment.IdempotencyKey(), payment.IdempotencyKey())
	assert.Contains(t, payment.IdempotencyKey(), payment.ID.String())
}
