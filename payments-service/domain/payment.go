package domain

import (
	"context"
	"strings"
	"time"

	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

const defaultFailureMessage = "payment failed"

var (
	ErrPaymentNotFound         = models.NewNotFound("payment not found")
	ErrPaymentAlreadyCompleted = models.NewPreconditionFailed("payment already completed")
	ErrPaymentCancelled        = models.NewPreconditionFailed("payment was cancelled")
	ErrPaymentNotPending       = models.NewPreconditionFailed("payment is not pending")
	ErrPaymentNotValidated     = models.NewPreconditionFailed("payment not validated")
	ErrNotPaymentOwner         = models.NewForbidden("payment belongs to another client")
	ErrConcurrentUpdate        = models.NewPreconditionFailed("payment was modified concurrently")
)

// Payment is the charge owed for one completed request. There is exactly one
// payment per request.
type Payment struct {
	ID           models.ID
	RequestID    models.ID
	RequesterID  models.ID
	Amount       decimal.Decimal
	Currency     string
	Status       PaymentStatus
	GatewayRef   string
	ErrorMessage string
	ProcessedAt  *time.Time
	Timestamps   models.Timestamps

	previousStatus PaymentStatus

	events []*events.Event
}

// NewPendingPayment registers the payment owed for a request
func NewPendingPayment(requestID, requesterID models.ID, amount decimal.Decimal, currency string) (*Payment, error) {
	if requestID.IsZero() {
		return nil, models.NewInvalidInput("request ID is required")
	}
	if requesterID.IsZero() {
		return nil, models.NewInvalidInput("requester ID is required")
	}
	if !amount.IsPositive() {
		return nil, models.NewInvalidInput("amount must be positive")
	}
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return &Payment{
		ID:          models.GenerateUUID(),
		RequestID:   requestID,
		RequesterID: requesterID,
		Amount:      amount,
		Currency:    strings.ToLower(currency),
		Status:      PaymentStatusPending,
		Timestamps:  models.NewTimestamps(),
	}, nil
}

// Reactivate moves a cancelled payment back to pending. It reports false when
// the payment was not cancelled.
func (p *Payment) Reactivate() bool {
	if p.Status != PaymentStatusCancelled {
		return false
	}
	p.transition(PaymentStatusPending)
	return true
}

// AttachIntent records the gateway intent a client is about to confirm. A
// failed payment goes back to pending so it can be retried.
func (p *Payment) AttachIntent(intentID string) error {
	switch p.Status {
	case PaymentStatusCompleted:
		return ErrPaymentAlreadyCompleted
	case PaymentStatusCancelled:
		return ErrPaymentCancelled
	}
	if intentID == "" {
		return models.NewInvalidInput("intent ID is required")
	}

	p.transition(PaymentStatusPending)
	p.GatewayRef = intentID
	p.ErrorMessage = ""
	return nil
}

// Complete settles the payment with the gateway reference that charged it
func (p *Payment) Complete(gatewayRef string) error {
	if p.Status == PaymentStatusCompleted {
		return ErrPaymentAlreadyCompleted
	}

	p.transition(PaymentStatusCompleted)
	if gatewayRef != "" {
		p.GatewayRef = gatewayRef
	}
	p.ErrorMessage = ""
	processedAt := p.Timestamps.UpdatedAt
	p.ProcessedAt = &processedAt

	p.recordEvent(events.PaymentCompletedEvent, events.PaymentCompletedData{
		RequestID:   p.RequestID,
		PaymentID:   p.ID,
		RequesterID: p.RequesterID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		GatewayRef:  p.GatewayRef,
	})
	return nil
}

// Fail marks a pending payment as failed, keeping the gateway message verbatim
func (p *Payment) Fail(gatewayRef, message string) error {
	if p.Status != PaymentStatusPending {
		return ErrPaymentNotPending
	}
	if message == "" {
		message = defaultFailureMessage
	}

	p.transition(PaymentStatusFailed)
	if gatewayRef != "" {
		p.GatewayRef = gatewayRef
	}
	p.ErrorMessage = message

	p.recordEvent(events.PaymentFailedEvent, events.PaymentFailedData{
		RequestID:   p.RequestID,
		PaymentID:   p.ID,
		RequesterID: p.RequesterID,
		GatewayRef:  p.GatewayRef,
		Error:       message,
	})
	return nil
}

// Cancel voids a pending payment; completed payments are never touched
func (p *Payment) Cancel() error {
	if p.Status != PaymentStatusPending {
		return ErrPaymentNotPending
	}

	p.transition(PaymentStatusCancelled)

	p.recordEvent(events.PaymentCancelledEvent, events.PaymentCancelledData{
		RequestID:   p.RequestID,
		PaymentID:   p.ID,
		RequesterID: p.RequesterID,
	})
	return nil
}

// Money returns the amount in the gateway's minor unit
func (p *Payment) Money() models.Money {
	return models.NewMoneyFromDecimal(p.Amount, p.Currency)
}

// IdempotencyKey identifies the automatic charge of this payment at the gateway
func (p *Payment) IdempotencyKey() string {
	return "auto-pay-" + p.ID.String()
}

// ExpectedStatus is the status the stored row must still hold for the pending
// transition to apply.
func (p *Payment) ExpectedStatus() PaymentStatus {
	return p.previousStatus
}

func (p *Payment) transition(to PaymentStatus) {
	p.previousStatus = p.Status
	p.Status = to
	p.Timestamps = p.Timestamps.Update()
}

func (p *Payment) recordEvent(eventType string, data interface{}) {
	p.events = append(p.events, events.NewEvent(p.ID, eventType, data).WithCorrelationID(p.RequestID))
}

// Events returns domain events
func (p *Payment) Events() []*events.Event {
	return p.events
}

// ClearEvents clears domain events
func (p *Payment) ClearEvents() {
	p.events = nil
}

// PaymentRepository persists payments. Register inserts unless a payment for
// the request exists; Save applies the pending transition conditionally and
// fails with ErrConcurrentUpdate when the stored status moved on.
type PaymentRepository interface {
	Register(ctx context.Context, payment *Payment) (bool, error)
	Save(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id models.ID) (*Payment, error)
	FindByRequestID(ctx context.Context, requestID models.ID) (*Payment, error)
	FindByGatewayRef(ctx context.Context, gatewayRef string) (*Payment, error)
	FindByRequester(ctx context.Context, requesterID models.ID) ([]*Payment, error)
}
