package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// PaymentResponse is the external representation of a payment
type PaymentResponse struct {
	ID           string     `json:"id"`
	RequestID    string     `json:"request_id"`
	RequesterID  string     `json:"requester_id"`
	Amount       string     `json:"amount"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	GatewayRef   string     `json:"gateway_ref,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newPaymentResponse(payment *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:           payment.ID.String(),
		RequestID:    payment.RequestID.String(),
		RequesterID:  payment.RequesterID.String(),
		Amount:       payment.Amount.StringFixed(2),
		Currency:     payment.Currency,
		Status:       string(payment.Status),
		GatewayRef:   payment.GatewayRef,
		ErrorMessage: payment.ErrorMessage,
		ProcessedAt:  payment.ProcessedAt,
		CreatedAt:    payment.Timestamps.CreatedAt,
		UpdatedAt:    payment.Timestamps.UpdatedAt,
	}
}

// PaymentMethodResponse is the external representation of a saved method
type PaymentMethodResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	GatewayRef  string    `json:"gateway_ref"`
	CardBrand   string    `json:"card_brand,omitempty"`
	LastFour    string    `json:"last_four,omitempty"`
	ExpiryMonth int       `json:"expiry_month,omitempty"`
	ExpiryYear  int       `json:"expiry_year,omitempty"`
	IsDefault   bool      `json:"is_default"`
	AutoPay     bool      `json:"auto_pay"`
	CreatedAt   time.Time `json:"created_at"`
}

func newPaymentMethodResponse(method *domain.PaymentMethod) *PaymentMethodResponse {
	return &PaymentMethodResponse{
		ID:          method.ID.String(),
		Type:        method.Type.String(),
		GatewayRef:  method.GatewayMethodRef,
		CardBrand:   method.CardBrand,
		LastFour:    method.LastFour,
		ExpiryMonth: method.ExpiryMonth,
		ExpiryYear:  method.ExpiryYear,
		IsDefault:   method.IsDefault,
		AutoPay:     method.AutoPay,
		CreatedAt:   method.CreatedAt,
	}
}

// savePayment persists the pending transition. A lost race is reported as
// false so event handlers can acknowledge the redelivery.
func savePayment(ctx context.Context, repository domain.PaymentRepository, logger *slog.Logger, payment *domain.Payment) (bool, error) {
	if err := repository.Save(ctx, payment); err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			logger.InfoContext(ctx, "payment already transitioned by another delivery",
				slog.String("payment_id", payment.ID.String()),
				slog.String("request_id", payment.RequestID.String()),
				slog.String("status", string(payment.Status)),
			)
			payment.ClearEvents()
			return false, nil
		}
		return false, errors.Wrap(err, "failed to save payment")
	}
	return true, nil
}

// publishRecorded publishes the payment's events after its row was written.
// A publish failure is logged; the write is not undone.
func publishRecorded(ctx context.Context, publisher events.Publisher, logger *slog.Logger, payment *domain.Payment) {
	recorded := payment.Events()
	if len(recorded) == 0 {
		return
	}

	if err := publisher.Publish(ctx, recorded...); err != nil {
		for _, event := range recorded {
			logger.ErrorContext(ctx, "failed to publish event",
				slog.String("event_type", event.Type),
				slog.String("event_id", event.ID.String()),
				slog.String("payment_id", payment.ID.String()),
				slog.Any("error", err),
			)
		}
	}
	payment.ClearEvents()
}

func parseID(raw, field string) (models.ID, error) {
	id, err := models.NewID(raw)
	if err != nil {
		return "", models.NewInvalidInput("invalid " + field)
	}
	return id, nil
}
