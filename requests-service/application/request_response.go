package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// User roles as asserted by the gateway
const (
	RoleClient   = "client"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// RequestResponse is the external representation of a request
type RequestResponse struct {
	ID                 string     `json:"id"`
	RequesterID        string     `json:"requester_id"`
	FulfillerID        string     `json:"fulfiller_id,omitempty"`
	CategoryID         string     `json:"category_id,omitempty"`
	Description        string     `json:"description"`
	Address            string     `json:"address,omitempty"`
	ScheduledAt        *time.Time `json:"scheduled_at,omitempty"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	Amount             string     `json:"amount"`
	Currency           string     `json:"currency"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func newRequestResponse(request *domain.Request) *RequestResponse {
	return &RequestResponse{
		ID:                 request.ID.String(),
		RequesterID:        request.RequesterID.String(),
		FulfillerID:        request.FulfillerID.String(),
		CategoryID:         request.CategoryID.String(),
		Description:        request.Description,
		Address:            request.Address,
		ScheduledAt:        request.ScheduledAt,
		Status:             string(request.Status),
		PaymentStatus:      string(request.PaymentStatus),
		Amount:             request.Amount.StringFixed(2),
		Currency:           request.Currency,
		CancellationReason: request.CancellationReason,
		CancelledBy:        request.CancelledBy.String(),
		CompletedAt:        request.CompletedAt,
		CancelledAt:        request.CancelledAt,
		CreatedAt:          request.Timestamps.CreatedAt,
		UpdatedAt:          request.Timestamps.UpdatedAt,
	}
}

func newRequestResponses(requests []*domain.Request) []*RequestResponse {
	responses := make([]*RequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = newRequestResponse(request)
	}
	return responses
}

// loadRequest fetches a request, mapping a missing row to ErrRequestNotFound
func loadRequest(ctx context.Context, repository domain.RequestRepository, rawID string) (*domain.Request, error) {
	id, err := models.NewID(rawID)
	if err != nil {
		return nil, err
	}

	request, err := repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}
	return request, nil
}

// publishRecorded publishes the events recorded by a committed change. The row
// is already written, so a publish failure is logged instead of failing the call.
// TODO: write events to an outbox table in the same transaction and relay them.
func publishRecorded(ctx context.Context, publisher events.Publisher, logger *slog.Logger, request *domain.Request) {
	recorded := request.Events()
	if len(recorded) == 0 {
		return
	}

	if err := publisher.Publish(ctx, recorded...); err != nil {
		for _, event := range recorded {
			logger.ErrorContext(ctx, "failed to publish event",
				slog.String("event_type", event.Type),
				slog.String("event_id", event.ID.String()),
				slog.String("request_id", request.ID.String()),
				slog.Any("error", err),
			)
		}
	}
	request.ClearEvents()
}
