package handlers

import (
	"context"

	"github.com/servicehub/booking-system/requests-service/application"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/saga"
)

// RequestEventHandlers consumes payment outcomes for the request service
type RequestEventHandlers struct {
	projectPaymentStatus *application.ProjectPaymentStatus
}

// NewRequestEventHandlers creates new request event handlers
func NewRequestEventHandlers(projectPaymentStatus *application.ProjectPaymentStatus) *RequestEventHandlers {
	return &RequestEventHandlers{projectPaymentStatus: projectPaymentStatus}
}

// Register binds the handled event types on router
func (h *RequestEventHandlers) Register(router *saga.EventRouter) {
	router.RegisterHandler(events.PaymentCompletedEvent, saga.NewEventHandlerFunc("project-payment-completed", h.HandlePaymentCompleted))
	router.RegisterHandler(events.PaymentFailedEvent, saga.NewEventHandlerFunc("project-payment-failed", h.HandlePaymentFailed))
	router.RegisterHandler(events.PaymentCancelledEvent, saga.NewEventHandlerFunc("project-payment-cancelled", h.HandlePaymentCancelled))
}

// HandlePaymentCompleted handles PAYMENT_COMPLETED
func (h *RequestEventHandlers) HandlePaymentCompleted(ctx context.Context, event *events.Event) error {
	var data events.PaymentCompletedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.projectPaymentStatus.Execute(ctx, &application.ProjectPaymentStatusCommand{
		RequestID: data.RequestID,
		Status:    domain.PaymentStatusCompleted,
	})
}

// HandlePaymentFailed handles PAYMENT_FAILED
func (h *RequestEventHandlers) HandlePaymentFailed(ctx context.Context, event *events.Event) error {
	var data events.PaymentFailedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.projectPaymentStatus.Execute(ctx, &application.ProjectPaymentStatusCommand{
		RequestID: data.RequestID,
		Status:    domain.PaymentStatusFailed,
		Error:     data.Error,
	})
}

// HandlePaymentCancelled handles PAYMENT_CANCELLED
func (h *RequestEventHandlers) HandlePaymentCancelled(ctx context.Context, event *events.Event) error {
	var data events.PaymentCancelledData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.projectPaymentStatus.Execute(ctx, &application.ProjectPaymentStatusCommand{
		RequestID: data.RequestID,
		Status:    domain.PaymentStatusCancelled,
	})
}
