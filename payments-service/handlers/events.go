package handlers

import (
	"context"

	"github.com/servicehub/booking-system/payments-service/application"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/saga"
)

// PaymentEventHandlers consumes request lifecycle events and gateway updates
type PaymentEventHandlers struct {
	registerPayment         *application.RegisterPayment
	processAutomaticPayment *application.ProcessAutomaticPayment
	cancelPayment           *application.CancelPayment
	reconcileGatewayUpdate  *application.ReconcileGatewayUpdate
}

// NewPaymentEventHandlers creates new payment event handlers
func NewPaymentEventHandlers(
	registerPayment *application.RegisterPayment,
	processAutomaticPayment *application.ProcessAutomaticPayment,
	cancelPayment *application.CancelPayment,
	reconcileGatewayUpdate *application.ReconcileGatewayUpdate,
) *PaymentEventHandlers {
	return &PaymentEventHandlers{
		registerPayment:         registerPayment,
		processAutomaticPayment: processAutomaticPayment,
		cancelPayment:           cancelPayment,
		reconcileGatewayUpdate:  reconcileGatewayUpdate,
	}
}

// Register binds the handled event types on router
func (h *PaymentEventHandlers) Register(router *saga.EventRouter) {
	router.RegisterHandler(events.RequestCreatedEvent, saga.NewEventHandlerFunc("register-payment", h.HandleRequestCreated))
	router.RegisterHandler(events.RequestCompletedEvent, saga.NewEventHandlerFunc("automatic-payment", h.HandleRequestCompleted))
	router.RegisterHandler(events.RequestCancelledEvent, saga.NewEventHandlerFunc("cancel-payment", h.HandleRequestCancelled))
	router.RegisterHandler(events.GatewayIntentUpdatedEvent, saga.NewEventHandlerFunc("reconcile-gateway-update", h.HandleGatewayIntentUpdated))
}

// HandleRequestCreated handles REQUEST_CREATED
func (h *PaymentEventHandlers) HandleRequestCreated(ctx context.Context, event *events.Event) error {
	var data events.RequestCreatedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.registerPayment.Execute(ctx, &application.RegisterPaymentCommand{
		RequestID:   data.RequestID,
		RequesterID: data.RequesterID,
		Amount:      data.Amount,
		Currency:    data.Currency,
	})
}

// HandleRequestCompleted handles REQUEST_COMPLETED
func (h *PaymentEventHandlers) HandleRequestCompleted(ctx context.Context, event *events.Event) error {
	var data events.RequestCompletedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.processAutomaticPayment.Execute(ctx, &application.RegisterPaymentCommand{
		RequestID:   data.RequestID,
		RequesterID: data.RequesterID,
		Amount:      data.Amount,
		Currency:    data.Currency,
	})
}

// HandleRequestCancelled handles REQUEST_CANCELLED
func (h *PaymentEventHandlers) HandleRequestCancelled(ctx context.Context, event *events.Event) error {
	var data events.RequestCancelledData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.cancelPayment.Execute(ctx, &application.CancelPaymentCommand{RequestID: data.RequestID})
}

// HandleGatewayIntentUpdated handles GATEWAY_INTENT_UPDATED
func (h *PaymentEventHandlers) HandleGatewayIntentUpdated(ctx context.Context, event *events.Event) error {
	var data events.GatewayIntentUpdatedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return err
	}

	return h.reconcileGatewayUpdate.Execute(ctx, &application.ReconcileGatewayUpdateCommand{
		IntentID: data.IntentID,
		Outcome:  data.Outcome,
		Error:    data.Error,
	})
}
