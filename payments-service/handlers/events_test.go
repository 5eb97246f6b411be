package handlers

import (
	"context"
	"testing"

	"github.com/servicehub/booking-system/payments-service/application"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/saga"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEventRouter(d testDeps) *saga.EventRouter {
	logger := telemetry.NopLogger()
	router := saga.NewEventRouter("payments-service", nil, logger)
	NewPaymentEventHandlers(
		application.NewRegisterPayment(d.payments, logger),
		application.NewProcessAutomaticPayment(d.payments, d.methods, d.gateway, d.publisher, logger),
		application.NewCancelPayment(d.payments, d.publisher, logger),
		application.NewReconcileGatewayUpdate(d.payments, d.publisher, logger),
	).Register(router)
	return router
}

func TestPaymentEventHandlers_Bindings(t *testing.T) {
	router := newEventRouter(newTestDeps(t))

	assert.ElementsMatch(t, []string{
		events.RequestCreatedEvent,
		events.RequestCompletedEvent,
		events.RequestCancelledEvent,
		events.GatewayIntentUpdatedEvent,
	}, router.EventTypes())
}

func TestPaymentEventHandlers_RequestCreated(t *testing.T) {
	d := newTestDeps(t)
	d.payments.EXPECT().Register(mock.Anything, mock.MatchedBy(func(payment *domain.Payment) bool {
		return payment.RequestID == models.ID(requestID) && payment.Amount.Equal(decimal.RequireFromString("80"))
	})).Return(true, nil).Once()

	event := events.NewEvent(models.ID(requestID), events.RequestCreatedEvent, events.RequestCreatedData{
		RequestID:   models.ID(requestID),
		RequesterID: models.ID(clientID),
		Amount:      decimal.RequireFromString("80"),
	})

	assert.NoError(t, newEventRouter(d).Handle(context.Background(), event))
}

func TestPaymentEventHandlers_GatewayIntentUpdated(t *testing.T) {
	d := newTestDeps(t)
	d.payments.EXPECT().FindByGatewayRef(mock.Anything, "pi_unknown").Return(nil, nil).Once()

	event := events.NewEvent("pi_unknown", events.GatewayIntentUpdatedEvent, events.GatewayIntentUpdatedData{
		IntentID: "pi_unknown",
		Outcome:  events.GatewayIntentSucceeded,
	})

	assert.NoError(t, newEventRouter(d).Handle(context.Background(), event))
}

func TestPaymentEventHandlers_UndecodablePayload(t *testing.T) {
	event := events.NewEvent(models.ID(requestID), events.RequestCancelledEvent, []byte(`{"requestId":42}`))

	err := newEventRouter(newTestDeps(t)).Handle(context.Background(), event)
	assert.ErrorIs(t, err, events.ErrInvalidPayload)
}
