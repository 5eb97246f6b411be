package testkit

import (
	"log/slog"

	paymentsapp "github.com/servicehub/booking-system/payments-service/application"
	paymentshandlers "github.com/servicehub/booking-system/payments-service/handlers"
	requestsapp "github.com/servicehub/booking-system/requests-service/application"
	requestshandlers "github.com/servicehub/booking-system/requests-service/handlers"
	"github.com/servicehub/booking-system/shared/saga"
)

// System wires both services over one in-process bus, the way
// config.BuildDependencies wires each of them over the broker.
type System struct {
	Bus            *Bus
	Requests       *RequestStore
	Payments       *PaymentStore
	PaymentMethods *PaymentMethodStore
	Gateway        *Gateway

	CreateRequest   *requestsapp.CreateRequest
	AssignRequest   *requestsapp.AssignRequest
	StartRequest    *requestsapp.StartRequest
	CompleteRequest *requestsapp.CompleteRequest
	CancelRequest   *requestsapp.CancelRequest
	RateRequest     *requestsapp.RateRequest

	CreatePaymentIntent *paymentsapp.CreatePaymentIntent
	ConfirmPayment      *paymentsapp.ConfirmPayment
	AddPaymentMethod    *paymentsapp.AddPaymentMethod
	HandleWebhook       *paymentsapp.HandleGatewayWebhook
}

// NewSystem builds both services on in-memory stores and a fake gateway
func NewSystem(logger *slog.Logger) *System {
	s := &System{
		Bus:            NewBus(),
		Requests:       NewRequestStore(),
		Payments:       NewPaymentStore(),
		PaymentMethods: NewPaymentMethodStore(),
		Gateway:        NewGateway(),
	}

	s.CreateRequest = requestsapp.NewCreateRequest(s.Requests, s.Bus, logger)
	s.AssignRequest = requestsapp.NewAssignRequest(s.Requests, s.Bus, logger)
	s.StartRequest = requestsapp.NewStartRequest(s.Requests, s.Bus, logger)
	s.CompleteRequest = requestsapp.NewCompleteRequest(s.Requests, s.Bus, logger)
	s.CancelRequest = requestsapp.NewCancelRequest(s.Requests, s.Bus, logger)
	s.RateRequest = requestsapp.NewRateRequest(s.Requests, s.Bus, logger)

	requestsRouter := saga.NewEventRouter("requests-service", nil, logger)
	requestshandlers.NewRequestEventHandlers(
		requestsapp.NewProjectPaymentStatus(s.Requests, s.Bus, logger),
	).Register(requestsRouter)
	s.Bus.Bind(requestsRouter)

	s.CreatePaymentIntent = paymentsapp.NewCreatePaymentIntent(s.Payments, s.PaymentMethods, s.Gateway, logger)
	s.ConfirmPayment = paymentsapp.NewConfirmPayment(s.Payments, s.Gateway, s.Bus, logger)
	s.AddPaymentMethod = paymentsapp.NewAddPaymentMethod(s.PaymentMethods, s.Gateway, logger)
	s.HandleWebhook = paymentsapp.NewHandleGatewayWebhook(s.Gateway, s.Bus, logger)

	paymentsRouter := saga.NewEventRouter("payments-service", nil, logger)
	paymentshandlers.NewPaymentEventHandlers(
		paymentsapp.NewRegisterPayment(s.Payments, logger),
		paymentsapp.NewProcessAutomaticPayment(s.Payments, s.PaymentMethods, s.Gateway, s.Bus, logger),
		paymentsapp.NewCancelPayment(s.Payments, s.Bus, logger),
		paymentsapp.NewReconcileGatewayUpdate(s.Payments, s.Bus, logger),
	).Register(paymentsRouter)
	s.Bus.Bind(paymentsRouter)

	return s
}
