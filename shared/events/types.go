package events

import (
	"time"

	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
)

// Event types. They are also the routing keys on the message channel.
const (
	// Request lifecycle
	RequestCreatedEvent   = "REQUEST_CREATED"
	RequestAssignedEvent  = "REQUEST_ASSIGNED"
	RequestStartedEvent   = "REQUEST_STARTED"
	RequestCompletedEvent = "REQUEST_COMPLETED"
	RequestCancelledEvent = "REQUEST_CANCELLED"
	RequestRatedEvent     = "REQUEST_RATED"

	// Request payment projection
	RequestPaymentCompletedEvent = "REQUEST_PAYMENT_COMPLETED"
	RequestPaymentFailedEvent    = "REQUEST_PAYMENT_FAILED"

	// Payment outcomes
	PaymentCompletedEvent = "PAYMENT_COMPLETED"
	PaymentFailedEvent    = "PAYMENT_FAILED"
	PaymentCancelledEvent = "PAYMENT_CANCELLED"

	// External gateway callbacks, consumed by the payment service itself
	GatewayIntentUpdatedEvent = "GATEWAY_INTENT_UPDATED"
)

// RequestCreatedData is the payload of REQUEST_CREATED
type RequestCreatedData struct {
	RequestID   models.ID       `json:"requestId"`
	RequesterID models.ID       `json:"requesterId"`
	CategoryID  models.ID       `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// RequestAssignedData is the payload of REQUEST_ASSIGNED
type RequestAssignedData struct {
	RequestID   models.ID `json:"requestId"`
	RequesterID models.ID `json:"requesterId"`
	FulfillerID models.ID `json:"fulfillerId"`
}

// RequestStartedData is the payload of REQUEST_STARTED
type RequestStartedData struct {
	RequestID   models.ID `json:"requestId"`
	RequesterID models.ID `json:"requesterId"`
	FulfillerID models.ID `json:"fulfillerId"`
}

// RequestCompletedData carries everything a downstream consumer needs to
// charge or notify without querying the request service.
type RequestCompletedData struct {
	RequestID   models.ID       `json:"requestId"`
	RequesterID models.ID       `json:"requesterId"`
	FulfillerID models.ID       `json:"fulfillerId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	CompletedAt time.Time       `json:"completedAt"`
}

// RequestCancelledData is the payload of REQUEST_CANCELLED
type RequestCancelledData struct {
	RequestID      models.ID `json:"requestId"`
	RequesterID    models.ID `json:"requesterId"`
	FulfillerID    models.ID `json:"fulfillerId,omitempty"`
	Actor          models.ID `json:"actor"`
	Reason         string    `json:"reason"`
	PreviousStatus string    `json:"previousStatus"`
}

// PaymentCompletedData is the payload of PAYMENT_COMPLETED
type PaymentCompletedData struct {
	RequestID   models.ID       `json:"requestId"`
	PaymentID   models.ID       `json:"paymentId"`
	RequesterID models.ID       `json:"requesterId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	GatewayRef  string          `json:"gatewayRef"`
}

// PaymentFailedData is the payload of PAYMENT_FAILED
type PaymentFailedData struct {
	RequestID   models.ID `json:"requestId"`
	PaymentID   models.ID `json:"paymentId"`
	RequesterID models.ID `json:"requesterId"`
	GatewayRef  string    `json:"gatewayRef,omitempty"`
	Error       string    `json:"error"`
}

// PaymentCancelledData is the payload of PAYMENT_CANCELLED
type PaymentCancelledData struct {
	RequestID   models.ID `json:"requestId"`
	PaymentID   models.ID `json:"paymentId"`
	RequesterID models.ID `json:"requesterId"`
}

// RequestRatedData is the payload of REQUEST_RATED
type RequestRatedData struct {
	RequestID   models.ID `json:"requestId"`
	RequesterID models.ID `json:"requesterId"`
	FulfillerID models.ID `json:"fulfillerId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
}

// RequestPaymentStatusData is the payload of the REQUEST_PAYMENT_* projections
type RequestPaymentStatusData struct {
	RequestID     models.ID `json:"requestId"`
	RequesterID   models.ID `json:"requesterId"`
	FulfillerID   models.ID `json:"fulfillerId,omitempty"`
	PaymentStatus string    `json:"paymentStatus"`
	Error         string    `json:"error,omitempty"`
}

// Gateway callback outcomes
const (
	GatewayIntentSucceeded = "succeeded"
	GatewayIntentFailed    = "failed"
)

// GatewayIntentUpdatedData is a verified gateway webhook translated into the
// channel's envelope.
type GatewayIntentUpdatedData struct {
	GatewayEventID string `json:"gatewayEventId"`
	Outcome        string `json:"outcome"`
	IntentID       string `json:"intentId"`
	Error          string `json:"error,omitempty"`
}
