package domain

import (
	"context"

	"github.com/servicehub/booking-system/shared/models"
)

// Gateway intent statuses the services act on
const (
	IntentStatusSucceeded = "succeeded"
)

// Intent is the gateway's view of one charge attempt
type Intent struct {
	ID           string
	Status       string
	ClientSecret string
}

// IntentParams describes a charge to prepare or perform
type IntentParams struct {
	Amount         models.Money
	CustomerRef    string
	MethodRef      string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

// MethodDetails are the instrument details the gateway exposes
type MethodDetails struct {
	Ref         string
	Type        string
	Brand       string
	LastFour    string
	ExpiryMonth int
	ExpiryYear  int
}

// WebhookEvent is a verified gateway callback. Outcome is empty for callbacks
// the services do not act on.
type WebhookEvent struct {
	ID       string
	Type     string
	IntentID string
	Outcome  string
	Error    string
}

// PaymentGateway is the external payment processor. Declines are returned as
// models.ErrGatewayDeclined kinds carrying the gateway's message; every other
// error is a transport failure worth retrying.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, clientID models.ID) (string, error)
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
	// ChargeOffSession creates and confirms an intent without the client present.
	ChargeOffSession(ctx context.Context, params IntentParams) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
	RetrieveMethod(ctx context.Context, methodRef string) (*MethodDetails, error)
	AttachMethod(ctx context.Context, methodRef, customerRef string) error
	DetachMethod(ctx context.Context, methodRef string) error
	SetDefaultMethod(ctx context.Context, customerRef, methodRef string) error
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
