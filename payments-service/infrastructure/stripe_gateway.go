package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var _ domain.PaymentGateway = (*StripeGateway)(nil)

const defaultGatewayTimeout = 15 * time.Second

// StripeConfig configures the Stripe client
type StripeConfig struct {
	SecretKey         string
	WebhookSecret     string
	Timeout           time.Duration
	APIBase           string
	MaxNetworkRetries int64
}

// StripeGateway implements PaymentGateway on the Stripe API
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// NewStripeGateway creates a gateway whose calls are bounded by cfg.Timeout
func NewStripeGateway(cfg StripeConfig, logger *slog.Logger) *StripeGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		LeveledLogger:     &stripeLogger{logger: logger},
		MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
	}
	if cfg.APIBase != "" {
		backendConfig.URL = stripe.String(cfg.APIBase)
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	})

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
}

// CreateCustomer creates the gateway customer of a client
func (g *StripeGateway) CreateCustomer(ctx context.Context, clientID models.ID) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	params.AddMetadata("client_id", clientID.String())
	params.SetIdempotencyKey("customer-" + clientID.String())

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", gatewayError(err, "failed to create customer")
	}
	return customer.ID, nil
}

// CreateIntent prepares an intent the client confirms on their side
func (g *StripeGateway) CreateIntent(ctx context.Context, params domain.IntentParams) (*domain.Intent, error) {
	intentParams := newIntentParams(ctx, params)
	intentParams.SetupFutureUsage = stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession))
	intentParams.Confirm = stripe.Bool(false)

	intent, err := g.api.PaymentIntents.New(intentParams)
	if err != nil {
		return nil, gatewayError(err, "failed to create payment intent")
	}
	return toIntent(intent), nil
}

// ChargeOffSession creates and confirms an intent in one call
func (g *StripeGateway) ChargeOffSession(ctx context.Context, params domain.IntentParams) (*domain.Intent, error) {
	intentParams := newIntentParams(ctx, params)
	intentParams.Confirm = stripe.Bool(true)
	intentParams.OffSession = stripe.Bool(true)

	intent, err := g.api.PaymentIntents.New(intentParams)
	if err != nil {
		return nil, gatewayError(err, "failed to charge payment method")
	}
	return toIntent(intent), nil
}

// RetrieveIntent fetches an intent's current status
func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*domain.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, gatewayError(err, "failed to retrieve payment intent")
	}
	return toIntent(intent), nil
}

// RetrieveMethod fetches the details of a payment method
func (g *StripeGateway) RetrieveMethod(ctx context.Context, methodRef string) (*domain.MethodDetails, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	method, err := g.api.PaymentMethods.Get(methodRef, params)
	if err != nil {
		return nil, gatewayError(err, "failed to retrieve payment method")
	}

	details := &domain.MethodDetails{
		Ref:  method.ID,
		Type: string(method.Type),
	}
	switch {
	case method.Card != nil:
		details.Brand = string(method.Card.Brand)
		details.LastFour = method.Card.Last4
		details.ExpiryMonth = int(method.Card.ExpMonth)
		details.ExpiryYear = int(method.Card.ExpYear)
	case method.SEPADebit != nil:
		details.LastFour = method.SEPADebit.Last4
	}
	return details, nil
}

// AttachMethod attaches a payment method to a customer
func (g *StripeGateway) AttachMethod(ctx context.Context, methodRef, customerRef string) error {
	params := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerRef)}
	params.Context = ctx

	if _, err := g.api.PaymentMethods.Attach(methodRef, params); err != nil {
		return gatewayError(err, "failed to attach payment method")
	}
	return nil
}

// DetachMethod detaches a payment method from its customer
func (g *StripeGateway) DetachMethod(ctx context.Context, methodRef string) error {
	params := &stripe.PaymentMethodDetachParams{}
	params.Context = ctx

	if _, err := g.api.PaymentMethods.Detach(methodRef, params); err != nil {
		return gatewayError(err, "failed to detach payment method")
	}
	return nil
}

// SetDefaultMethod sets the customer's default invoice payment method
func (g *StripeGateway) SetDefaultMethod(ctx context.Context, customerRef, methodRef string) error {
	params := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(methodRef),
		},
	}
	params.Context = ctx

	if _, err := g.api.Customers.Update(customerRef, params); err != nil {
		return gatewayError(err, "failed to update default payment method")
	}
	return nil
}

// ParseWebhook verifies the Stripe-Signature header and extracts the intent
// outcome of payment_intent.succeeded and payment_intent.payment_failed.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*domain.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{Tolerance: webhook.DefaultTolerance, IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, models.NewInvalidInput("invalid webhook signature")
	}

	result := &domain.WebhookEvent{ID: event.ID, Type: string(event.Type)}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		result.Outcome = events.GatewayIntentSucceeded
	case stripe.EventTypePaymentIntentPaymentFailed:
		result.Outcome = events.GatewayIntentFailed
	default:
		return result, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, models.NewInvalidInput("invalid webhook payload")
	}
	result.IntentID = intent.ID
	if intent.LastPaymentError != nil {
		result.Error = intent.LastPaymentError.Msg
	}
	return result, nil
}

func newIntentParams(ctx context.Context, params domain.IntentParams) *stripe.PaymentIntentParams {
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.Amount.Amount),
		Currency: stripe.String(params.Amount.Currency),
	}
	intentParams.Context = ctx
	if params.CustomerRef != "" {
		intentParams.Customer = stripe.String(params.CustomerRef)
	}
	if params.MethodRef != "" {
		intentParams.PaymentMethod = stripe.String(params.MethodRef)
	}
	if params.Description != "" {
		intentParams.Description = stripe.String(params.Description)
	}
	if params.IdempotencyKey != "" {
		intentParams.SetIdempotencyKey(params.IdempotencyKey)
	}
	for key, value := range params.Metadata {
		intentParams.AddMetadata(key, value)
	}
	return intentParams
}

func toIntent(intent *stripe.PaymentIntent) *domain.Intent {
	return &domain.Intent{
		ID:           intent.ID,
		Status:       string(intent.Status),
		ClientSecret: intent.ClientSecret,
	}
}

// gatewayError turns card errors into declines carrying Stripe's message.
// Everything else stays a plain error so the caller retries.
func gatewayError(err error, message string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		return models.NewGatewayDeclined(stripeErr.Msg)
	}
	return errors.Wrap(err, message)
}

// stripeLogger routes the client's own logging into slog
type stripeLogger struct {
	logger *slog.Logger
}

func (l *stripeLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *stripeLogger) Infof(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *stripeLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *stripeLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}
