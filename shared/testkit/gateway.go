package testkit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/models"
)

// WebhookSecret is the signature the fake gateway accepts
const WebhookSecret = "whsec_testkit"

var _ domain.PaymentGateway = (*Gateway)(nil)

// Gateway is a scripted payment processor. Off-session charges succeed unless
// Decline is set; charges are idempotent on their key like the real gateway.
type Gateway struct {
	mu      sync.Mutex
	Decline string
	seq     int
	intents map[string]*domain.Intent
	keys    map[string]string
	methods map[string]*domain.MethodDetails
	// defaults maps a customer to its default method
	defaults map[string]string
}

// NewGateway creates a gateway with no intents
func NewGateway() *Gateway {
	return &Gateway{
		intents:  make(map[string]*domain.Intent),
		keys:     make(map[string]string),
		methods:  make(map[string]*domain.MethodDetails),
		defaults: make(map[string]string),
	}
}

// AddCard makes a tokenized card retrievable under ref
func (g *Gateway) AddCard(ref, brand, lastFour string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.methods[ref] = &domain.MethodDetails{
		Ref: ref, Type: "card", Brand: brand, LastFour: lastFour, ExpiryMonth: 12, ExpiryYear: 2030,
	}
}

// Charges returns the number of distinct intents created
func (g *Gateway) Charges() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.intents)
}

// Succeed marks an intent as succeeded, as the client confirming it would
func (g *Gateway) Succeed(intentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if intent, ok := g.intents[intentID]; ok {
		intent.Status = domain.IntentStatusSucceeded
	}
}

func (g *Gateway) CreateCustomer(ctx context.Context, clientID models.ID) (string, error) {
	return "cus_" + clientID.String(), nil
}

func (g *Gateway) CreateIntent(ctx context.Context, params domain.IntentParams) (*domain.Intent, error) {
	return g.intent(params.IdempotencyKey, "requires_payment_method"), nil
}

func (g *Gateway) ChargeOffSession(ctx context.Context, params domain.IntentParams) (*domain.Intent, error) {
	g.mu.Lock()
	decline := g.Decline
	g.mu.Unlock()

	if decline != "" {
		return nil, models.NewGatewayDeclined(decline)
	}
	return g.intent(params.IdempotencyKey, domain.IntentStatusSucceeded), nil
}

func (g *Gateway) RetrieveIntent(ctx context.Context, intentID string) (*domain.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.intents[intentID]
	if !ok {
		return nil, models.NewNotFound("no such payment intent")
	}
	copied := *intent
	return &copied, nil
}

func (g *Gateway) RetrieveMethod(ctx context.Context, methodRef string) (*domain.MethodDetails, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	details, ok := g.methods[methodRef]
	if !ok {
		return nil, models.NewInvalidInput("no such payment method")
	}
	return details, nil
}

func (g *Gateway) AttachMethod(ctx context.Context, methodRef, customerRef string) error {
	return nil
}

func (g *Gateway) DetachMethod(ctx context.Context, methodRef string) error {
	return nil
}

func (g *Gateway) SetDefaultMethod(ctx context.Context, customerRef, methodRef string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.defaults[customerRef] = methodRef
	return nil
}

// DefaultMethod returns the method ref last made the customer's default
func (g *Gateway) DefaultMethod(customerRef string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.defaults[customerRef]
}

// webhookPayload is the callback body the fake gateway signs
type webhookPayload struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	IntentID string `json:"intent_id"`
	Outcome  string `json:"outcome"`
	Error    string `json:"error,omitempty"`
}

// Webhook encodes a callback for intentID with the given outcome
func Webhook(id, intentID, outcome string) []byte {
	payload, _ := json.Marshal(webhookPayload{
		ID:       id,
		Type:     "payment_intent." + outcome,
		IntentID: intentID,
		Outcome:  outcome,
	})
	return payload
}

func (g *Gateway) ParseWebhook(payload []byte, signature string) (*domain.WebhookEvent, error) {
	if signature != WebhookSecret {
		return nil, models.NewInvalidInput("invalid webhook signature")
	}

	var parsed webhookPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, models.NewInvalidInput("invalid webhook payload")
	}
	return &domain.WebhookEvent{
		ID:       parsed.ID,
		Type:     parsed.Type,
		IntentID: parsed.IntentID,
		Outcome:  parsed.Outcome,
		Error:    parsed.Error,
	}, nil
}

func (g *Gateway) intent(idempotencyKey, status string) *domain.Intent {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.keys[idempotencyKey]; ok && idempotencyKey != "" {
		copied := *g.intents[id]
		return &copied
	}

	g.seq++
	id := fmt.Sprintf("pi_%d", g.seq)
	g.intents[id] = &domain.Intent{ID: id, Status: status, ClientSecret: id + "_secret"}
	if idempotencyKey != "" {
		g.keys[idempotencyKey] = id
	}
	copied := *g.intents[id]
	return &copied
}
