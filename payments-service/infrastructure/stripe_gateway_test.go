package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test"

func newTestGateway(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *StripeGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewStripeGateway(StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		Timeout:       timeout,
		APIBase:       server.URL,
	}, telemetry.NopLogger())
}

func offSessionParams() domain.IntentParams {
	return domain.IntentParams{
		Amount:         models.NewMoney(4999, "eur"),
		CustomerRef:    "cus_1",
		MethodRef:      "pm_1",
		IdempotencyKey: "auto-pay-123",
	}
}

func TestStripeGateway_ChargeOffSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var idempotencyKey, body string
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			idempotencyKey = r.Header.Get("Idempotency-Key")
			body = r.Form.Encode()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded","client_secret":"pi_1_secret"}`))
		}, time.Second)

		intent, err := gateway.ChargeOffSession(context.Background(), offSessionParams())
		require.NoError(t, err)
		assert.Equal(t, "pi_1", intent.ID)
		assert.Equal(t, domain.IntentStatusSucceeded, intent.Status)
		assert.Equal(t, "auto-pay-123", idempotencyKey)
		assert.Contains(t, body, "amount=4999")
		assert.Contains(t, body, "off_session=true")
		assert.Contains(t, body, "confirm=true")
	})

	t.Run("card decline keeps the gateway message", func(t *testing.T) {
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
		}, time.Second)

		_, err := gateway.ChargeOffSession(context.Background(), offSessionParams())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrGatewayDeclined)
		assert.Equal(t, "Your card was declined.", err.Error())
	})

	t.Run("server error is retryable", func(t *testing.T) {
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"Something went wrong"}}`))
		}, time.Second)

		_, err := gateway.ChargeOffSession(context.Background(), offSessionParams())
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrGatewayDeclined)
	})

	t.Run("timeout is retryable", func(t *testing.T) {
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}, 20*time.Millisecond)

		_, err := gateway.ChargeOffSession(context.Background(), offSessionParams())
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrGatewayDeclined)
	})
}

func TestStripeGateway_RetrieveMethod(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_methods/pm_1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pm_1","object":"payment_method","type":"card",
			"card":{"brand":"visa","last4":"4242","exp_month":12,"exp_year":2030}}`))
	}, time.Second)

	details, err := gateway.RetrieveMethod(context.Background(), "pm_1")
	require.NoError(t, err)
	assert.Equal(t, &domain.MethodDetails{
		Ref: "pm_1", Type: "card", Brand: "visa", LastFour: "4242", ExpiryMonth: 12, ExpiryYear: 2030,
	}, details)
}

func signedPayload(payload string) (string, []byte) {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Header, signed.Payload
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	gateway := NewStripeGateway(StripeConfig{WebhookSecret: testWebhookSecret}, telemetry.NopLogger())

	t.Run("payment failed", func(t *testing.T) {
		header, payload := signedPayload(`{"id":"evt_1","object":"event","type":"payment_intent.payment_failed",
			"data":{"object":{"id":"pi_1","object":"payment_intent","status":"requires_payment_method",
			"last_payment_error":{"type":"card_error","message":"Insufficient funds."}}}}`)

		event, err := gateway.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, events.GatewayIntentFailed, event.Outcome)
		assert.Equal(t, "pi_1", event.IntentID)
		assert.Equal(t, "Insufficient funds.", event.Error)
	})

	t.Run("payment succeeded", func(t *testing.T) {
		header, payload := signedPayload(`{"id":"evt_2","object":"event","type":"payment_intent.succeeded",
			"data":{"object":{"id":"pi_2","object":"payment_intent","status":"succeeded"}}}`)

		event, err := gateway.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, events.GatewayIntentSucceeded, event.Outcome)
		assert.Equal(t, "pi_2", event.IntentID)
	})

	t.Run("other types carry no outcome", func(t *testing.T) {
		header, payload := signedPayload(`{"id":"evt_3","object":"event","type":"customer.created",
			"data":{"object":{"id":"cus_1","object":"customer"}}}`)

		event, err := gateway.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Empty(t, event.Outcome)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, payload := signedPayload(`{"id":"evt_4","object":"event","type":"payment_intent.succeeded"}`)

		_, err := gateway.ParseWebhook(payload, "t=1,v1=deadbeef")
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}
