package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/servicehub/booking-system/payments-service/application"
	"github.com/servicehub/booking-system/shared/api"
	"github.com/servicehub/booking-system/shared/models"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 64 << 10
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	createPaymentIntent     *application.CreatePaymentIntent
	confirmPayment          *application.ConfirmPayment
	getPaymentHistory       *application.GetPaymentHistory
	addPaymentMethod        *application.AddPaymentMethod
	listPaymentMethods      *application.ListPaymentMethods
	deletePaymentMethod     *application.DeletePaymentMethod
	setDefaultPaymentMethod *application.SetDefaultPaymentMethod
	setAutoPay              *application.SetAutoPay
	handleGatewayWebhook    *application.HandleGatewayWebhook
	logger                  *slog.Logger
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(
	createPaymentIntent *application.CreatePaymentIntent,
	confirmPayment *application.ConfirmPayment,
	getPaymentHistory *application.GetPaymentHistory,
	addPaymentMethod *application.AddPaymentMethod,
	listPaymentMethods *application.ListPaymentMethods,
	deletePaymentMethod *application.DeletePaymentMethod,
	setDefaultPaymentMethod *application.SetDefaultPaymentMethod,
	setAutoPay *application.SetAutoPay,
	handleGatewayWebhook *application.HandleGatewayWebhook,
	logger *slog.Logger,
) *PaymentHandlers {
	return &PaymentHandlers{
		createPaymentIntent:     createPaymentIntent,
		confirmPayment:          confirmPayment,
		getPaymentHistory:       getPaymentHistory,
		addPaymentMethod:        addPaymentMethod,
		listPaymentMethods:      listPaymentMethods,
		deletePaymentMethod:     deletePaymentMethod,
		setDefaultPaymentMethod: setDefaultPaymentMethod,
		setAutoPay:              setAutoPay,
		handleGatewayWebhook:    handleGatewayWebhook,
		logger:                  logger,
	}
}

// CreatePaymentIntent handles intent creation for a request the caller owes
func (h *PaymentHandlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	var cmd application.CreatePaymentIntentCommand
	if err := api.DecodeJSON(r, &cmd); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	cmd.ClientID = identity.UserID.String()

	response, err := h.createPaymentIntent.Execute(r.Context(), &cmd)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, response)
}

// ConfirmPayment handles the client's confirmation of an intent
func (h *PaymentHandlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	var cmd application.ConfirmPaymentCommand
	if err := api.DecodeJSON(r, &cmd); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	cmd.ClientID = identity.UserID.String()

	response, err := h.confirmPayment.Execute(r.Context(), &cmd)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

// GetPaymentHistory handles the caller's payment history
func (h *PaymentHandlers) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	response, err := h.getPaymentHistory.Execute(r.Context(), identity.UserID.String())
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

// AddPaymentMethod handles saving a tokenized instrument
func (h *PaymentHandlers) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	var cmd application.AddPaymentMethodCommand
	if err := api.DecodeJSON(r, &cmd); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	cmd.ClientID = identity.UserID.String()

	response, err := h.addPaymentMethod.Execute(r.Context(), &cmd)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, response)
}

// ListPaymentMethods handles listing the caller's saved methods
func (h *PaymentHandlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	response, err := h.listPaymentMethods.Execute(r.Context(), identity.UserID.String())
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

// DeletePaymentMethod handles removing a saved method
func (h *PaymentHandlers) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	err := h.deletePaymentMethod.Execute(r.Context(), &application.PaymentMethodCommand{
		MethodID: chi.URLParam(r, "id"),
		ClientID: identity.UserID.String(),
	})
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDefaultPaymentMethod handles choosing the default method
func (h *PaymentHandlers) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	response, err := h.setDefaultPaymentMethod.Execute(r.Context(), &application.PaymentMethodCommand{
		MethodID: chi.URLParam(r, "id"),
		ClientID: identity.UserID.String(),
	})
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

// SetAutoPay handles toggling automatic charging on a method
func (h *PaymentHandlers) SetAutoPay(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	var cmd application.PaymentMethodCommand
	if err := api.DecodeJSON(r, &cmd); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	cmd.MethodID = chi.URLParam(r, "id")
	cmd.ClientID = identity.UserID.String()

	response, err := h.setAutoPay.Execute(r.Context(), &cmd)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

// StripeWebhook handles gateway callbacks. The signature is the only
// authentication, so the raw body is passed through untouched.
func (h *PaymentHandlers) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		api.WriteError(w, r, h.logger, models.NewInvalidInput("invalid webhook payload"))
		return
	}

	if err := h.handleGatewayWebhook.Execute(r.Context(), payload, r.Header.Get(stripeSignatureHeader)); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/webhooks/stripe", h.StripeWebhook)

		r.Group(func(r chi.Router) {
			r.Use(api.RequireIdentity)

			r.Post("/intents", h.CreatePaymentIntent)
			r.Post("/confirm", h.ConfirmPayment)
			r.Get("/history", h.GetPaymentHistory)
			r.Get("/methods", h.ListPaymentMethods)
			r.Post("/methods", h.AddPaymentMethod)
			r.Delete("/methods/{id}", h.DeletePaymentMethod)
			r.Post("/methods/{id}/default", h.SetDefaultPaymentMethod)
			r.Post("/methods/{id}/auto-pay", h.SetAutoPay)
		})
	})
}
