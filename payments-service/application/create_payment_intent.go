package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/models"
)

// CreatePaymentIntentCommand starts a client-side payment of a request
type CreatePaymentIntentCommand struct {
	RequestID       string `json:"request_id"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	ClientID        string `json:"-"`
}

// PaymentIntentResponse is what the client needs to confirm the intent
type PaymentIntentResponse struct {
	PaymentID    string `json:"payment_id"`
	IntentID     string `json:"payment_intent_id"`
	ClientSecret string `json:"client_secret"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
}

// CreatePaymentIntent opens a gateway intent for a payment the client owes.
// Creating one for a failed payment is the manual retry.
type CreatePaymentIntent struct {
	paymentRepository       domain.PaymentRepository
	paymentMethodRepository domain.PaymentMethodRepository
	gateway                 domain.PaymentGateway
	logger                  *slog.Logger
}

// NewCreatePaymentIntent creates a new CreatePaymentIntent use case
func NewCreatePaymentIntent(
	paymentRepository domain.PaymentRepository,
	paymentMethodRepository domain.PaymentMethodRepository,
	gateway domain.PaymentGateway,
	logger *slog.Logger,
) *CreatePaymentIntent {
	return &CreatePaymentIntent{
		paymentRepository:       paymentRepository,
		paymentMethodRepository: paymentMethodRepository,
		gateway:                 gateway,
		logger:                  logger,
	}
}

func (uc *CreatePaymentIntent) Execute(ctx context.Context, cmd *CreatePaymentIntentCommand) (*PaymentIntentResponse, error) {
	clientID, err := parseID(cmd.ClientID, "client ID")
	if err != nil {
		return nil, err
	}
	requestID, err := parseID(cmd.RequestID, "request ID")
	if err != nil {
		return nil, err
	}

	payment, err := uc.paymentRepository.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment")
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.RequesterID != clientID {
		return nil, domain.ErrNotPaymentOwner
	}
	switch payment.Status {
	case domain.PaymentStatusCompleted:
		return nil, domain.ErrPaymentAlreadyCompleted
	case domain.PaymentStatusCancelled:
		return nil, domain.ErrPaymentCancelled
	}

	params := domain.IntentParams{
		Amount:      payment.Money(),
		Description: "Service request " + payment.RequestID.String(),
		Metadata: map[string]string{
			"payment_id": payment.ID.String(),
			"request_id": payment.RequestID.String(),
		},
	}

	if cmd.PaymentMethodID != "" {
		methodID, err := parseID(cmd.PaymentMethodID, "payment method ID")
		if err != nil {
			return nil, err
		}
		method, err := uc.paymentMethodRepository.FindByID(ctx, methodID, clientID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load payment method")
		}
		if method == nil {
			return nil, domain.ErrPaymentMethodNotFound
		}
		params.CustomerRef = method.GatewayCustomerRef
		params.MethodRef = method.GatewayMethodRef
	} else {
		customerRef, err := ensureCustomer(ctx, uc.paymentMethodRepository, uc.gateway, clientID)
		if err != nil {
			return nil, err
		}
		params.CustomerRef = customerRef
	}

	intent, err := uc.gateway.CreateIntent(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := payment.AttachIntent(intent.ID); err != nil {
		return nil, err
	}
	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to save payment")
	}

	uc.logger.InfoContext(ctx, "payment intent created",
		slog.String("payment_id", payment.ID.String()),
		slog.String("intent_id", intent.ID),
	)

	return &PaymentIntentResponse{
		PaymentID:    payment.ID.String(),
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       payment.Amount.StringFixed(2),
		Currency:     payment.Currency,
	}, nil
}

// ensureCustomer returns the client's gateway customer, creating it on first use
func ensureCustomer(
	ctx context.Context,
	repository domain.PaymentMethodRepository,
	gateway domain.PaymentGateway,
	clientID models.ID,
) (string, error) {
	customerRef, err := repository.FindCustomerRef(ctx, clientID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load gateway customer")
	}
	if customerRef != "" {
		return customerRef, nil
	}

	customerRef, err = gateway.CreateCustomer(ctx, clientID)
	if err != nil {
		return "", err
	}
	if err := repository.SaveCustomerRef(ctx, clientID, customerRef); err != nil {
		return "", errors.Wrap(err, "failed to save gateway customer")
	}
	return customerRef, nil
}
