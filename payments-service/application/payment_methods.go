package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/models"
)

// AddPaymentMethodCommand saves an instrument the client tokenized at the gateway
type AddPaymentMethodCommand struct {
	PaymentMethodRef string `json:"payment_method_id"`
	SetDefault       bool   `json:"set_default"`
	AutoPay          bool   `json:"auto_pay"`
	ClientID         string `json:"-"`
}

// PaymentMethodCommand targets one saved method of the client
type PaymentMethodCommand struct {
	MethodID string `json:"-"`
	ClientID string `json:"-"`
	AutoPay  bool   `json:"auto_pay"`
}

// PaymentMethodsResponse lists a client's saved methods, default first
type PaymentMethodsResponse struct {
	PaymentMethods []*PaymentMethodResponse `json:"payment_methods"`
}

type paymentMethods struct {
	paymentMethodRepository domain.PaymentMethodRepository
	gateway                 domain.PaymentGateway
	logger                  *slog.Logger
}

func (p *paymentMethods) load(ctx context.Context, cmd *PaymentMethodCommand) (*domain.PaymentMethod, error) {
	clientID, err := parseID(cmd.ClientID, "client ID")
	if err != nil {
		return nil, err
	}
	methodID, err := parseID(cmd.MethodID, "payment method ID")
	if err != nil {
		return nil, err
	}

	method, err := p.paymentMethodRepository.FindByID(ctx, methodID, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment method")
	}
	if method == nil {
		return nil, domain.ErrPaymentMethodNotFound
	}
	return method, nil
}

// AddPaymentMethod attaches an instrument to the client's gateway customer and
// saves it. The first saved method becomes the default; a later one replaces
// the default when SetDefault is set.
type AddPaymentMethod struct {
	paymentMethods
	factory *domain.PaymentMethodFactory
}

// NewAddPaymentMethod creates a new AddPaymentMethod use case
func NewAddPaymentMethod(
	paymentMethodRepository domain.PaymentMethodRepository,
	gateway domain.PaymentGateway,
	logger *slog.Logger,
) *AddPaymentMethod {
	return &AddPaymentMethod{
		paymentMethods: paymentMethods{paymentMethodRepository, gateway, logger},
		factory:        domain.NewPaymentMethodFactory(),
	}
}

func (uc *AddPaymentMethod) Execute(ctx context.Context, cmd *AddPaymentMethodCommand) (*PaymentMethodResponse, error) {
	clientID, err := parseID(cmd.ClientID, "client ID")
	if err != nil {
		return nil, err
	}
	if cmd.PaymentMethodRef == "" {
		return nil, models.NewInvalidInput("payment method ID is required")
	}

	customerRef, err := ensureCustomer(ctx, uc.paymentMethodRepository, uc.gateway, clientID)
	if err != nil {
		return nil, err
	}

	details, err := uc.gateway.RetrieveMethod(ctx, cmd.PaymentMethodRef)
	if err != nil {
		return nil, err
	}
	method, err := uc.factory.CreatePaymentMethod(clientID, customerRef, details)
	if err != nil {
		return nil, err
	}

	if err := uc.gateway.AttachMethod(ctx, method.GatewayMethodRef, customerRef); err != nil {
		return nil, err
	}

	existing, err := uc.paymentMethodRepository.FindByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}
	method.IsDefault = cmd.SetDefault || len(existing) == 0
	method.AutoPay = cmd.AutoPay

	if method.IsDefault {
		if err := uc.gateway.SetDefaultMethod(ctx, customerRef, method.GatewayMethodRef); err != nil {
			return nil, err
		}
	}

	if err := uc.paymentMethodRepository.Create(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to save payment method")
	}

	uc.logger.InfoContext(ctx, "payment method added",
		slog.String("payment_method_id", method.ID.String()),
		slog.String("client_id", clientID.String()),
		slog.Bool("is_default", method.IsDefault),
	)
	return newPaymentMethodResponse(method), nil
}

// ListPaymentMethods use case
type ListPaymentMethods struct {
	paymentMethodRepository domain.PaymentMethodRepository
}

// NewListPaymentMethods creates a new ListPaymentMethods use case
func NewListPaymentMethods(paymentMethodRepository domain.PaymentMethodRepository) *ListPaymentMethods {
	return &ListPaymentMethods{paymentMethodRepository: paymentMethodRepository}
}

func (uc *ListPaymentMethods) Execute(ctx context.Context, clientID string) (*PaymentMethodsResponse, error) {
	id, err := parseID(clientID, "client ID")
	if err != nil {
		return nil, err
	}

	methods, err := uc.paymentMethodRepository.FindByClient(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	response := &PaymentMethodsResponse{PaymentMethods: make([]*PaymentMethodResponse, 0, len(methods))}
	for _, method := range methods {
		response.PaymentMethods = append(response.PaymentMethods, newPaymentMethodResponse(method))
	}
	return response, nil
}

// DeletePaymentMethod detaches a method at the gateway and removes it. When
// it was the default, the most recent remaining method takes its place.
type DeletePaymentMethod struct {
	paymentMethods
}

// NewDeletePaymentMethod creates a new DeletePaymentMethod use case
func NewDeletePaymentMethod(
	paymentMethodRepository domain.PaymentMethodRepository,
	gateway domain.PaymentGateway,
	logger *slog.Logger,
) *DeletePaymentMethod {
	return &DeletePaymentMethod{paymentMethods{paymentMethodRepository, gateway, logger}}
}

func (uc *DeletePaymentMethod) Execute(ctx context.Context, cmd *PaymentMethodCommand) error {
	method, err := uc.load(ctx, cmd)
	if err != nil {
		return err
	}

	if err := uc.gateway.DetachMethod(ctx, method.GatewayMethodRef); err != nil {
		return err
	}
	if err := uc.paymentMethodRepository.Delete(ctx, method.ID, method.ClientID); err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return err
		}
		return errors.Wrap(err, "failed to delete payment method")
	}

	if !method.IsDefault {
		return nil
	}

	remaining, err := uc.paymentMethodRepository.FindByClient(ctx, method.ClientID)
	if err != nil {
		return errors.Wrap(err, "failed to list payment methods")
	}
	if len(remaining) == 0 {
		return nil
	}

	promoted := remaining[0]
	if err := uc.paymentMethodRepository.SetDefault(ctx, promoted.ID, promoted.ClientID); err != nil {
		return errors.Wrap(err, "failed to promote payment method")
	}
	if err := uc.gateway.SetDefaultMethod(ctx, promoted.GatewayCustomerRef, promoted.GatewayMethodRef); err != nil {
		uc.logger.WarnContext(ctx, "failed to update gateway default method",
			slog.String("payment_method_id", promoted.ID.String()),
			slog.Any("error", err),
		)
	}
	return nil
}

// SetDefaultPaymentMethod makes a method the client's default
type SetDefaultPaymentMethod struct {
	paymentMethods
}

// NewSetDefaultPaymentMethod creates a new SetDefaultPaymentMethod use case
func NewSetDefaultPaymentMethod(
	paymentMethodRepository domain.PaymentMethodRepository,
	gateway domain.PaymentGateway,
	logger *slog.Logger,
) *SetDefaultPaymentMethod {
	return &SetDefaultPaymentMethod{paymentMethods{paymentMethodRepository, gateway, logger}}
}

func (uc *SetDefaultPaymentMethod) Execute(ctx context.Context, cmd *PaymentMethodCommand) (*PaymentMethodResponse, error) {
	method, err := uc.load(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if method.IsDefault {
		return newPaymentMethodResponse(method), nil
	}

	if err := uc.gateway.SetDefaultMethod(ctx, method.GatewayCustomerRef, method.GatewayMethodRef); err != nil {
		return nil, err
	}
	if err := uc.paymentMethodRepository.SetDefault(ctx, method.ID, method.ClientID); err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to set default payment method")
	}

	method.IsDefault = true
	return newPaymentMethodResponse(method), nil
}

// SetAutoPay toggles automatic charging on a saved method
type SetAutoPay struct {
	paymentMethods
}

// NewSetAutoPay creates a new SetAutoPay use case
func NewSetAutoPay(paymentMethodRepository domain.PaymentMethodRepository, logger *slog.Logger) *SetAutoPay {
	return &SetAutoPay{paymentMethods{paymentMethodRepository: paymentMethodRepository, logger: logger}}
}

func (uc *SetAutoPay) Execute(ctx context.Context, cmd *PaymentMethodCommand) (*PaymentMethodResponse, error) {
	method, err := uc.load(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err := uc.paymentMethodRepository.SetAutoPay(ctx, method.ID, method.ClientID, cmd.AutoPay); err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update auto-pay")
	}

	method.AutoPay = cmd.AutoPay
	return newPaymentMethodResponse(method), nil
}
