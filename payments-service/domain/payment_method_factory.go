package domain

import (
	"strings"

	"github.com/servicehub/booking-system/shared/models"
)

// PaymentMethodFactory builds saved payment methods from the instrument the
// gateway holds, validating the details each type requires.
type PaymentMethodFactory struct{}

// NewPaymentMethodFactory creates a new payment method factory
func NewPaymentMethodFactory() *PaymentMethodFactory {
	return &PaymentMethodFactory{}
}

// CreatePaymentMethod creates a method owned by clientID, stored under the
// gateway customer customerRef.
func (f *PaymentMethodFactory) CreatePaymentMethod(clientID models.ID, customerRef string, details *MethodDetails) (*PaymentMethod, error) {
	if details == nil {
		return nil, models.NewInvalidInput("payment method details are required")
	}
	if clientID.IsZero() {
		return nil, models.NewInvalidInput("client ID is required")
	}
	if strings.TrimSpace(details.Ref) == "" {
		return nil, models.NewInvalidInput("payment method ID is required")
	}
	if customerRef == "" {
		return nil, models.NewInvalidInput("gateway customer is required")
	}

	methodType, err := NewPaymentMethodType(details.Type)
	if err != nil {
		return nil, err
	}

	method := &PaymentMethod{
		ID:                 models.GenerateUUID(),
		ClientID:           clientID,
		Type:               methodType,
		GatewayMethodRef:   details.Ref,
		GatewayCustomerRef: customerRef,
		LastFour:           details.LastFour,
		CreatedAt:          models.NewTimestamps().CreatedAt,
	}

	switch methodType {
	case PaymentMethodTypeCard:
		return f.withCard(method, details)
	case PaymentMethodTypeSEPADebit:
		return method, nil
	}
	return nil, models.NewInvalidInput("unsupported payment method type: " + details.Type)
}

func (f *PaymentMethodFactory) withCard(method *PaymentMethod, details *MethodDetails) (*PaymentMethod, error) {
	if details.ExpiryMonth < 1 || details.ExpiryMonth > 12 || details.ExpiryYear <= 0 {
		return nil, models.NewInvalidInput("card expiry is invalid")
	}

	method.CardBrand = details.Brand
	method.ExpiryMonth = details.ExpiryMonth
	method.ExpiryYear = details.ExpiryYear
	return method, nil
}
