package domain

import (
	"context"
	"time"

	"github.com/servicehub/booking-system/shared/models"
)

var ErrPaymentMethodNotFound = models.NewNotFound("payment method not found")

// PaymentMethod is an instrument a client saved at the gateway. At most one
// method per client is the default; only the default can carry auto-pay.
type PaymentMethod struct {
	ID                 models.ID
	ClientID           models.ID
	Type               PaymentMethodType
	GatewayMethodRef   string
	GatewayCustomerRef string
	CardBrand          string
	LastFour           string
	ExpiryMonth        int
	ExpiryYear         int
	IsDefault          bool
	AutoPay            bool
	CreatedAt          time.Time
}

// CanAutoPay reports whether completed requests are charged to this method
// without the client being present.
func (m *PaymentMethod) CanAutoPay() bool {
	return m.IsDefault && m.AutoPay
}

// PaymentMethodRepository persists saved payment methods and each client's
// gateway customer reference.
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *PaymentMethod) error
	FindByID(ctx context.Context, id, clientID models.ID) (*PaymentMethod, error)
	FindByClient(ctx context.Context, clientID models.ID) ([]*PaymentMethod, error)
	FindDefault(ctx context.Context, clientID models.ID) (*PaymentMethod, error)
	// SetDefault clears the client's previous default and marks id in one transaction.
	SetDefault(ctx context.Context, id, clientID models.ID) error
	SetAutoPay(ctx context.Context, id, clientID models.ID, autoPay bool) error
	Delete(ctx context.Context, id, clientID models.ID) error
	FindCustomerRef(ctx context.Context, clientID models.ID) (string, error)
	SaveCustomerRef(ctx context.Context, clientID models.ID, customerRef string) error
}
