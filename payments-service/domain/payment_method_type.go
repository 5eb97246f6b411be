package domain

import (
	"github.com/servicehub/booking-system/shared/models"
)

// PaymentMethodType is the gateway's instrument type
type PaymentMethodType string

const (
	PaymentMethodTypeCard      PaymentMethodType = "card"
	PaymentMethodTypeSEPADebit PaymentMethodType = "sepa_debit"
)

var allPaymentMethodTypes = map[string]PaymentMethodType{
	PaymentMethodTypeCard.String():      PaymentMethodTypeCard,
	PaymentMethodTypeSEPADebit.String(): PaymentMethodTypeSEPADebit,
}

func NewPaymentMethodType(value string) (PaymentMethodType, error) {
	if methodType, ok := allPaymentMethodTypes[value]; ok {
		return methodType, nil
	}
	return "", models.NewInvalidInput("unsupported payment method type: " + value)
}

func (pt PaymentMethodType) String() string {
	return string(pt)
}
