package domain

import (
	"testing"

	"github.com/servicehub/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFactory_CreatePaymentMethod(t *testing.T) {
	tests := []struct {
		name          string
		details       *MethodDetails
		customerRef   string
		expectedError string
	}{
		{
			name:        "card",
			details:     &MethodDetails{Ref: "pm_card", Type: "card", Brand: "visa", LastFour: "4242", ExpiryMonth: 12, ExpiryYear: 2030},
			customerRef: "cus_1",
		},
		{
			name:        "sepa debit",
			details:     &MethodDetails{Ref: "pm_sepa", Type: "sepa_debit", LastFour: "3000"},
			customerRef: "cus_1",
		},
		{
			name:          "unsupported type",
			details:       &MethodDetails{Ref: "pm_x", Type: "alipay"},
			customerRef:   "cus_1",
			expectedError: "unsupported payment method type: alipay",
		},
		{
			name:          "card without expiry",
			details:       &MethodDetails{Ref: "pm_card", Type: "card", LastFour: "4242"},
			customerRef:   "cus_1",
			expectedError: "card expiry is invalid",
		},
		{
			name:          "missing customer",
			details:       &MethodDetails{Ref: "pm_card", Type: "card", ExpiryMonth: 1, ExpiryYear: 2030},
			expectedError: "gateway customer is required",
		},
		{
			name:          "missing details",
			customerRef:   "cus_1",
			expectedError: "payment method details are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, err := NewPaymentMethodFactory().CreatePaymentMethod(testRequesterID, tt.customerRef, tt.details)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testRequesterID, method.ClientID)
			assert.Equal(t, tt.details.Ref, method.GatewayMethodRef)
			assert.Equal(t, tt.customerRef, method.GatewayCustomerRef)
			assert.False(t, method.IsDefault)
			assert.False(t, method.CanAutoPay())
		})
	}
}

func TestPaymentMethod_CanAutoPay(t *testing.T) {
	assert.True(t, (&PaymentMethod{IsDefault: true, AutoPay: true}).CanAutoPay())
	assert.False(t, (&PaymentMethod{IsDefault: false, AutoPay: true}).CanAutoPay())
	assert.False(t, (&PaymentMethod{IsDefault: true, AutoPay: false}).CanAutoPay())
}
