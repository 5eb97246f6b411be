package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a request does not name one
const DefaultCurrency = "EUR"

// minorUnitExponent is the number of decimal places of the gateway's minor unit.
const minorUnitExponent = 2

// Money represents an amount in the gateway's minor unit (cents)
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney creates a new money value
func NewMoney(amount int64, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: strings.ToLower(currency),
	}
}

// NewMoneyFromDecimal converts a major-unit decimal amount into minor units,
// rounding half away from zero at the second decimal place.
func NewMoneyFromDecimal(amount decimal.Decimal, currency string) Money {
	cents := amount.Shift(minorUnitExponent).Round(0)
	return NewMoney(cents.IntPart(), currency)
}

// Decimal returns the amount in major units
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -minorUnitExponent)
}

// IsZero checks if money is zero
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// IsPositive checks if money is positive
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// ParseAmount parses a major-unit amount and validates it is positive with at
// most two decimal places.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, NewInvalidInput("invalid amount")
	}
	if !amount.IsPositive() {
		return decimal.Zero, NewInvalidInput("amount must be positive")
	}
	if !amount.Equal(amount.Round(minorUnitExponent)) {
		return decimal.Zero, NewInvalidInput("amount supports at most two decimal places")
	}
	return amount, nil
}
