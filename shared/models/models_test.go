package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected int64
	}{
		{name: "whole amount", amount: "50", expected: 5000},
		{name: "two decimals", amount: "50.00", expected: 5000},
		{name: "half rounds up", amount: "10.005", expected: 1001},
		{name: "below half rounds down", amount: "19.994", expected: 1999},
		{name: "binary unfriendly value", amount: "0.1", expected: 10},
		{name: "third decimal half", amount: "0.125", expected: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money := NewMoneyFromDecimal(decimal.RequireFromString(tt.amount), "EUR")
			assert.Equal(t, tt.expected, money.Amount)
			assert.Equal(t, "eur", money.Currency)
		})
	}
}

func TestMoney_Decimal(t *testing.T) {
	money := NewMoney(5050, "eur")
	assert.True(t, decimal.RequireFromString("50.50").Equal(money.Decimal()))
	assert.True(t, money.IsPositive())
	assert.False(t, money.IsZero())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      string
		expectedError string
	}{
		{name: "valid", raw: "50.00", expected: "50"},
		{name: "trims spaces", raw: " 12.5 ", expected: "12.5"},
		{name: "not a number", raw: "abc", expectedError: "invalid amount"},
		{name: "zero", raw: "0", expectedError: "amount must be positive"},
		{name: "negative", raw: "-3", expectedError: "amount must be positive"},
		{name: "too precise", raw: "1.234", expectedError: "at most two decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.raw)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(amount))
		})
	}
}

func TestError_Is(t *testing.T) {
	notAvailable := NewPreconditionFailed("provider not available")
	wrapped := errors.Wrap(notAvailable, "failed to assign request")

	assert.True(t, errors.Is(wrapped, ErrPreconditionFailed))
	assert.True(t, errors.Is(wrapped, notAvailable))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, NewPreconditionFailed("provider not available")))

	kind, message, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindPreconditionFailed, kind)
	assert.Equal(t, "provider not available", message)

	_, _, ok = KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestNewID(t *testing.T) {
	id, err := NewID("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())

	_, err = NewID("nope")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, GenerateUUID().IsZero())
}
