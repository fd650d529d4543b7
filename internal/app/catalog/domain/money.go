package domain

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with exact decimal arithmetic.
// Money values are immutable; every operation returns a new instance.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) *Money {
	return &Money{amount: amount}
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// Decimal returns the underlying decimal value.
func (m *Money) Decimal() decimal.Decimal {
	return m.amount
}

// Subtract subtracts another Money value from this one.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyBy multiplies this amount by a decimal factor.
func (m *Money) MultiplyBy(factor decimal.Decimal) *Money {
	return &Money{amount: m.amount.Mul(factor)}
}

// IsNegative returns true if the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String renders the amount with two decimal places.
func (m *Money) String() string {
	return m.amount.StringFixed(2)
}
