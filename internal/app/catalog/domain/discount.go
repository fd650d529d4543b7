package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount is a percentage taken off an item's price.
//
// The percentage is deliberately unbounded: values above 100 or below 0 are
// stored as given. Only the effective price is clamped, see PricingCalculator.
type Discount struct {
	percent decimal.Decimal
}

// NewDiscount creates a discount of the given percentage.
func NewDiscount(percent decimal.Decimal) Discount {
	return Discount{percent: percent}
}

// NoDiscount is the zero discount every item starts with.
func NoDiscount() Discount {
	return Discount{percent: decimal.Zero}
}

// Percent returns the discount percentage.
func (d Discount) Percent() decimal.Decimal {
	return d.percent
}

// IsZero reports whether the discount takes nothing off.
func (d Discount) IsZero() bool {
	return d.percent.IsZero()
}

// Multiplier returns percent/100.
func (d Discount) Multiplier() decimal.Decimal {
	return d.percent.Div(hundred)
}

// Equal compares percentages by value.
func (d Discount) Equal(other Discount) bool {
	return d.percent.Equal(other.percent)
}
