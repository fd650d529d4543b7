package domain

import (
	"github.com/shopspring/decimal"
)

// PricingCalculator is a domain service for price and discount calculations.
// Item delegates to it so the formulas live in one place.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

var defaultPricingCalculator = NewPricingCalculator()

// CalculateDiscountAmount calculates the discount amount (not the final price).
// Formula: discountAmount = price * multiplier
func (pc *PricingCalculator) CalculateDiscountAmount(price *Money, multiplier decimal.Decimal) *Money {
	return price.MultiplyBy(multiplier)
}

// ApplyDiscount applies a discount to a price and returns the final price.
// Formula: finalPrice = price - (price * multiplier), never below zero.
// A negative multiplier raises the price.
func (pc *PricingCalculator) ApplyDiscount(price *Money, multiplier decimal.Decimal) *Money {
	final := price.Subtract(pc.CalculateDiscountAmount(price, multiplier))
	if final.IsNegative() {
		return Zero()
	}
	return final
}

// CalculateEffectivePrice returns the price an item sells at with its discount applied.
func (pc *PricingCalculator) CalculateEffectivePrice(item *Item) *Money {
	discount := item.Discount()
	if discount.IsZero() {
		return item.Price()
	}
	return pc.ApplyDiscount(item.Price(), discount.Multiplier())
}
