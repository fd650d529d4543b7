package domain

import (
	"time"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// RetentionUnit is the fixed 30-day "month" staleness is counted in.
// Calendar months are intentionally not used.
const RetentionUnit = 30 * 24 * time.Hour

// DefaultStaleUnits is how many whole units an item must sit at zero stock
// before the sweep removes it.
const DefaultStaleUnits int64 = 3

// RetentionPolicy decides when an out-of-stock item is stale.
type RetentionPolicy struct {
	units int64
}

// NewRetentionPolicy creates a policy that removes items out of stock for at
// least the given number of whole 30-day units.
func NewRetentionPolicy(units int64) (RetentionPolicy, error) {
	if units < 0 {
		return RetentionPolicy{}, apperr.Validationf(FieldStaleUnits, "must not be negative, got %d", units)
	}
	return RetentionPolicy{units: units}, nil
}

// DefaultRetentionPolicy is the three-unit (90 day) policy.
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{units: DefaultStaleUnits}
}

// Units returns the threshold in whole 30-day units.
func (p RetentionPolicy) Units() int64 {
	return p.units
}


// ElapsedUnits counts whole 30-day units between since and now by integer
// division of the elapsed milliseconds. The direction of the difference is
// ignored.
func ElapsedUnits(since, now time.Time) int64 {
	ms := now.Sub(since).Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	return ms / RetentionUnit.Milliseconds()
}

// IsStale reports whether item is out of stock and its last stock write is
// at least the policy's number of units before now.
func (p RetentionPolicy) IsStale(item *Item, now time.Time) bool {
	return item.IsOutOfStock() && ElapsedUnits(item.StockUpdatedAt(), now) >= p.units
}
