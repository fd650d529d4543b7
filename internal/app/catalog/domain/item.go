package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// Item is the aggregate root of the catalog: one stock-keeping record.
// Identity and classification are immutable; only stock and discount change.
type Item struct {
	id             int64
	category       Category
	size           Size
	price          *Money
	brand          string
	color          string
	stock          int64
	stockUpdatedAt time.Time
	discount       Discount
	createdAt      time.Time

	// Change tracking for column-level repository updates
	changes *ChangeTracker

	// Domain events to be written to the outbox
	events []DomainEvent
}

// NewItem validates the input and creates an item with no discount whose
// stock was last written at now. Brand and color may be empty.
func NewItem(id int64, category Category, stock int64, size Size, price *Money, brand, color string, now time.Time) (*Item, error) {
	if err := ValidateNewItem(category, stock, size, price); err != nil {
		return nil, err
	}

	it := &Item{
		id:             id,
		category:       category,
		size:           size,
		price:          price,
		brand:          brand,
		color:          color,
		stock:          stock,
		stockUpdatedAt: now,
		discount:       NoDiscount(),
		createdAt:      now,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0, 1),
	}

	it.recordEvent(&ItemAddedEvent{
		ItemID:    it.id,
		Category:  it.category,
		Size:      it.size,
		Price:     it.price.String(),
		Brand:     it.brand,
		Color:     it.color,
		Stock:     it.stock,
		CreatedAt: now,
	})

	return it, nil
}

// ValidateNewItem checks the creation constraints without building an item,
// so callers can reject input before allocating an id.
func ValidateNewItem(category Category, stock int64, size Size, price *Money) error {
	if !category.Valid() {
		return apperr.Validationf(FieldCategory, "unknown category %q", string(category))
	}
	if !size.Valid() {
		return apperr.Validationf(FieldSize, "unknown size %q", string(size))
	}
	if stock < 0 {
		return apperr.Validationf(FieldStockQuantity, "must not be negative, got %d", stock)
	}
	if price == nil {
		return apperr.NewValidationError(FieldPrice, "is required")
	}
	if price.IsNegative() {
		return apperr.Validationf(FieldPrice, "must not be negative, got %s", price)
	}
	return nil
}

// ReconstructItem reconstitutes an Item from storage.
func ReconstructItem(
	id int64,
	category Category,
	size Size,
	price *Money,
	brand, color string,
	stock int64,
	stockUpdatedAt time.Time,
	discount Discount,
	createdAt time.Time,
) *Item {
	return &Item{
		id:             id,
		category:       category,
		size:           size,
		price:          price,
		brand:          brand,
		color:          color,
		stock:          stock,
		stockUpdatedAt: stockUpdatedAt,
		discount:       discount,
		createdAt:      createdAt,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}
}

// Getters
func (it *Item) ID() int64                   { return it.id }
func (it *Item) Category() Category          { return it.category }
func (it *Item) Size() Size                  { return it.size }
func (it *Item) Price() *Money               { return it.price }
func (it *Item) Brand() string               { return it.brand }
func (it *Item) Color() string               { return it.color }
func (it *Item) Stock() int64                { return it.stock }
func (it *Item) StockUpdatedAt() time.Time   { return it.stockUpdatedAt }
func (it *Item) Discount() Discount          { return it.discount }
func (it *Item) CreatedAt() time.Time        { return it.createdAt }
func (it *Item) Changes() *ChangeTracker     { return it.changes }
func (it *Item) DomainEvents() []DomainEvent { return it.events }

// IsOutOfStock reports whether stock is zero.
func (it *Item) IsOutOfStock() bool {
	return it.stock == 0
}

// Matches reports whether the item has exactly this category and brand.
// Brand comparison is case-sensitive.
func (it *Item) Matches(category Category, brand string) bool {
	return it.category == category && it.brand == brand
}

// UpdateStock sets the stock and stamps the write time, even when the value
// does not change.
func (it *Item) UpdateStock(stock int64, now time.Time) error {
	if stock < 0 {
		return apperr.Validationf(FieldStockQuantity, "must not be negative, got %d", stock)
	}

	previous := it.stock
	it.stock = stock
	it.stockUpdatedAt = now
	it.changes.MarkDirty(DirtyStock)
	it.changes.MarkDirty(DirtyStockUpdatedAt)

	it.recordEvent(&StockUpdatedEvent{
		ItemID:        it.id,
		PreviousStock: previous,
		Stock:         stock,
		UpdatedAt:     now,
	})

	return nil
}

// ApplyDiscount replaces the item's discount. Re-applying the current
// percentage leaves the item clean and records no event.
func (it *Item) ApplyDiscount(discount Discount, now time.Time) {
	previous := it.discount
	if previous.Equal(discount) {
		return
	}
	it.discount = discount
	it.changes.MarkDirty(DirtyDiscount)

	it.recordEvent(&DiscountAppliedEvent{
		ItemID:          it.id,
		Category:        it.category,
		Brand:           it.brand,
		PreviousPercent: previous.Percent().String(),
		DiscountPercent: discount.Percent().String(),
		AppliedAt:       now,
	})
}

// Purge records the item's removal by the retention sweep.
// The caller deletes the row; the item must not be used afterwards.
func (it *Item) Purge(now time.Time) {
	it.recordEvent(&ItemPurgedEvent{
		ItemID:         it.id,
		StockUpdatedAt: it.stockUpdatedAt,
		ElapsedUnits:   ElapsedUnits(it.stockUpdatedAt, now),
		PurgedAt:       now,
	})
}

// EffectivePrice returns the price with the discount applied.
func (it *Item) EffectivePrice() *Money {
	return defaultPricingCalculator.CalculateEffectivePrice(it)
}

// Snapshot returns a read-only copy of the item's current values.
func (it *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ID:              it.id,
		Category:        it.category,
		Size:            it.size,
		Price:           it.price.Decimal(),
		Brand:           it.brand,
		Color:           it.color,
		Stock:           it.stock,
		StockUpdatedAt:  it.stockUpdatedAt,
		DiscountPercent: it.discount.Percent(),
		EffectivePrice:  it.EffectivePrice().Decimal(),
		CreatedAt:       it.createdAt,
	}
}

func (it *Item) recordEvent(event DomainEvent) {
	it.events = append(it.events, event)
}

// ItemSnapshot is the value handed to callers. It holds no reference into
// the catalog, so changing it has no effect on stored items.
type ItemSnapshot struct {
	ID              int64
	Category        Category
	Size            Size
	Price           decimal.Decimal
	Brand           string
	Color           string
	Stock           int64
	StockUpdatedAt  time.Time
	DiscountPercent decimal.Decimal
	EffectivePrice  decimal.Decimal
	CreatedAt       time.Time
}

// OutOfStock reports whether the snapshot had zero stock.
func (s ItemSnapshot) OutOfStock() bool {
	return s.Stock == 0
}
