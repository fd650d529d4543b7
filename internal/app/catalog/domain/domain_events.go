package domain

import (
	"strconv"
	"time"
)

// Event type names as written to the outbox.
const (
	EventItemAdded       = "item.added"
	EventStockUpdated    = "item.stock.updated"
	EventDiscountApplied = "item.discount.applied"
	EventItemPurged      = "item.purged"
)

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

func itemAggregateID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ItemAddedEvent is emitted when an item enters the catalog.
type ItemAddedEvent struct {
	ItemID    int64
	Category  Category
	Size      Size
	Price     string
	Brand     string
	Color     string
	Stock     int64
	CreatedAt time.Time
}

func (e *ItemAddedEvent) EventType() string     { return EventItemAdded }
func (e *ItemAddedEvent) AggregateID() string   { return itemAggregateID(e.ItemID) }
func (e *ItemAddedEvent) OccurredAt() time.Time { return e.CreatedAt }

// StockUpdatedEvent is emitted on every stock write, including same-value writes.
type StockUpdatedEvent struct {
	ItemID        int64
	PreviousStock int64
	Stock         int64
	UpdatedAt     time.Time
}

func (e *StockUpdatedEvent) EventType() string     { return EventStockUpdated }
func (e *StockUpdatedEvent) AggregateID() string   { return itemAggregateID(e.ItemID) }
func (e *StockUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// DiscountAppliedEvent is emitted for each item a (category, brand) discount reaches.
type DiscountAppliedEvent struct {
	ItemID          int64
	Category        Category
	Brand           string
	PreviousPercent string
	DiscountPercent string
	AppliedAt       time.Time
}

func (e *DiscountAppliedEvent) EventType() string     { return EventDiscountApplied }
func (e *DiscountAppliedEvent) AggregateID() string   { return itemAggregateID(e.ItemID) }
func (e *DiscountAppliedEvent) OccurredAt() time.Time { return e.AppliedAt }

// ItemPurgedEvent is emitted when the retention sweep removes an item.
type ItemPurgedEvent struct {
	ItemID         int64
	StockUpdatedAt time.Time
	ElapsedUnits   int64
	PurgedAt       time.Time
}

func (e *ItemPurgedEvent) EventType() string     { return EventItemPurged }
func (e *ItemPurgedEvent) AggregateID() string   { return itemAggregateID(e.ItemID) }
func (e *ItemPurgedEvent) OccurredAt() time.Time { return e.PurgedAt }
