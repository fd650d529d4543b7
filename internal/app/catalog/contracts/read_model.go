package contracts

import (
	"context"
	"iter"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
)

// ListFilter defines filtering options for listing items.
// Nil filters match everything; a non-nil Brand matches exactly, so an empty
// string selects items without a brand.
type ListFilter struct {
	Category *domain.Category
	Brand    *string
	PageSize int
	Offset   int
}

// ListResult contains a page of items and the total number of matches.
type ListResult struct {
	Items      []domain.ItemSnapshot
	TotalCount int64
}

// ReadModel defines the interface for item queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetItemByID retrieves an item snapshot by ID
	GetItemByID(ctx context.Context, itemID int64) (domain.ItemSnapshot, error)

	// ListItems retrieves a page of items in insertion order
	ListItems(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// OutOfStock yields every item with zero stock in insertion order.
	// Each iteration reads a fresh copy of the table.
	OutOfStock(ctx context.Context) iter.Seq2[domain.ItemSnapshot, error]
}
