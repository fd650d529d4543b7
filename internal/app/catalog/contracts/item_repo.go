package contracts

import (
	"context"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// ItemRepository defines the interface for item persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
// Reads go through the memdb.Reader the caller passes, normally the
// transaction the resulting mutations will be committed in.
type ItemRepository interface {
	// NextID allocates the next item id. The returned mutation advances the
	// sequence and must be committed with the item's insert.
	NextID(ctx context.Context, r memdb.Reader) (int64, *memdb.Mutation, error)

	// InsertMut creates a mutation for inserting a new item
	InsertMut(item *domain.Item) *memdb.Mutation

	// UpdateMut creates a mutation for updating an item (only dirty fields)
	UpdateMut(item *domain.Item) *memdb.Mutation

	// DeleteMut creates a mutation removing an item
	DeleteMut(item *domain.Item) *memdb.Mutation

	// GetByID retrieves an item by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, r memdb.Reader, itemID int64) (*domain.Item, error)

	// FindByCategoryAndBrand returns every item with exactly this category and brand
	FindByCategoryAndBrand(ctx context.Context, r memdb.Reader, category domain.Category, brand string) ([]*domain.Item, error)

	// FindOutOfStock returns every item whose stock is zero, in insertion order
	FindOutOfStock(ctx context.Context, r memdb.Reader) ([]*domain.Item, error)
}
