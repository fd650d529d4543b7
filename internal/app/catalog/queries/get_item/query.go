package get_item

import (
	"context"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
)

// Request contains the item ID to retrieve.
type Request struct {
	ItemID int64
}

// Query handles the get item query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get item query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves an item by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.ItemSnapshot, error) {
	return q.readModel.GetItemByID(ctx, req.ItemID)
}
