package list_items

import (
	"context"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
)

// Request contains filtering and pagination parameters for listing items.
type Request struct {
	Category *string
	Brand    *string
	PageSize int
	Offset   int
}

// Query handles the list items query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list items query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of items. An unknown category is a validation
// error rather than an empty result.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	filter := &contracts.ListFilter{
		Brand:    req.Brand,
		PageSize: req.PageSize,
		Offset:   req.Offset,
	}

	if req.Category != nil {
		category, err := domain.ParseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		filter.Category = &category
	}

	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return q.readModel.ListItems(ctx, filter)
}
