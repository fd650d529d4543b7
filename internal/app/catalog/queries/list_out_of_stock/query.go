package list_out_of_stock

import (
	"context"
	"iter"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
)

// Query handles the list out of stock query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list out of stock query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns a lazy, restartable sequence of out-of-stock items.
// Nothing is read until the sequence is ranged over.
func (q *Query) Execute(ctx context.Context) iter.Seq2[domain.ItemSnapshot, error] {
	return q.readModel.OutOfStock(ctx)
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[domain.ItemSnapshot, error]) ([]domain.ItemSnapshot, error) {
	items := make([]domain.ItemSnapshot, 0)
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
