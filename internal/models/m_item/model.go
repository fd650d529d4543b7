package m_item

import (
	"maps"
	"slices"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Model provides a facade for type-safe operations on the items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting an item. It fails at commit time if
// the id is already taken.
func (m *Model) InsertMut(data *Data) *memdb.Mutation {
	return memdb.Insert(
		TableName,
		memdb.IntKey(data.ItemID),
		[]string{
			ItemID,
			Category,
			Size,
			Price,
			Brand,
			Color,
			Stock,
			StockUpdatedAt,
			DiscountPercent,
			CreatedAt,
		},
		[]any{
			data.ItemID,
			data.Category,
			data.Size,
			data.Price,
			data.Brand,
			data.Color,
			data.Stock,
			data.StockUpdatedAt,
			data.DiscountPercent,
			data.CreatedAt,
		},
	)
}

// UpdateMut creates a mutation for updating specific item columns.
// The updates map should contain column names as keys and new values.
func (m *Model) UpdateMut(itemID int64, updates map[string]any) *memdb.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := slices.Sorted(maps.Keys(updates))
	values := make([]any, 0, len(columns))
	for _, col := range columns {
		values = append(values, updates[col])
	}

	return memdb.Update(TableName, memdb.IntKey(itemID), columns, values)
}

// DeleteMut creates a mutation for deleting an item (hard delete).
func (m *Model) DeleteMut(itemID int64) *memdb.Mutation {
	return memdb.Delete(TableName, memdb.IntKey(itemID))
}
