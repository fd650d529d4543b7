package m_item

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb/memdbtest"
)

func TestModel_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := memdb.New(TableName)
	m := NewModel()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	in := &Data{
		ItemID:          4,
		Category:        "MENS_SHIRTS",
		Size:            "M",
		Price:           decimal.RequireFromString("49.90"),
		Brand:           "Arrow",
		Color:           "white",
		Stock:           2,
		StockUpdatedAt:  now,
		DiscountPercent: decimal.Zero,
		CreatedAt:       now,
	}
	require.NoError(t, memdbtest.Apply(ctx, db, m.InsertMut(in)))

	t.Run("insert decodes back", func(t *testing.T) {
		row, err := db.ReadRow(ctx, TableName, memdb.IntKey(4))
		require.NoError(t, err)

		var out Data
		require.NoError(t, row.ToStruct(&out))
		assert.Equal(t, in.ItemID, out.ItemID)
		assert.True(t, in.Price.Equal(out.Price))
		assert.Equal(t, now, out.StockUpdatedAt)
	})

	t.Run("update writes only the given columns", func(t *testing.T) {
		later := now.Add(time.Hour)
		mut := m.UpdateMut(4, map[string]any{Stock: int64(0), StockUpdatedAt: later})
		assert.Equal(t, []string{Stock, StockUpdatedAt}, mut.Columns)
		require.NoError(t, memdbtest.Apply(ctx, db, mut))

		row, err := db.ReadRow(ctx, TableName, memdb.IntKey(4))
		require.NoError(t, err)
		var out Data
		require.NoError(t, row.ToStruct(&out))
		assert.Equal(t, int64(0), out.Stock)
		assert.Equal(t, later, out.StockUpdatedAt)
		assert.Equal(t, "Arrow", out.Brand)
	})

	t.Run("empty update is nil", func(t *testing.T) {
		assert.Nil(t, m.UpdateMut(4, nil))
	})

	t.Run("duplicate insert fails", func(t *testing.T) {
		err := memdbtest.Apply(ctx, db, m.InsertMut(in))
		assert.ErrorIs(t, err, memdb.ErrRowExists)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, memdbtest.Apply(ctx, db, m.DeleteMut(4)))
		_, err := db.ReadRow(ctx, TableName, memdb.IntKey(4))
		assert.ErrorIs(t, err, memdb.ErrRowNotFound)
	})
}
