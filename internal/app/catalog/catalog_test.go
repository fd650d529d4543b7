package catalog_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_events"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_items"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_out_of_stock"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/sweep_stale_items"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/testutil"
)

func setupCatalog(t *testing.T) (*catalog.Catalog, *clock.MockClock) {
	t.Helper()
	clk := testutil.NewMockClock()
	return catalog.New(memdb.New(), clk), clk
}

func addItem(t *testing.T, c *catalog.Catalog, b *testutil.ItemBuilder) domain.ItemSnapshot {
	t.Helper()
	snap, err := c.AddItem(context.Background(), b.Build())
	require.NoError(t, err)
	return snap
}

func outOfStockIDs(t *testing.T, c *catalog.Catalog) []int64 {
	t.Helper()
	items, err := list_out_of_stock.Collect(c.ListOutOfStock(context.Background()))
	require.NoError(t, err)
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestCatalog_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids from one", func(t *testing.T) {
		c, clk := setupCatalog(t)

		first := addItem(t, c, testutil.NewItemBuilder())
		second := addItem(t, c, testutil.NewItemBuilder().WithBrand("Zara"))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
		assert.Equal(t, clk.Now(), first.StockUpdatedAt)
		assert.True(t, first.DiscountPercent.IsZero())
	})

	t.Run("stores exactly what was given", func(t *testing.T) {
		c, _ := setupCatalog(t)

		snap := addItem(t, c, testutil.NewItemBuilder().
			WithCategory("WOMENS_JEANS").
			WithSize("XL").
			WithStock(3).
			WithPrice("59.50").
			WithBrand("Zara").
			WithColor("black"))

		got, err := c.FindByID(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryWomensJeans, got.Category)
		assert.Equal(t, domain.SizeXL, got.Size)
		assert.Equal(t, int64(3), got.Stock)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("59.5")))
		assert.Equal(t, "Zara", got.Brand)
		assert.Equal(t, "black", got.Color)
	})

	t.Run("rejected input consumes no id", func(t *testing.T) {
		c, _ := setupCatalog(t)

		_, err := c.AddItem(ctx, testutil.NewItemBuilder().WithCategory("HATS").Build())
		require.ErrorIs(t, err, apperr.ErrValidation)
		_, err = c.AddItem(ctx, testutil.NewItemBuilder().WithStock(-1).Build())
		require.ErrorIs(t, err, apperr.ErrValidation)
		_, err = c.AddItem(ctx, testutil.NewItemBuilder().WithPrice("-0.01").Build())
		require.ErrorIs(t, err, apperr.ErrValidation)
		_, err = c.AddItem(ctx, testutil.NewItemBuilder().WithSize("XXS").Build())
		require.ErrorIs(t, err, apperr.ErrValidation)

		snap := addItem(t, c, testutil.NewItemBuilder())
		assert.Equal(t, int64(1), snap.ID)

		res, err := c.ListItems(ctx, &list_items.Request{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.TotalCount)
	})

	t.Run("concurrent adds get distinct ids", func(t *testing.T) {
		c, _ := setupCatalog(t)

		const n = 50
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				snap, err := c.AddItem(ctx, testutil.NewItemBuilder().Build())
				assert.NoError(t, err)
				ids <- snap.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool, n)
		for id := range ids {
			assert.False(t, seen[id], "id %d handed out twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
		for id := int64(1); id <= n; id++ {
			assert.True(t, seen[id], "missing id %d", id)
		}
	})
}

func TestCatalog_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("every non-negative value refreshes the timestamp", func(t *testing.T) {
		c, clk := setupCatalog(t)
		item := addItem(t, c, testutil.NewItemBuilder().WithStock(4))

		for _, v := range []int64{4, 0, 0, 17} {
			clk.AdvanceDays(1)
			snap, err := c.UpdateStock(ctx, item.ID, v)
			require.NoError(t, err)
			assert.Equal(t, v, snap.Stock)
			assert.Equal(t, clk.Now(), snap.StockUpdatedAt)

			stored, err := c.FindByID(ctx, item.ID)
			require.NoError(t, err)
			assert.Equal(t, v, stored.Stock)
			assert.Equal(t, clk.Now(), stored.StockUpdatedAt)
		}
	})

	t.Run("negative stock fails without mutation", func(t *testing.T) {
		c, clk := setupCatalog(t)
		item := addItem(t, c, testutil.NewItemBuilder().WithStock(4))
		clk.AdvanceDays(3)

		_, err := c.UpdateStock(ctx, item.ID, -1)
		verr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, domain.FieldStockQuantity, verr.Field)

		stored, err := c.FindByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), stored.Stock)
		assert.Equal(t, item.StockUpdatedAt, stored.StockUpdatedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		c, _ := setupCatalog(t)

		_, err := c.UpdateStock(ctx, 99, 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestCatalog_ApplyDiscount(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCatalog(t)

	zaraShirt := addItem(t, c, testutil.NewItemBuilder().WithCategory("MENS_SHIRTS").WithBrand("Zara").WithPrice("40"))
	zaraShirt2 := addItem(t, c, testutil.NewItemBuilder().WithCategory("MENS_SHIRTS").WithBrand("Zara").WithSize("L"))
	lowerZara := addItem(t, c, testutil.NewItemBuilder().WithCategory("MENS_SHIRTS").WithBrand("zara"))
	zaraJeans := addItem(t, c, testutil.NewItemBuilder().WithCategory("WOMENS_JEANS").WithBrand("Zara"))

	t.Run("only the exact category and brand change", func(t *testing.T) {
		n, err := c.ApplyDiscount(ctx, "MENS_SHIRTS", "Zara", decimal.NewFromInt(25))
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		for _, id := range []int64{zaraShirt.ID, zaraShirt2.ID} {
			got, err := c.FindByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "25", got.DiscountPercent.String())
		}
		for _, id := range []int64{lowerZara.ID, zaraJeans.ID} {
			got, err := c.FindByID(ctx, id)
			require.NoError(t, err)
			assert.True(t, got.DiscountPercent.IsZero(), "item %d must be untouched", id)
		}

		got, err := c.FindByID(ctx, zaraShirt.ID)
		require.NoError(t, err)
		assert.Equal(t, "30.00", got.EffectivePrice.StringFixed(2))
		assert.Equal(t, zaraShirt.StockUpdatedAt, got.StockUpdatedAt)
	})

	t.Run("re-applying the same percent still counts but records nothing", func(t *testing.T) {
		typ := domain.EventDiscountApplied
		_, before, err := c.ListEvents(ctx, &list_events.Request{EventType: &typ})
		require.NoError(t, err)

		n, err := c.ApplyDiscount(ctx, "MENS_SHIRTS", "Zara", decimal.RequireFromString("25.0"))
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, after, err := c.ListEvents(ctx, &list_events.Request{EventType: &typ})
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("no match is zero, not an error", func(t *testing.T) {
		n, err := c.ApplyDiscount(ctx, "MENS_TSHIRT", "Nobody", decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("unknown category is a validation error", func(t *testing.T) {
		_, err := c.ApplyDiscount(ctx, "mens_shirts", "Zara", decimal.NewFromInt(10))
		verr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, domain.FieldCategory, verr.Field)
	})

	t.Run("out of range percentages are stored, price is floored", func(t *testing.T) {
		n, err := c.ApplyDiscount(ctx, "WOMENS_JEANS", "Zara", decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := c.FindByID(ctx, zaraJeans.ID)
		require.NoError(t, err)
		assert.Equal(t, "150", got.DiscountPercent.String())
		assert.True(t, got.EffectivePrice.IsZero())
	})
}

func TestCatalog_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("89 days kept, 90 days removed", func(t *testing.T) {
		c, clk := setupCatalog(t)
		created := clk.Now()
		item := addItem(t, c, testutil.NewItemBuilder().WithStock(0))

		n, err := c.SweepStaleOutOfStock(ctx, created.Add(testutil.Days(89)), domain.DefaultStaleUnits)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		_, err = c.FindByID(ctx, item.ID)
		require.NoError(t, err)

		n, err = c.SweepStaleOutOfStock(ctx, created.Add(testutil.Days(90)), domain.DefaultStaleUnits)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		_, err = c.FindByID(ctx, item.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("in stock items are never removed", func(t *testing.T) {
		c, clk := setupCatalog(t)
		item := addItem(t, c, testutil.NewItemBuilder().WithStock(1))

		n, err := c.SweepStaleOutOfStock(ctx, clk.Now().Add(testutil.Days(3650)), domain.DefaultStaleUnits)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		_, err = c.FindByID(ctx, item.ID)
		assert.NoError(t, err)
	})

	t.Run("removed ids never return and are never reused", func(t *testing.T) {
		c, clk := setupCatalog(t)
		gone := addItem(t, c, testutil.NewItemBuilder().WithStock(0))
		kept := addItem(t, c, testutil.NewItemBuilder().WithStock(2))

		clk.AdvanceDays(120)
		n, err := c.SweepStaleOutOfStock(ctx, clk.Now(), domain.DefaultStaleUnits)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = c.UpdateStock(ctx, gone.ID, 3)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		next := addItem(t, c, testutil.NewItemBuilder())
		assert.Equal(t, int64(3), next.ID)

		res, err := c.ListItems(ctx, &list_items.Request{})
		require.NoError(t, err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, kept.ID, res.Items[0].ID)
		assert.Equal(t, next.ID, res.Items[1].ID)
	})

	t.Run("zero now uses the clock and the configured policy", func(t *testing.T) {
		clk := testutil.NewMockClock()
		policy, err := domain.NewRetentionPolicy(1)
		require.NoError(t, err)
		c := catalog.New(memdb.New(), clk, catalog.WithRetentionPolicy(policy))
		item := addItem(t, c, testutil.NewItemBuilder().WithStock(0))

		clk.AdvanceDays(30)
		resp, err := c.Sweep(ctx, &sweep_stale_items.Request{})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Removed)
		assert.Equal(t, []int64{item.ID}, resp.ItemIDs)
	})

	t.Run("negative threshold is rejected", func(t *testing.T) {
		c, clk := setupCatalog(t)
		_, err := c.SweepStaleOutOfStock(ctx, clk.Now(), -1)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestCatalog_OutOfStockScenario(t *testing.T) {
	ctx := context.Background()
	c, clk := setupCatalog(t)
	created := clk.Now()

	a := addItem(t, c, testutil.NewItemBuilder().WithStock(5))
	b := addItem(t, c, testutil.NewItemBuilder().WithStock(0).WithBrand("Zara"))

	assert.Equal(t, []int64{b.ID}, outOfStockIDs(t, c))

	// Re-zero B 70 days in, then sweep 10 days later.
	clk.Set(created.Add(testutil.Days(70)))
	_, err := c.UpdateStock(ctx, b.ID, 0)
	require.NoError(t, err)

	n, err := c.SweepStaleOutOfStock(ctx, created.Add(testutil.Days(80)), domain.DefaultStaleUnits)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, []int64{b.ID}, outOfStockIDs(t, c))

	// A sells out; both are listed in insertion order.
	_, err = c.UpdateStock(ctx, a.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID}, outOfStockIDs(t, c))
}

func TestCatalog_ListOutOfStock_IsLazyAndRestartable(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCatalog(t)

	seq := c.ListOutOfStock(ctx)
	first := addItem(t, c, testutil.NewItemBuilder().WithStock(0))

	items, err := list_out_of_stock.Collect(seq)
	require.NoError(t, err)
	require.Len(t, items, 1, "items added after the call are visible on iteration")

	second := addItem(t, c, testutil.NewItemBuilder().WithStock(0))
	items, err = list_out_of_stock.Collect(seq)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	t.Run("early break stops iteration", func(t *testing.T) {
		count := 0
		for _, err := range seq {
			require.NoError(t, err)
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("changing a snapshot leaves the catalog alone", func(t *testing.T) {
		items[0].Stock = 42
		got, err := c.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Stock)
	})
}

func TestCatalog_ListItems(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCatalog(t)

	addItem(t, c, testutil.NewItemBuilder().WithCategory("MENS_SHIRTS").WithBrand("Zara"))
	addItem(t, c, testutil.NewItemBuilder().WithCategory("MENS_SHIRTS").WithBrand("Arrow"))
	addItem(t, c, testutil.NewItemBuilder().WithCategory("WOMENS_JEANS").WithBrand("Zara"))
	addItem(t, c, testutil.NewItemBuilder().WithCategory("WOMENS_JEANS").WithBrand(""))

	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		req  *list_items.Request
		want []int64
	}{
		{name: "everything", req: &list_items.Request{}, want: []int64{1, 2, 3, 4}},
		{name: "by category", req: &list_items.Request{Category: str("MENS_SHIRTS")}, want: []int64{1, 2}},
		{name: "by brand", req: &list_items.Request{Brand: str("Zara")}, want: []int64{1, 3}},
		{name: "by both", req: &list_items.Request{Category: str("WOMENS_JEANS"), Brand: str("Zara")}, want: []int64{3}},
		{name: "empty brand", req: &list_items.Request{Brand: str("")}, want: []int64{4}},
		{name: "paged", req: &list_items.Request{PageSize: 2, Offset: 1}, want: []int64{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.ListItems(ctx, tt.req)
			require.NoError(t, err)
			ids := make([]int64, 0, len(res.Items))
			for _, it := range res.Items {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	t.Run("total ignores paging", func(t *testing.T) {
		res, err := c.ListItems(ctx, &list_items.Request{PageSize: 1})
		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, int64(4), res.TotalCount)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := c.ListItems(ctx, &list_items.Request{Category: str("SOCKS")})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestCatalog_Events(t *testing.T) {
	ctx := context.Background()
	c, clk := setupCatalog(t)

	item := addItem(t, c, testutil.NewItemBuilder().WithStock(1).WithCategory("MENS_SHIRTS").WithBrand("Zara"))
	clk.AdvanceDays(1)
	_, err := c.UpdateStock(ctx, item.ID, 0)
	require.NoError(t, err)
	clk.AdvanceDays(1)
	_, err = c.ApplyDiscount(ctx, "MENS_SHIRTS", "Zara", decimal.NewFromInt(5))
	require.NoError(t, err)
	clk.AdvanceDays(100)
	_, err = c.SweepStaleOutOfStock(ctx, clk.Now(), domain.DefaultStaleUnits)
	require.NoError(t, err)

	t.Run("one event per change, newest first", func(t *testing.T) {
		events, total, err := c.ListEvents(ctx, &list_events.Request{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, events, 4)

		types := make([]string, 0, len(events))
		for _, e := range events {
			types = append(types, e.EventType)
			assert.Equal(t, "1", e.AggregateID)
		}
		assert.Equal(t, []string{
			domain.EventItemPurged,
			domain.EventDiscountApplied,
			domain.EventStockUpdated,
			domain.EventItemAdded,
		}, types)
	})

	t.Run("filter by type", func(t *testing.T) {
		typ := domain.EventItemPurged
		events, total, err := c.ListEvents(ctx, &list_events.Request{EventType: &typ})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, events, 1)

		var payload domain.ItemPurgedEvent
		require.NoError(t, json.Unmarshal([]byte(events[0].Payload), &payload))
		assert.Equal(t, item.ID, payload.ItemID)
		assert.Equal(t, int64(3), payload.ElapsedUnits)
	})

	t.Run("every stored event is pending", func(t *testing.T) {
		pending := m_outbox.StatusPending
		_, total, err := c.ListEvents(ctx, &list_events.Request{Status: &pending})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("events written at the same instant are newest first", func(t *testing.T) {
		c, _ := setupCatalog(t)
		addItem(t, c, testutil.NewItemBuilder().WithBrand("Levis"))
		addItem(t, c, testutil.NewItemBuilder().WithBrand("Levis").WithSize("L"))
		_, err := c.ApplyDiscount(ctx, "MENS_TSHIRT", "Levis", decimal.NewFromInt(10))
		require.NoError(t, err)

		events, _, err := c.ListEvents(ctx, &list_events.Request{})
		require.NoError(t, err)
		require.Len(t, events, 4)

		got := make([]string, 0, len(events))
		for _, e := range events {
			got = append(got, e.EventType+" "+e.AggregateID)
		}
		assert.Equal(t, []string{
			domain.EventDiscountApplied + " 2",
			domain.EventDiscountApplied + " 1",
			domain.EventItemAdded + " 2",
			domain.EventItemAdded + " 1",
		}, got)
	})

	t.Run("failed operations write no events", func(t *testing.T) {
		_, err := c.UpdateStock(ctx, 77, 1)
		require.Error(t, err)
		_, total, err := c.ListEvents(ctx, &list_events.Request{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})
}
