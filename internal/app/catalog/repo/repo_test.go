package repo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_events"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_item"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_sequence"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb/memdbtest"
	"github.com/light-bringer/wardrobe-catalog/internal/testutil"
)

func newDB() *memdb.DB {
	return memdb.New(m_item.TableName, m_outbox.TableName, m_sequence.TableName)
}

func insertItem(t *testing.T, db *memdb.DB, r contracts.ItemRepository, stock int64, brand string) *domain.Item {
	t.Helper()
	ctx := context.Background()

	id, seqMut, err := r.NextID(ctx, db)
	require.NoError(t, err)

	item, err := domain.NewItem(id, domain.CategoryMensTShirt, stock, domain.SizeM, domain.NewMoney(decimal.RequireFromString("19.99")), brand, "blue", testutil.Epoch)
	require.NoError(t, err)

	require.NoError(t, memdbtest.Apply(ctx, db, seqMut, r.InsertMut(item)))
	return item
}

func TestItemRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newDB()
	r := repo.NewItemRepo()

	first := insertItem(t, db, r, 3, "Levis")
	second := insertItem(t, db, r, 0, "Zara")
	assert.Equal(t, int64(1), first.ID())
	assert.Equal(t, int64(2), second.ID())

	got, err := r.GetByID(ctx, db, first.ID())
	require.NoError(t, err)
	want, have := first.Snapshot(), got.Snapshot()
	assert.Equal(t, want.Category, have.Category)
	assert.Equal(t, want.Size, have.Size)
	assert.Equal(t, want.Brand, have.Brand)
	assert.Equal(t, want.Stock, have.Stock)
	assert.True(t, want.Price.Equal(have.Price))
	assert.True(t, want.StockUpdatedAt.Equal(have.StockUpdatedAt))

	_, err = r.GetByID(ctx, db, 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemRepo_UpdateMut(t *testing.T) {
	ctx := context.Background()
	db := newDB()
	r := repo.NewItemRepo()
	insertItem(t, db, r, 3, "Levis")

	item, err := r.GetByID(ctx, db, 1)
	require.NoError(t, err)
	assert.Nil(t, r.UpdateMut(item), "clean aggregates produce no mutation")

	later := testutil.Epoch.Add(testutil.Days(2))
	require.NoError(t, item.UpdateStock(0, later))
	item.ApplyDiscount(domain.NewDiscount(decimal.NewFromInt(15)), later)

	mut := r.UpdateMut(item)
	require.NotNil(t, mut)
	require.NoError(t, memdbtest.Apply(ctx, db, mut))

	reloaded, err := r.GetByID(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reloaded.Stock())
	assert.Equal(t, later, reloaded.StockUpdatedAt())
	assert.Equal(t, "15", reloaded.Discount().Percent().String())
	assert.Equal(t, testutil.Epoch, reloaded.CreatedAt())
}

func TestItemRepo_Finders(t *testing.T) {
	ctx := context.Background()
	db := newDB()
	r := repo.NewItemRepo()

	insertItem(t, db, r, 0, "Levis")
	insertItem(t, db, r, 4, "Levis")
	insertItem(t, db, r, 0, "Zara")

	levis, err := r.FindByCategoryAndBrand(ctx, db, domain.CategoryMensTShirt, "Levis")
	require.NoError(t, err)
	assert.Len(t, levis, 2)

	none, err := r.FindByCategoryAndBrand(ctx, db, domain.CategoryWomensJeans, "Levis")
	require.NoError(t, err)
	assert.Empty(t, none)

	oos, err := r.FindOutOfStock(ctx, db)
	require.NoError(t, err)
	require.Len(t, oos, 2)
	assert.Equal(t, int64(1), oos[0].ID())
	assert.Equal(t, int64(3), oos[1].ID())

	require.NoError(t, memdbtest.Apply(ctx, db, r.DeleteMut(oos[0])))
	_, err = r.GetByID(ctx, db, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestReadModel(t *testing.T) {
	ctx := context.Background()
	db := newDB()
	r := repo.NewItemRepo()
	rm := repo.NewReadModel(db)

	insertItem(t, db, r, 0, "Levis")
	insertItem(t, db, r, 2, "Zara")
	insertItem(t, db, r, 0, "Levis")

	t.Run("get by id", func(t *testing.T) {
		snap, err := rm.GetItemByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Zara", snap.Brand)

		_, err = rm.GetItemByID(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("list with brand filter and pagination", func(t *testing.T) {
		brand := "Levis"
		res, err := rm.ListItems(ctx, &contracts.ListFilter{Brand: &brand, PageSize: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.TotalCount)
		require.Len(t, res.Items, 1)
		assert.Equal(t, int64(3), res.Items[0].ID)
	})

	t.Run("out of stock sequence stops early", func(t *testing.T) {
		var seen []int64
		for snap, err := range rm.OutOfStock(ctx) {
			require.NoError(t, err)
			seen = append(seen, snap.ID)
			break
		}
		assert.Equal(t, []int64{1}, seen)
	})
}

func TestOutboxRepo(t *testing.T) {
	ctx := context.Background()
	db := newDB()
	clk := testutil.NewMockClock()
	outbox := repo.NewOutboxRepo(clk)

	event := &domain.StockUpdatedEvent{ItemID: 7, PreviousStock: 1, Stock: 0, UpdatedAt: clk.Now()}
	enriched := outbox.EnrichEvent(event, `{"item_id":7}`)

	assert.NotEmpty(t, enriched.EventID, "event ID should be generated")
	assert.Equal(t, domain.EventStockUpdated, enriched.EventType)
	assert.Equal(t, "7", enriched.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, enriched.Status)

	require.NoError(t, memdbtest.Apply(ctx, db, outbox.InsertMut(enriched)))

	clk.Advance(1)
	second := outbox.EnrichEvent(event, `{}`)
	assert.NotEqual(t, enriched.EventID, second.EventID)
	require.NoError(t, memdbtest.Apply(ctx, db, outbox.InsertMut(second)))

	events, total, err := repo.NewEventsReadModel(db).ListEvents(ctx, &list_events.Request{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, events, 1)
	assert.Equal(t, second.EventID, events[0].EventID, "newest first")
	assert.Equal(t, clk.Now(), events[0].CreatedAt)
}
