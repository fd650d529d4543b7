// Package catalog is the entry point of the item catalog. It wires the
// repositories, use cases and queries over one in-memory store and exposes
// them as plain methods that take and return values only: callers never hold
// a reference to a stored item.
package catalog

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/get_item"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_events"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_items"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_out_of_stock"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/add_item"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/sweep_stale_items"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/update_stock"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_item"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_sequence"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/committer"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Tables lists the store tables the catalog reads and writes.
func Tables() []string {
	return []string{m_item.TableName, m_outbox.TableName, m_sequence.TableName}
}

// NewItem holds the attributes of an item to add.
type NewItem struct {
	Category string
	Size     string
	Stock    int64
	Price    decimal.Decimal
	Brand    string
	Color    string
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	policy domain.RetentionPolicy
}

// WithRetentionPolicy replaces the default three-unit sweep policy.
func WithRetentionPolicy(p domain.RetentionPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Catalog owns every item. All methods are safe for concurrent use; writes
// are serialized by the store.
type Catalog struct {
	addItem       *add_item.Interactor
	updateStock   *update_stock.Interactor
	applyDiscount *apply_discount.Interactor
	sweep         *sweep_stale_items.Interactor

	getItem        *get_item.Query
	listItems      *list_items.Query
	listOutOfStock *list_out_of_stock.Query
	listEvents     *list_events.Query
}

// New creates a Catalog on db, creating its tables if needed.
func New(db *memdb.DB, clk clock.Clock, opts ...Option) *Catalog {
	o := options{policy: domain.DefaultRetentionPolicy()}
	for _, opt := range opts {
		opt(&o)
	}

	for _, t := range Tables() {
		db.CreateTable(t)
	}

	comm := committer.NewCommitter(db)

	itemRepo := repo.NewItemRepo()
	outboxRepo := repo.NewOutboxRepo(clk)
	readModel := repo.NewReadModel(db)
	eventsReadModel := repo.NewEventsReadModel(db)

	return &Catalog{
		addItem:       add_item.NewInteractor(itemRepo, outboxRepo, comm, clk),
		updateStock:   update_stock.NewInteractor(itemRepo, outboxRepo, comm, clk),
		applyDiscount: apply_discount.NewInteractor(itemRepo, outboxRepo, comm, clk),
		sweep:         sweep_stale_items.NewInteractor(itemRepo, outboxRepo, comm, clk, o.policy),

		getItem:        get_item.NewQuery(readModel),
		listItems:      list_items.NewQuery(readModel),
		listOutOfStock: list_out_of_stock.NewQuery(readModel),
		listEvents:     list_events.NewQuery(eventsReadModel),
	}
}

// AddItem validates and stores a new item with the next id.
func (c *Catalog) AddItem(ctx context.Context, in NewItem) (domain.ItemSnapshot, error) {
	return c.addItem.Execute(ctx, &add_item.Request{
		Category: in.Category,
		Size:     in.Size,
		Stock:    in.Stock,
		Price:    domain.NewMoney(in.Price),
		Brand:    in.Brand,
		Color:    in.Color,
	})
}

// UpdateStock sets an item's stock and refreshes its stock timestamp.
func (c *Catalog) UpdateStock(ctx context.Context, itemID, stock int64) (domain.ItemSnapshot, error) {
	return c.updateStock.Execute(ctx, &update_stock.Request{ItemID: itemID, Stock: stock})
}

// ApplyDiscount sets the discount of every item in (category, brand) and
// returns how many items changed.
func (c *Catalog) ApplyDiscount(ctx context.Context, category, brand string, percent decimal.Decimal) (int, error) {
	return c.applyDiscount.Execute(ctx, &apply_discount.Request{
		Category:        category,
		Brand:           brand,
		DiscountPercent: percent,
	})
}

// SweepStaleOutOfStock removes every item out of stock for at least
// staleUnits whole 30-day units as of now, and returns the number removed.
func (c *Catalog) SweepStaleOutOfStock(ctx context.Context, now time.Time, staleUnits int64) (int, error) {
	resp, err := c.sweep.Execute(ctx, &sweep_stale_items.Request{Now: now, StaleUnits: &staleUnits})
	if err != nil {
		return 0, err
	}
	return resp.Removed, nil
}

// Sweep runs the retention sweep with request-level overrides.
func (c *Catalog) Sweep(ctx context.Context, req *sweep_stale_items.Request) (*sweep_stale_items.Response, error) {
	return c.sweep.Execute(ctx, req)
}

// ListOutOfStock returns a lazy sequence of the items with zero stock.
func (c *Catalog) ListOutOfStock(ctx context.Context) iter.Seq2[domain.ItemSnapshot, error] {
	return c.listOutOfStock.Execute(ctx)
}

// FindByID returns the item with the given id or domain.ErrItemNotFound.
func (c *Catalog) FindByID(ctx context.Context, itemID int64) (domain.ItemSnapshot, error) {
	return c.getItem.Execute(ctx, &get_item.Request{ItemID: itemID})
}

// ListItems returns a page of items, optionally filtered by category and brand.
func (c *Catalog) ListItems(ctx context.Context, req *list_items.Request) (*contracts.ListResult, error) {
	return c.listItems.Execute(ctx, req)
}

// ListEvents returns outbox events, newest first, and the total match count.
func (c *Catalog) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	return c.listEvents.Execute(ctx, req)
}
