package repo

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_item"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/query"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ReadModelImpl implements ReadModel on the in-memory store.
type ReadModelImpl struct {
	db *memdb.DB
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(db *memdb.DB) contracts.ReadModel {
	return &ReadModelImpl{
		db: db,
	}
}

// GetItemByID retrieves an item snapshot by ID.
func (rm *ReadModelImpl) GetItemByID(ctx context.Context, itemID int64) (domain.ItemSnapshot, error) {
	row, err := rm.db.ReadRow(ctx, m_item.TableName, memdb.IntKey(itemID))
	if err != nil {
		if errors.Is(err, memdb.ErrRowNotFound) {
			return domain.ItemSnapshot{}, domain.ErrItemNotFound
		}
		return domain.ItemSnapshot{}, fmt.Errorf("failed to read item: %w", err)
	}

	return rowToSnapshot(row)
}

// ListItems retrieves a page of items in insertion order.
func (rm *ReadModelImpl) ListItems(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	b := query.From(m_item.TableName)

	if filter.Category != nil {
		b = b.Where(query.Eq(m_item.Category, string(*filter.Category)))
	}

	if filter.Brand != nil {
		b = b.Where(query.Eq(m_item.Brand, *filter.Brand))
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total, err := rm.db.Count(ctx, b.Count().Build())
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	rows, err := rm.db.Query(ctx, b.Limit(int64(pageSize)).Offset(int64(filter.Offset)).Build())
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	items := make([]domain.ItemSnapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := rowToSnapshot(row)
		if err != nil {
			return nil, err
		}
		items = append(items, snap)
	}

	return &contracts.ListResult{
		Items:      items,
		TotalCount: total,
	}, nil
}

// OutOfStock yields every item with zero stock in insertion order.
// The rows are copied when iteration starts; no lock is held while yielding,
// and ranging over the sequence again reads the table again.
func (rm *ReadModelImpl) OutOfStock(ctx context.Context) iter.Seq2[domain.ItemSnapshot, error] {
	stmt := query.From(m_item.TableName).
		Where(query.Eq(m_item.Stock, 0)).
		Build()

	return func(yield func(domain.ItemSnapshot, error) bool) {
		rows, err := rm.db.Query(ctx, stmt)
		if err != nil {
			yield(domain.ItemSnapshot{}, fmt.Errorf("failed to query out of stock items: %w", err))
			return
		}
		for _, row := range rows {
			snap, err := rowToSnapshot(row)
			if !yield(snap, err) || err != nil {
				return
			}
		}
	}
}

func rowToSnapshot(row *memdb.Row) (domain.ItemSnapshot, error) {
	var data m_item.Data
	if err := row.ToStruct(&data); err != nil {
		return domain.ItemSnapshot{}, fmt.Errorf("failed to parse item: %w", err)
	}
	return dataToDomain(&data).Snapshot(), nil
}
