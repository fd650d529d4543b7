package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_item"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_sequence"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/query"
)

// ItemRepo implements ItemRepository on the in-memory store.
type ItemRepo struct {
	model    *m_item.Model
	sequence *m_sequence.Model
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo() contracts.ItemRepository {
	return &ItemRepo{
		model:    m_item.NewModel(),
		sequence: m_sequence.NewModel(),
	}
}

// NextID allocates the next item id from the items sequence.
func (r *ItemRepo) NextID(ctx context.Context, rd memdb.Reader) (int64, *memdb.Mutation, error) {
	return r.sequence.Allocate(ctx, rd, m_item.SequenceName)
}

// InsertMut creates a mutation for inserting a new item.
func (r *ItemRepo) InsertMut(item *domain.Item) *memdb.Mutation {
	return r.model.InsertMut(domainToData(item))
}

// UpdateMut creates a mutation for updating an item (only dirty fields).
func (r *ItemRepo) UpdateMut(item *domain.Item) *memdb.Mutation {
	changes := item.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]any)
	for _, f := range changes.DirtyFields() {
		switch f {
		case domain.DirtyStock:
			updates[m_item.Stock] = item.Stock()
		case domain.DirtyStockUpdatedAt:
			updates[m_item.StockUpdatedAt] = item.StockUpdatedAt()
		case domain.DirtyDiscount:
			updates[m_item.DiscountPercent] = item.Discount().Percent()
		}
	}

	return r.model.UpdateMut(item.ID(), updates)
}

// DeleteMut creates a mutation removing an item.
func (r *ItemRepo) DeleteMut(item *domain.Item) *memdb.Mutation {
	return r.model.DeleteMut(item.ID())
}

// GetByID retrieves an item by ID, reconstructing the domain aggregate.
func (r *ItemRepo) GetByID(ctx context.Context, rd memdb.Reader, itemID int64) (*domain.Item, error) {
	row, err := rd.ReadRow(ctx, m_item.TableName, memdb.IntKey(itemID))
	if err != nil {
		if errors.Is(err, memdb.ErrRowNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to read item: %w", err)
	}

	var data m_item.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse item: %w", err)
	}

	return dataToDomain(&data), nil
}

// FindByCategoryAndBrand returns every item with exactly this category and brand.
func (r *ItemRepo) FindByCategoryAndBrand(ctx context.Context, rd memdb.Reader, category domain.Category, brand string) ([]*domain.Item, error) {
	stmt := query.From(m_item.TableName).
		Where(query.Eq(m_item.Category, string(category))).
		Where(query.Eq(m_item.Brand, brand)).
		Build()
	return r.find(ctx, rd, stmt)
}

// FindOutOfStock returns every item whose stock is zero, in insertion order.
func (r *ItemRepo) FindOutOfStock(ctx context.Context, rd memdb.Reader) ([]*domain.Item, error) {
	stmt := query.From(m_item.TableName).
		Where(query.Eq(m_item.Stock, 0)).
		Build()
	return r.find(ctx, rd, stmt)
}

func (r *ItemRepo) find(ctx context.Context, rd memdb.Reader, stmt query.Statement) ([]*domain.Item, error) {
	rows, err := rd.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query items (%s): %w", stmt, err)
	}

	items := make([]*domain.Item, 0, len(rows))
	for _, row := range rows {
		var data m_item.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse item: %w", err)
		}
		items = append(items, dataToDomain(&data))
	}
	return items, nil
}

// domainToData converts a domain Item to its stored row.
func domainToData(item *domain.Item) *m_item.Data {
	return &m_item.Data{
		ItemID:          item.ID(),
		Category:        string(item.Category()),
		Size:            string(item.Size()),
		Price:           item.Price().Decimal(),
		Brand:           item.Brand(),
		Color:           item.Color(),
		Stock:           item.Stock(),
		StockUpdatedAt:  item.StockUpdatedAt(),
		DiscountPercent: item.Discount().Percent(),
		CreatedAt:       item.CreatedAt(),
	}
}

// dataToDomain converts a stored row to a domain Item.
// Rows are only written from validated items, so no validation is repeated.
func dataToDomain(data *m_item.Data) *domain.Item {
	return domain.ReconstructItem(
		data.ItemID,
		domain.Category(data.Category),
		domain.Size(data.Size),
		domain.NewMoney(data.Price),
		data.Brand,
		data.Color,
		data.Stock,
		data.StockUpdatedAt,
		domain.NewDiscount(data.DiscountPercent),
		data.CreatedAt,
	)
}
