package update_stock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/committer"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Request contains the data to update an item's stock.
type Request struct {
	ItemID int64
	Stock  int64
}

// Interactor handles the update stock use case.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update stock interactor.
func NewInteractor(
	repo contracts.ItemRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute sets the stock of an item and stamps the write time.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.ItemSnapshot, error) {
	if req.Stock < 0 {
		return domain.ItemSnapshot{}, apperr.Validationf(domain.FieldStockQuantity, "must not be negative, got %d", req.Stock)
	}

	var snapshot domain.ItemSnapshot
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
		// 1. Load aggregate
		item, err := i.repo.GetByID(ctx, txn, req.ItemID)
		if err != nil {
			return err
		}

		// 2. Call domain method
		if err := item.UpdateStock(req.Stock, i.clock.Now()); err != nil {
			return err
		}

		// 3. Add repository mutation
		plan.Add(i.repo.UpdateMut(item))

		// 4. Add outbox events
		for _, event := range item.DomainEvents() {
			payload, err := i.serializeEvent(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
		}

		snapshot = item.Snapshot()
		return nil
	})
	if err != nil {
		return domain.ItemSnapshot{}, err
	}

	return snapshot, nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
