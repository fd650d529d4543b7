package apply_discount

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/committer"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Request contains the data to apply a discount to a (category, brand) group.
type Request struct {
	Category        string
	Brand           string
	DiscountPercent decimal.Decimal
}

// Interactor handles the apply discount use case.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new apply discount interactor.
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

// Execute sets the discount on every item with exactly this category and
// brand, and returns how many items were updated. No match is not an error.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return 0, err
	}
	discount := domain.NewDiscount(req.DiscountPercent)

	var updated int
	err = i.committer.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
		items, err := i.repo.FindByCategoryAndBrand(ctx, txn, category, req.Brand)
		if err != nil {
			return err
		}

		now := i.clock.Now()
		for _, item := range items {
			item.ApplyDiscount(discount, now)
			plan.Add(i.repo.UpdateMut(item))

			for _, event := range item.DomainEvents() {
				payload, err := i.serializeEvent(event)
				if err != nil {
					return fmt.Errorf("failed to serialize event: %w", err)
				}
				plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
			}
		}

		updated = len(items)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
