package add_item

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/committer"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Request contains the data needed to add an item.
// Category and Size are the exact, case-sensitive tags.
type Request struct {
	Category string
	Size     string
	Stock    int64
	Price    *domain.Money
	Brand    string
	Color    string
}

// Interactor handles the add item use case.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new add item interactor.
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

// Execute adds an item following the Golden Mutation Pattern and returns its snapshot.
// Invalid input is rejected before an id is allocated, so failed adds never
// consume ids.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.ItemSnapshot, error) {
	// 1. Validate request
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return domain.ItemSnapshot{}, err
	}
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		return domain.ItemSnapshot{}, err
	}
	if err := domain.ValidateNewItem(category, req.Stock, size, req.Price); err != nil {
		return domain.ItemSnapshot{}, err
	}

	var snapshot domain.ItemSnapshot
	err = i.committer.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
		// 2. Allocate the id inside the transaction that inserts the item
		itemID, seqMut, err := i.repo.NextID(ctx, txn)
		if err != nil {
			return err
		}

		// 3. Create domain aggregate
		item, err := domain.NewItem(itemID, category, req.Stock, size, req.Price, req.Brand, req.Color, i.clock.Now())
		if err != nil {
			return err
		}

		// 4. Add repository mutations
		plan.Add(seqMut)
		plan.Add(i.repo.InsertMut(item))

		// 5. Add outbox events
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
