package sweep_stale_items

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/committer"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Request controls one sweep. Zero values fall back to the clock and the
// interactor's policy.
type Request struct {
	Now        time.Time
	StaleUnits *int64
}

// Response reports what a sweep removed.
type Response struct {
	Removed int
	ItemIDs []int64
}

// Interactor removes items that have been out of stock for too long.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
	policy     domain.RetentionPolicy
}

// NewInteractor creates a new sweep interactor with the given default policy.
func NewInteractor(
	repo contracts.ItemRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	policy domain.RetentionPolicy,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
		policy:     policy,
	}
}

// Execute deletes every stale item in one commit. Removed ids are never
// handed out again because the id sequence only moves forward.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	policy := i.policy
	if req.StaleUnits != nil {
		p, err := domain.NewRetentionPolicy(*req.StaleUnits)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	now := clock.Or(i.clock, req.Now)

	resp := &Response{ItemIDs: make([]int64, 0)}
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
		candidates, err := i.repo.FindOutOfStock(ctx, txn)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(candidates))
		for _, item := range candidates {
			if !policy.IsStale(item, now) {
				continue
			}

			item.Purge(now)
			plan.Add(i.repo.DeleteMut(item))

			for _, event := range item.DomainEvents() {
				payload, err := i.serializeEvent(event)
				if err != nil {
					return fmt.Errorf("failed to serialize event: %w", err)
				}
				plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
			}
			ids = append(ids, item.ID())
		}

		resp.ItemIDs = ids
		resp.Removed = len(ids)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
