// Package committer implements the Golden Mutation Pattern on top of memdb.
//
// Usecases never write tables directly. The flow is:
//
//	err := comm.ReadWrite(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction, plan *committer.CommitPlan) error {
//	    // 1. Load aggregates through repositories, reading from txn
//	    item, err := repo.GetByID(ctx, txn, itemID)
//	    if err != nil {
//	        return err
//	    }
//
//	    // 2. Call domain methods (pure business logic)
//	    if err := item.UpdateStock(stock, now); err != nil {
//	        return err
//	    }
//
//	    // 3. Repositories return mutations; the plan collects them with the outbox events
//	    plan.Add(repo.UpdateMut(item))
//	    return nil
//	})
//
// The plan is applied atomically when the function returns nil. Because
// memdb serializes read-write transactions, everything read inside the
// function stays valid until the plan lands.
package committer

import (
	"context"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// CommitPlan collects mutations from several sources for one atomic write.
type CommitPlan struct {
	mutations []*memdb.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*memdb.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *memdb.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*memdb.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Committer applies CommitPlans to a memdb.DB.
type Committer struct {
	db *memdb.DB
}

// NewCommitter creates a new Committer.
func NewCommitter(db *memdb.DB) *Committer {
	return &Committer{db: db}
}

// ReadWrite runs fn inside a serialized read-write transaction and commits
// the plan fn filled; an empty plan writes nothing. An error from fn is returned unwrapped so callers can
// match domain sentinels; nothing is written in that case.
func (c *Committer) ReadWrite(ctx context.Context, fn func(context.Context, *memdb.ReadWriteTransaction, *CommitPlan) error) error {
	var fnErr error
	err := c.db.ReadWriteTransaction(ctx, func(ctx context.Context, txn *memdb.ReadWriteTransaction) error {
		plan := NewPlan()
		if fnErr = fn(ctx, txn, plan); fnErr != nil {
			return fnErr
		}
		if !plan.IsEmpty() {
			txn.BufferWrite(plan.Mutations())
		}
		return nil
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
