// Package memdbtest holds helpers for tests that write to a memdb.DB directly.
package memdbtest

import (
	"context"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Apply commits muts in a single read-write transaction.
func Apply(ctx context.Context, db *memdb.DB, muts ...*memdb.Mutation) error {
	return db.ReadWriteTransaction(ctx, func(_ context.Context, txn *memdb.ReadWriteTransaction) error {
		txn.BufferWrite(muts)
		return nil
	})
}
