package m_sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Model allocates ids from named sequences.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Allocate reads the sequence through r and returns the next id together with
// the mutation that advances it. The id is only consumed once the mutation
// commits, so allocation must happen inside the transaction that uses the id.
// Sequences start at 1.
func (m *Model) Allocate(ctx context.Context, r memdb.Reader, name string) (int64, *memdb.Mutation, error) {
	next := int64(1)

	row, err := r.ReadRow(ctx, TableName, memdb.Key(name))
	switch {
	case errors.Is(err, memdb.ErrRowNotFound):
	case err != nil:
		return 0, nil, fmt.Errorf("failed to read sequence %s: %w", name, err)
	default:
		var data Data
		if err := row.ToStruct(&data); err != nil {
			return 0, nil, fmt.Errorf("failed to parse sequence %s: %w", name, err)
		}
		next = data.NextID
	}

	return next, m.AdvanceMut(name, next+1), nil
}

// AdvanceMut creates a mutation setting the sequence's next id.
func (m *Model) AdvanceMut(name string, nextID int64) *memdb.Mutation {
	return memdb.InsertOrUpdate(
		TableName,
		memdb.Key(name),
		[]string{Name, NextID},
		[]any{name, nextID},
	)
}
