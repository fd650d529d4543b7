package m_outbox

import (
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an outbox event.
func (m *Model) InsertMut(data *Data) *memdb.Mutation {
	return memdb.Insert(
		TableName,
		memdb.Key(data.EventID),
		[]string{
			EventID,
			EventType,
			AggregateID,
			Payload,
			Status,
			CreatedAt,
			RetryCount,
		},
		[]any{
			data.EventID,
			data.EventType,
			data.AggregateID,
			data.Payload,
			data.Status,
			data.CreatedAt,
			data.RetryCount,
		},
	)
}
