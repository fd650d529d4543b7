package repo

import (
	"github.com/google/uuid"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
)

// OutboxRepo implements OutboxRepository on the in-memory store.
type OutboxRepo struct {
	model *m_outbox.Model
	clock clock.Clock
}

// NewOutboxRepo creates a new OutboxRepo. The clock stamps created_at, the
// way a commit timestamp would.
func NewOutboxRepo(clk clock.Clock) contracts.OutboxRepository {
	return &OutboxRepo{
		model: m_outbox.NewModel(),
		clock: clk,
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *memdb.Mutation {
	data := &m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     event.Payload,
		Status:      event.Status,
		CreatedAt:   r.clock.Now(),
		RetryCount:  0,
	}

	return r.model.InsertMut(data)
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}
