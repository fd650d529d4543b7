package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_events"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/query"
)

// EventsReadModel implements the list_events.EventsReadModel interface.
type EventsReadModel struct {
	db *memdb.DB
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(db *memdb.DB) *EventsReadModel {
	return &EventsReadModel{
		db: db,
	}
}

// ListEvents retrieves events from the outbox_events table with filtering,
// newest first. Events stamped with the same time come back in reverse write
// order. The count ignores the limit.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	b := query.From(m_outbox.TableName)

	if req.EventType != nil {
		b = b.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}

	if req.AggregateID != nil {
		b = b.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}

	if req.Status != nil {
		b = b.Where(query.Eq(m_outbox.Status, *req.Status))
	}

	totalCount, err := r.db.Count(ctx, b.Count().Build())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	rows, err := r.db.Query(ctx, b.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(int64(req.Limit)).Build())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}

	events := make([]*m_outbox.Data, 0, len(rows))
	for _, row := range rows {
		var event m_outbox.Data
		if err := row.ToStruct(&event); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	return events, totalCount, nil
}
