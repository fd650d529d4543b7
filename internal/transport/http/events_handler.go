package http

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_events"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
)

// EventsService lists outbox events.
type EventsService interface {
	ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error)
}

// EventsHandler handles HTTP requests for events.
type EventsHandler struct {
	svc    EventsService
	logger *zap.Logger
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(svc EventsService, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		svc:    svc,
		logger: logger,
	}
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"total_count"`
}

// ServeHTTP handles GET /api/v1/events requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &list_events.Request{}

	if eventType := query.Get("event_type"); eventType != "" {
		req.EventType = &eventType
	}

	if aggregateID := query.Get("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	events, total, err := h.svc.ListEvents(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, eventFromData(e))
	}

	writeJSON(w, http.StatusOK, ListEventsResponse{
		Events:     out,
		TotalCount: total,
	})
}
