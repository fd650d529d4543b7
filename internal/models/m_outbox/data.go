package m_outbox

import (
	"time"
)

// Data represents the stored row of the outbox_events table.
type Data struct {
	EventID     string    `mapstructure:"event_id"`
	EventType   string    `mapstructure:"event_type"`
	AggregateID string    `mapstructure:"aggregate_id"`
	Payload     string    `mapstructure:"payload"` // JSON
	Status      string    `mapstructure:"status"`
	CreatedAt   time.Time `mapstructure:"created_at"`
	RetryCount  int64     `mapstructure:"retry_count"`
}
