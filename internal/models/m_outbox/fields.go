package m_outbox

// Field name constants for the outbox_events table.
const (
	TableName = "outbox_events"

	EventID     = "event_id"
	EventType   = "event_type"
	AggregateID = "aggregate_id"
	Payload     = "payload"
	Status      = "status"
	CreatedAt   = "created_at"
	RetryCount  = "retry_count"
)

// StatusPending is the status every event is written with. Nothing in this
// service publishes events, so no row ever leaves it.
const StatusPending = "pending"
