package m_sequence

// Field name constants for the sequences table.
const (
	TableName = "sequences"

	Name   = "name"
	NextID = "next_id"
)
