package m_sequence

// Data is one named counter. NextID is the id the next allocation returns.
type Data struct {
	Name   string `mapstructure:"name"`
	NextID int64  `mapstructure:"next_id"`
}
