package m_item

// Field name constants for the items table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "items"

	// SequenceName is the m_sequence counter item ids are drawn from.
	SequenceName = "items"

	ItemID          = "item_id"
	Category        = "category"
	Size            = "size"
	Price           = "price"
	Brand           = "brand"
	Color           = "color"
	Stock           = "stock"
	StockUpdatedAt  = "stock_updated_at"
	DiscountPercent = "discount_percent"
	CreatedAt       = "created_at"
)
