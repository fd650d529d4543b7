package m_item

import (
	"time"

	"github.com/shopspring/decimal"
)

// Data represents the stored row of the items table.
type Data struct {
	ItemID          int64           `mapstructure:"item_id"`
	Category        string          `mapstructure:"category"`
	Size            string          `mapstructure:"size"`
	Price           decimal.Decimal `mapstructure:"price"`
	Brand           string          `mapstructure:"brand"`
	Color           string          `mapstructure:"color"`
	Stock           int64           `mapstructure:"stock"`
	StockUpdatedAt  time.Time       `mapstructure:"stock_updated_at"`
	DiscountPercent decimal.Decimal `mapstructure:"discount_percent"`
	CreatedAt       time.Time       `mapstructure:"created_at"`
}
