package http

import (
	"time"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	rosterdomain "github.com/light-bringer/wardrobe-catalog/internal/app/roster/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/models/m_outbox"
)

// Item is the JSON form of an item snapshot. Decimals are encoded as strings.
type Item struct {
	ID              int64           `json:"id"`
	Category        string          `json:"category"`
	Size            string          `json:"size"`
	Price           decimal.Decimal `json:"price"`
	Brand           string          `json:"brand"`
	Color           string          `json:"color"`
	Stock           int64           `json:"stock"`
	OutOfStock      bool            `json:"out_of_stock"`
	StockUpdatedAt  time.Time       `json:"stock_updated_at"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	CreatedAt       time.Time       `json:"created_at"`
}

func itemFromSnapshot(s catalogdomain.ItemSnapshot) Item {
	return Item{
		ID:              s.ID,
		Category:        string(s.Category),
		Size:            string(s.Size),
		Price:           s.Price,
		Brand:           s.Brand,
		Color:           s.Color,
		Stock:           s.Stock,
		OutOfStock:      s.OutOfStock(),
		StockUpdatedAt:  s.StockUpdatedAt,
		DiscountPercent: s.DiscountPercent,
		EffectivePrice:  s.EffectivePrice,
		CreatedAt:       s.CreatedAt,
	}
}

func itemsFromSnapshots(snaps []catalogdomain.ItemSnapshot) []Item {
	items := make([]Item, 0, len(snaps))
	for _, s := range snaps {
		items = append(items, itemFromSnapshot(s))
	}
	return items
}

// Employee is the JSON form of an employee snapshot.
type Employee struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	DateOfJoining string          `json:"date_of_joining"` // YYYY-MM-DD
	Phone         string          `json:"phone"`
	NationalID    string          `json:"national_id"`
	PayMode       string          `json:"pay_mode"`
	PayAmount     decimal.Decimal `json:"pay_amount"`
	Description   string          `json:"description"`
}

func employeeFromSnapshot(s rosterdomain.EmployeeSnapshot) Employee {
	return Employee{
		ID:            s.ID,
		Name:          s.Name,
		DateOfJoining: s.DateOfJoining.Format(time.DateOnly),
		Phone:         s.Phone,
		NationalID:    s.NationalID,
		PayMode:       string(s.PayMode),
		PayAmount:     s.PayAmount,
		Description:   s.Describe(),
	}
}

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	AggregateID string `json:"aggregate_id"`
	Payload     string `json:"payload"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func eventFromData(d *m_outbox.Data) Event {
	return Event{
		EventID:     d.EventID,
		EventType:   d.EventType,
		AggregateID: d.AggregateID,
		Payload:     d.Payload,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
