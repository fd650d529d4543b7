package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog"
	"github.com/light-bringer/wardrobe-catalog/internal/app/roster"
)

// ItemBuilder helps create items for tests with a fluent interface
type ItemBuilder struct {
	item catalog.NewItem
}

// NewItemBuilder creates a new builder with default values
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		item: catalog.NewItem{
			Category: "MENS_TSHIRT",
			Size:     "M",
			Stock:    10,
			Price:    decimal.RequireFromString("19.99"),
			Brand:    "Levis",
			Color:    "blue",
		},
	}
}

// WithCategory sets the category tag
func (b *ItemBuilder) WithCategory(category string) *ItemBuilder {
	b.item.Category = category
	return b
}

// WithSize sets the size label
func (b *ItemBuilder) WithSize(size string) *ItemBuilder {
	b.item.Size = size
	return b
}

// WithStock sets the initial stock
func (b *ItemBuilder) WithStock(stock int64) *ItemBuilder {
	b.item.Stock = stock
	return b
}

// WithPrice sets the price from a decimal string
func (b *ItemBuilder) WithPrice(price string) *ItemBuilder {
	b.item.Price = decimal.RequireFromString(price)
	return b
}

// WithBrand sets the brand
func (b *ItemBuilder) WithBrand(brand string) *ItemBuilder {
	b.item.Brand = brand
	return b
}

// WithColor sets the color
func (b *ItemBuilder) WithColor(color string) *ItemBuilder {
	b.item.Color = color
	return b
}

// Build returns the catalog.NewItem
func (b *ItemBuilder) Build() catalog.NewItem {
	return b.item
}

// EmployeeBuilder helps create employees for tests with a fluent interface
type EmployeeBuilder struct {
	emp roster.NewEmployee
}

// NewEmployeeBuilder creates a builder for a salaried employee who joined at Epoch.
func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		emp: roster.NewEmployee{
			Name:          "Asha Rao",
			DateOfJoining: Epoch,
			Phone:         "9876543210",
			NationalID:    "123456789012",
			PayMode:       "MONTHLY_SALARY",
			PayAmount:     decimal.NewFromInt(50000),
		},
	}
}

// WithName sets the name
func (b *EmployeeBuilder) WithName(name string) *EmployeeBuilder {
	b.emp.Name = name
	return b
}

// WithDateOfJoining sets the joining date
func (b *EmployeeBuilder) WithDateOfJoining(d time.Time) *EmployeeBuilder {
	b.emp.DateOfJoining = d
	return b
}

// WithPhone sets the phone number
func (b *EmployeeBuilder) WithPhone(phone string) *EmployeeBuilder {
	b.emp.Phone = phone
	return b
}

// WithNationalID sets the national ID
func (b *EmployeeBuilder) WithNationalID(nid string) *EmployeeBuilder {
	b.emp.NationalID = nid
	return b
}

// WithHourlyRate switches the employee to hourly pay
func (b *EmployeeBuilder) WithHourlyRate(rate string) *EmployeeBuilder {
	b.emp.PayMode = "HOURLY_RATE"
	b.emp.PayAmount = decimal.RequireFromString(rate)
	return b
}

// WithMonthlySalary switches the employee to a monthly salary
func (b *EmployeeBuilder) WithMonthlySalary(salary string) *EmployeeBuilder {
	b.emp.PayMode = "MONTHLY_SALARY"
	b.emp.PayAmount = decimal.RequireFromString(salary)
	return b
}

// Build returns the roster.NewEmployee
func (b *EmployeeBuilder) Build() roster.NewEmployee {
	return b.emp
}
