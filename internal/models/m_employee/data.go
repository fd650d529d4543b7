package m_employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Data represents the stored row of the employees table.
type Data struct {
	EmployeeID    int64           `mapstructure:"employee_id"`
	Name          string          `mapstructure:"name"`
	DateOfJoining time.Time       `mapstructure:"date_of_joining"`
	Phone         string          `mapstructure:"phone"`
	NationalID    string          `mapstructure:"national_id"`
	PayMode       string          `mapstructure:"pay_mode"`
	PayAmount     decimal.Decimal `mapstructure:"pay_amount"`
}
