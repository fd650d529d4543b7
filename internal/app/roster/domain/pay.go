package domain

import (
	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// PayMode tags how an employee is paid.
type PayMode string

const (
	PayMonthlySalary PayMode = "MONTHLY_SALARY"
	PayHourlyRate    PayMode = "HOURLY_RATE"
)

// Pay is a tagged variant: the mode decides what Amount means.
type Pay struct {
	mode   PayMode
	amount decimal.Decimal
}

// MonthlySalary is the pay of a full-time employee.
func MonthlySalary(amount decimal.Decimal) Pay {
	return Pay{mode: PayMonthlySalary, amount: amount}
}

// HourlyRate is the pay of a part-time employee.
func HourlyRate(amount decimal.Decimal) Pay {
	return Pay{mode: PayHourlyRate, amount: amount}
}

// NewPay validates the mode tag and a non-negative amount.
func NewPay(mode string, amount decimal.Decimal) (Pay, error) {
	var p Pay
	switch PayMode(mode) {
	case PayMonthlySalary:
		p = MonthlySalary(amount)
	case PayHourlyRate:
		p = HourlyRate(amount)
	default:
		return Pay{}, apperr.Validationf(FieldPayMode, "unknown pay mode %q", mode)
	}
	if amount.IsNegative() {
		return Pay{}, apperr.Validationf(FieldPayAmount, "must not be negative, got %s", amount)
	}
	return p, nil
}

func (p Pay) Mode() PayMode           { return p.mode }
func (p Pay) Amount() decimal.Decimal { return p.amount }

// Label returns the employment type and the name of the pay figure. A mode
// NewPay would reject, such as the zero value's, is labelled "Unknown".
func (p Pay) Label() (employment, figure string) {
	switch p.mode {
	case PayMonthlySalary:
		return "Full Time Employee", "Monthly Salary"
	case PayHourlyRate:
		return "Part Time Employee", "Hourly Payment"
	default:
		return "Unknown", "Pay"
	}
}
