package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

var digits = regexp.MustCompile(`^[0-9]+$`)

// Employee is a roster record. Every field is fixed at creation.
type Employee struct {
	id            int64
	name          string
	dateOfJoining time.Time
	phone         string
	nationalID    string
	pay           Pay
}

// NewEmployee validates the input against today's date (from now) and builds
// an employee. The joining date is kept as a calendar date.
func NewEmployee(id int64, name string, dateOfJoining time.Time, phone, nationalID string, pay Pay, now time.Time) (*Employee, error) {
	if err := ValidateNewEmployee(name, dateOfJoining, phone, nationalID, pay, now); err != nil {
		return nil, err
	}
	return &Employee{
		id:            id,
		name:          name,
		dateOfJoining: dateOf(dateOfJoining),
		phone:         phone,
		nationalID:    nationalID,
		pay:           pay,
	}, nil
}

// ValidateNewEmployee checks every creation rule without building an employee.
func ValidateNewEmployee(name string, dateOfJoining time.Time, phone, nationalID string, pay Pay, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return apperr.NewValidationError(FieldName, "must not be empty")
	}
	if dateOfJoining.IsZero() {
		return apperr.NewValidationError(FieldDateOfJoining, "is required")
	}
	if dateOf(dateOfJoining).After(dateOf(now)) {
		return apperr.Validationf(FieldDateOfJoining, "%s is in the future", dateOfJoining.Format(time.DateOnly))
	}
	if !digits.MatchString(phone) {
		return apperr.NewValidationError(FieldPhone, "must contain digits only")
	}
	if n := len(phone); n != 10 && n != 12 && n != 13 {
		return apperr.Validationf(FieldPhone, "must have 10, 12 or 13 digits, got %d", n)
	}
	if !digits.MatchString(nationalID) || len(nationalID) != 12 {
		return apperr.NewValidationError(FieldNationalID, "must be exactly 12 digits")
	}
	if pay.Amount().IsNegative() {
		return apperr.Validationf(FieldPayAmount, "must not be negative, got %s", pay.Amount())
	}
	return nil
}

// ReconstructEmployee reconstitutes an Employee from storage.
func ReconstructEmployee(id int64, name string, dateOfJoining time.Time, phone, nationalID string, pay Pay) *Employee {
	return &Employee{
		id:            id,
		name:          name,
		dateOfJoining: dateOfJoining,
		phone:         phone,
		nationalID:    nationalID,
		pay:           pay,
	}
}

// Getters
func (e *Employee) ID() int64                { return e.id }
func (e *Employee) Name() string             { return e.name }
func (e *Employee) DateOfJoining() time.Time { return e.dateOfJoining }
func (e *Employee) Phone() string            { return e.phone }
func (e *Employee) NationalID() string       { return e.nationalID }
func (e *Employee) Pay() Pay                 { return e.pay }

// Snapshot returns a detached copy of the employee's values.
func (e *Employee) Snapshot() EmployeeSnapshot {
	return EmployeeSnapshot{
		ID:            e.id,
		Name:          e.name,
		DateOfJoining: e.dateOfJoining,
		Phone:         e.phone,
		NationalID:    e.nationalID,
		PayMode:       e.pay.Mode(),
		PayAmount:     e.pay.Amount(),
	}
}

// EmployeeSnapshot is the value handed to callers.
type EmployeeSnapshot struct {
	ID            int64
	Name          string
	DateOfJoining time.Time
	Phone         string
	NationalID    string
	PayMode       PayMode
	PayAmount     decimal.Decimal
}

// Pay rebuilds the tagged pay value.
func (s EmployeeSnapshot) Pay() Pay {
	return Pay{mode: s.PayMode, amount: s.PayAmount}
}

// Describe renders the employment type and pay figure, one per line.
func (s EmployeeSnapshot) Describe() string {
	employment, figure := s.Pay().Label()
	return fmt.Sprintf("Type: %s\n%s: %s", employment, figure, s.PayAmount.String())
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
