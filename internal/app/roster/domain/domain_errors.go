package domain

import (
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// Validated field names, as reported in apperr.ValidationError.Field.
const (
	FieldName          = "name"
	FieldDateOfJoining = "date_of_joining"
	FieldPhone         = "phone"
	FieldNationalID    = "national_id"
	FieldPayMode       = "pay_mode"
	FieldPayAmount     = "pay_amount"
)

var (
	// ErrRecordNotFound is returned when no employee matches the identifier.
	ErrRecordNotFound = fmt.Errorf("employee %w", apperr.ErrNotFound)

	// ErrDuplicateNationalID is returned when the national ID is already on the roster.
	ErrDuplicateNationalID = fmt.Errorf("national id %w", apperr.ErrDuplicate)
)
