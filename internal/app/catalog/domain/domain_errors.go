package domain

import (
	"fmt"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// Validated field names, as reported in apperr.ValidationError.Field.
const (
	FieldCategory        = "category"
	FieldSize            = "size"
	FieldPrice           = "price"
	FieldStockQuantity   = "stock"
	FieldDiscountPercent = "discount_percent"
	FieldStaleUnits      = "stale_units"
)

var (
	// ErrItemNotFound is returned when no live item has the requested id.
	ErrItemNotFound = fmt.Errorf("item %w", apperr.ErrNotFound)
)
