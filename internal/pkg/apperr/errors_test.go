package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("message names the field", func(t *testing.T) {
		err := NewValidationError("stock", "must not be negative")
		assert.Equal(t, "invalid stock: must not be negative", err.Error())
	})

	t.Run("matches the validation kind through wrapping", func(t *testing.T) {
		err := fmt.Errorf("add item: %w", Validationf("size", "unknown size %q", "XXL"))
		assert.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrNotFound)

		verr, ok := AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "size", verr.Field)
		assert.Equal(t, `unknown size "XXL"`, verr.Reason)
	})

	t.Run("other errors are not validation errors", func(t *testing.T) {
		_, ok := AsValidation(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestKindsWrap(t *testing.T) {
	errItemNotFound := fmt.Errorf("item %w", ErrNotFound)
	assert.ErrorIs(t, errItemNotFound, ErrNotFound)
	assert.Equal(t, "item not found", errItemNotFound.Error())
}
