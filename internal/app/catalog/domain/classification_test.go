package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	for _, bad := range []string{"", "mens_tshirt", "MENS_T_SHIRT", " MENS_SHIRTS"} {
		_, err := ParseCategory(bad)
		assert.ErrorIs(t, err, apperr.ErrValidation, bad)
	}
}

func TestParseSize(t *testing.T) {
	assert.Equal(t, []Size{SizeS, SizeM, SizeL, SizeXL}, Sizes())

	got, err := ParseSize("XL")
	require.NoError(t, err)
	assert.Equal(t, SizeXL, got)

	_, err = ParseSize("xl")
	verr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, FieldSize, verr.Field)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cs := Categories()
	cs[0] = "MUTATED"
	assert.True(t, CategoryMensTShirt.Valid())
	assert.Equal(t, CategoryMensTShirt, Categories()[0])
}
