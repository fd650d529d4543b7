package domain

import (
	"slices"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// Category is the closed set of classification tags an item can carry.
type Category string

const (
	CategoryMensTShirt  Category = "MENS_TSHIRT"
	CategoryMensShirts  Category = "MENS_SHIRTS"
	CategoryWomensJeans Category = "WOMENS_JEANS"
)

var categories = []Category{CategoryMensTShirt, CategoryMensShirts, CategoryWomensJeans}

// Categories returns every known category.
func Categories() []Category {
	return slices.Clone(categories)
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// ParseCategory converts an exact, case-sensitive tag into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", apperr.Validationf(FieldCategory, "unknown category %q", s)
	}
	return c, nil
}

// Size is the closed set of garment sizes.
type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

var sizes = []Size{SizeS, SizeM, SizeL, SizeXL}

// Sizes returns every known size, smallest first.
func Sizes() []Size {
	return slices.Clone(sizes)
}

// Valid reports whether s is a member of the size set.
func (s Size) Valid() bool {
	return slices.Contains(sizes, s)
}

// ParseSize converts an exact, case-sensitive label into a Size.
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if !size.Valid() {
		return "", apperr.Validationf(FieldSize, "unknown size %q", s)
	}
	return size, nil
}
