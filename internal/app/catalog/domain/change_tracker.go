package domain

// DirtyField is a change-tracking bit for a mutable item field. Validation
// errors name fields with the Field* strings in domain_errors.go instead.
type DirtyField uint8

const (
	DirtyStock DirtyField = 1 << iota
	DirtyStockUpdatedAt
	DirtyDiscount
)

var dirtyFieldNames = map[DirtyField]string{
	DirtyStock:          "stock",
	DirtyStockUpdatedAt: "stock_updated_at",
	DirtyDiscount:       "discount",
}

func (f DirtyField) String() string {
	if name, ok := dirtyFieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// ChangeTracker records which mutable fields changed since the item was
// loaded, so the repository writes only those columns.
type ChangeTracker struct {
	dirty DirtyField
}

// NewChangeTracker creates a clean ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(f DirtyField) {
	ct.dirty |= f
}

// Dirty checks if a field has been modified.
func (ct *ChangeTracker) Dirty(f DirtyField) bool {
	return ct.dirty&f != 0
}

// HasChanges returns true if any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return ct.dirty != 0
}

// DirtyFields returns the modified fields in declaration order.
func (ct *ChangeTracker) DirtyFields() []DirtyField {
	var fields []DirtyField
	for _, f := range []DirtyField{DirtyStock, DirtyStockUpdatedAt, DirtyDiscount} {
		if ct.Dirty(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
