package memdb

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
)

// Row is a detached copy of a stored row. Changing it never affects the table.
type Row struct {
	key  Key
	cols map[string]any
}

// Key returns the row key.
func (r *Row) Key() Key {
	return r.key
}

// Column returns the value stored under name.
func (r *Row) Column(name string) (any, bool) {
	v, ok := r.cols[name]
	return v, ok
}

// ToStruct decodes the row into dst, a pointer to a struct whose fields carry
// `mapstructure:"<column>"` tags.
func (r *Row) ToStruct(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: false,
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("memdb: build decoder: %w", err)
	}
	if err := dec.Decode(r.cols); err != nil {
		return fmt.Errorf("memdb: decode row %s: %w", r.key, err)
	}
	return nil
}

func newRow(key Key, cols map[string]any) *Row {
	return &Row{key: key, cols: maps.Clone(cols)}
}
