package query

import (
	"fmt"
	"reflect"
	"time"
)

// Record is anything a Condition can be evaluated against.
// memdb rows implement it.
type Record interface {
	Column(name string) (any, bool)
}

// Condition represents a WHERE clause condition evaluated in memory.
type Condition interface {
	// Match reports whether the record satisfies the condition.
	Match(r Record) bool

	// String renders the condition for debugging, e.g. "category = MENS_SHIRTS".
	String() string
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value any
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("brand", "Zara") matches rows whose brand column is exactly "Zara".
func Eq(field string, value any) Condition {
	return &eqCondition{
		field: field,
		value: normalize(value),
	}
}

func (c *eqCondition) Match(r Record) bool {
	v, ok := r.Column(c.field)
	if !ok {
		return false
	}
	return equal(normalize(v), c.value)
}

func (c *eqCondition) String() string {
	return fmt.Sprintf("%s = %v", c.field, c.value)
}

// normalize widens integer kinds to int64 so Eq("stock", 0) matches an int64 column.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case int8:
		return int64(n)
	default:
		return v
	}
}

func equal(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Compare orders two column values of the same kind.
// Values of unsupported or mismatched kinds compare equal.
func Compare(a, b any) int {
	switch av := normalize(a).(type) {
	case int64:
		if bv, ok := normalize(b).(int64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
		}
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return 0
}
