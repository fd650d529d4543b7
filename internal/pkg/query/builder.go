package query

import (
	"fmt"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Statement is a built query ready to be executed by memdb.
// An empty OrderBy keeps the table's insertion order.
type Statement struct {
	Table   string
	Where   []Condition
	OrderBy string
	Dir     Direction
	Limit   int64
	Offset  int64
}

// Matches reports whether a record satisfies every WHERE condition.
func (s Statement) Matches(r Record) bool {
	for _, c := range s.Where {
		if !c.Match(r) {
			return false
		}
	}
	return true
}

// String renders the statement for debugging and logs.
func (s Statement) String() string {
	var sb strings.Builder
	sb.WriteString("FROM ")
	sb.WriteString(s.Table)
	if len(s.Where) > 0 {
		parts := make([]string, 0, len(s.Where))
		for _, c := range s.Where {
			parts = append(parts, c.String())
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(parts, " AND "))
	}
	if s.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(s.OrderBy)
		if s.Dir == Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	if s.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", s.Limit)
	}
	if s.Offset > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", s.Offset)
	}
	return sb.String()
}

// Builder constructs statements against in-memory tables with a fluent,
// immutable API: every method returns a new Builder.
type Builder struct {
	stmt Statement
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{stmt: Statement{Table: table}}
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.stmt.Where = append(nb.stmt.Where, condition)
	return nb
}

// OrderBy specifies the column and direction for sorting.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.stmt.OrderBy = column
	nb.stmt.Dir = direction
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.stmt.Limit = limit
	return nb
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.stmt.Offset = offset
	return nb
}

// Count returns a builder for the same table and conditions without
// ordering or pagination, for totals next to a paged result.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.stmt.OrderBy = ""
	nb.stmt.Limit = 0
	nb.stmt.Offset = 0
	return nb
}

// Build returns the statement.
func (b *Builder) Build() Statement {
	return b.clone().stmt
}

func (b *Builder) clone() *Builder {
	stmt := b.stmt
	stmt.Where = make([]Condition, len(b.stmt.Where))
	copy(stmt.Where, b.stmt.Where)
	return &Builder{stmt: stmt}
}
