package memdb

import "strconv"

// Key identifies a row inside a table.
type Key string

// IntKey builds a Key from an integer identifier.
func IntKey(id int64) Key {
	return Key(strconv.FormatInt(id, 10))
}

// Op is the kind of write a Mutation performs.
type Op int

const (
	// OpInsert fails with ErrRowExists when the key is taken.
	OpInsert Op = iota
	// OpInsertOrUpdate writes the given columns, creating the row if needed.
	OpInsertOrUpdate
	// OpUpdate merges the given columns into an existing row, failing with ErrRowNotFound otherwise.
	OpUpdate
	// OpDelete removes the row; deleting a missing row is a no-op.
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpInsertOrUpdate:
		return "insert_or_update"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Mutation is a single buffered write. Mutations are built by table models
// and applied atomically in groups by a read-write transaction.
type Mutation struct {
	Table   string
	Op      Op
	Key     Key
	Columns []string
	Values  []any
}

// Insert creates a mutation inserting a new row.
func Insert(table string, key Key, columns []string, values []any) *Mutation {
	return &Mutation{Table: table, Op: OpInsert, Key: key, Columns: columns, Values: values}
}

// InsertOrUpdate creates an upsert mutation.
func InsertOrUpdate(table string, key Key, columns []string, values []any) *Mutation {
	return &Mutation{Table: table, Op: OpInsertOrUpdate, Key: key, Columns: columns, Values: values}
}

// Update creates a mutation merging columns into an existing row.
func Update(table string, key Key, columns []string, values []any) *Mutation {
	return &Mutation{Table: table, Op: OpUpdate, Key: key, Columns: columns, Values: values}
}

// Delete creates a mutation removing a row.
func Delete(table string, key Key) *Mutation {
	return &Mutation{Table: table, Op: OpDelete, Key: key}
}
