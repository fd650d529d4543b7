// Package memdb is a small in-process table store.
//
// Tables keep rows in insertion order. Writes are expressed as Mutations and
// applied atomically: either every mutation of a batch lands or none does.
// Read-write transactions are serialized by a single writer lock, so a
// transaction observes a snapshot that no other writer can change before it
// commits. Reads outside transactions take a shared lock only while copying
// rows out.
package memdb

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/light-bringer/wardrobe-catalog/internal/pkg/query"
)

var (
	// ErrRowNotFound is returned by ReadRow and update mutations for a missing key.
	ErrRowNotFound = errors.New("memdb: row not found")
	// ErrRowExists is returned by insert mutations for a taken key.
	ErrRowExists = errors.New("memdb: row already exists")
	// ErrUnknownTable is returned for a table that was never created.
	ErrUnknownTable = errors.New("memdb: unknown table")
)

// Reader is the read surface shared by DB and ReadWriteTransaction.
type Reader interface {
	ReadRow(ctx context.Context, table string, key Key) (*Row, error)
	Query(ctx context.Context, stmt query.Statement) ([]*Row, error)
	Count(ctx context.Context, stmt query.Statement) (int64, error)
}

type table struct {
	order []Key
	rows  map[Key]map[string]any
}

// DB holds every table of the process.
type DB struct {
	writeMu sync.Mutex // serializes writers, held for a whole transaction
	mu      sync.RWMutex
	tables  map[string]*table
}

var _ Reader = (*DB)(nil)

// New creates a DB with the given tables.
func New(tables ...string) *DB {
	db := &DB{tables: make(map[string]*table, len(tables))}
	for _, name := range tables {
		db.tables[name] = &table{rows: make(map[Key]map[string]any)}
	}
	return db
}

// CreateTable adds a table if it does not exist yet.
func (db *DB) CreateTable(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.tables[name]; !ok {
		db.tables[name] = &table{rows: make(map[Key]map[string]any)}
	}
}

// ReadRow returns a copy of the row stored under key.
func (db *DB) ReadRow(ctx context.Context, tableName string, key Key) (*Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.tables[tableName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, tableName)
	}
	cols, ok := t.rows[key]
	if !ok {
		return nil, ErrRowNotFound
	}
	return newRow(key, cols), nil
}

// Query returns copies of the rows matching stmt. Rows come back in insertion
// order unless the statement orders them. Ties keep insertion order when
// ascending and reverse insertion order when descending.
func (db *DB) Query(ctx context.Context, stmt query.Statement) ([]*Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := db.scan(stmt)
	if err != nil {
		return nil, err
	}

	if stmt.OrderBy != "" {
		if stmt.Dir == query.Desc {
			slices.Reverse(rows)
		}
		slices.SortStableFunc(rows, func(a, b *Row) int {
			av, _ := a.Column(stmt.OrderBy)
			bv, _ := b.Column(stmt.OrderBy)
			c := query.Compare(av, bv)
			if stmt.Dir == query.Desc {
				return -c
			}
			return c
		})
	}

	if stmt.Offset > 0 {
		if stmt.Offset >= int64(len(rows)) {
			return []*Row{}, nil
		}
		rows = rows[stmt.Offset:]
	}
	if stmt.Limit > 0 && stmt.Limit < int64(len(rows)) {
		rows = rows[:stmt.Limit]
	}
	return rows, nil
}

// Count returns the number of rows matching stmt's conditions.
func (db *DB) Count(ctx context.Context, stmt query.Statement) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.tables[stmt.Table]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTable, stmt.Table)
	}
	var n int64
	for _, key := range t.order {
		if stmt.Matches(&Row{key: key, cols: t.rows[key]}) {
			n++
		}
	}
	return n, nil
}

func (db *DB) scan(stmt query.Statement) ([]*Row, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.tables[stmt.Table]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, stmt.Table)
	}
	rows := make([]*Row, 0, len(t.order))
	for _, key := range t.order {
		// Match against the live map, copy only what is returned.
		if stmt.Matches(&Row{key: key, cols: t.rows[key]}) {
			rows = append(rows, newRow(key, t.rows[key]))
		}
	}
	return rows, nil
}

// ReadWriteTransaction runs fn while holding the writer lock, then commits the
// mutations fn buffered. Reads inside fn see committed state only, never the
// transaction's own buffered writes. If fn returns an error nothing is written.
func (db *DB) ReadWriteTransaction(ctx context.Context, fn func(context.Context, *ReadWriteTransaction) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	txn := &ReadWriteTransaction{db: db}
	if err := fn(ctx, txn); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.commit(txn.buffered)
}

type tableKey struct {
	table string
	key   Key
}

// commit validates the whole batch against the current state before touching
// any table. Callers hold writeMu.
func (db *DB) commit(muts []*Mutation) error {
	if len(muts) == 0 {
		return nil
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	exists := make(map[tableKey]bool)
	present := func(t *table, tk tableKey) bool {
		if v, ok := exists[tk]; ok {
			return v
		}
		_, ok := t.rows[tk.key]
		return ok
	}

	for _, m := range muts {
		t, ok := db.tables[m.Table]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTable, m.Table)
		}
		if len(m.Columns) != len(m.Values) {
			return fmt.Errorf("memdb: %s %s/%s: %d columns but %d values", m.Op, m.Table, m.Key, len(m.Columns), len(m.Values))
		}
		tk := tableKey{table: m.Table, key: m.Key}
		switch m.Op {
		case OpInsert:
			if present(t, tk) {
				return fmt.Errorf("%w: %s/%s", ErrRowExists, m.Table, m.Key)
			}
			exists[tk] = true
		case OpUpdate:
			if !present(t, tk) {
				return fmt.Errorf("%w: %s/%s", ErrRowNotFound, m.Table, m.Key)
			}
		case OpInsertOrUpdate:
			exists[tk] = true
		case OpDelete:
			exists[tk] = false
		default:
			return fmt.Errorf("memdb: unknown op %d", m.Op)
		}
	}

	for _, m := range muts {
		t := db.tables[m.Table]
		switch m.Op {
		case OpInsert, OpInsertOrUpdate, OpUpdate:
			cols, ok := t.rows[m.Key]
			if !ok {
				cols = make(map[string]any, len(m.Columns))
				t.rows[m.Key] = cols
				t.order = append(t.order, m.Key)
			}
			for i, c := range m.Columns {
				cols[c] = m.Values[i]
			}
		case OpDelete:
			if _, ok := t.rows[m.Key]; !ok {
				continue
			}
			delete(t.rows, m.Key)
			if i := slices.Index(t.order, m.Key); i >= 0 {
				t.order = slices.Delete(t.order, i, i+1)
			}
		}
	}
	return nil
}

// ReadWriteTransaction buffers writes until its function returns.
type ReadWriteTransaction struct {
	db       *DB
	buffered []*Mutation
}

var _ Reader = (*ReadWriteTransaction)(nil)

// ReadRow reads committed state.
func (t *ReadWriteTransaction) ReadRow(ctx context.Context, table string, key Key) (*Row, error) {
	return t.db.ReadRow(ctx, table, key)
}

// Query reads committed state.
func (t *ReadWriteTransaction) Query(ctx context.Context, stmt query.Statement) ([]*Row, error) {
	return t.db.Query(ctx, stmt)
}

// Count reads committed state.
func (t *ReadWriteTransaction) Count(ctx context.Context, stmt query.Statement) (int64, error) {
	return t.db.Count(ctx, stmt)
}

// BufferWrite queues mutations for the commit. Nil mutations are skipped.
func (t *ReadWriteTransaction) BufferWrite(muts []*Mutation) {
	for _, m := range muts {
		if m != nil {
			t.buffered = append(t.buffered, m)
		}
	}
}
