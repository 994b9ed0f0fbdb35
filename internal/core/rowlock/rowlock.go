// Package rowlock provides per-row shared/exclusive locks for the in-memory
// catalog store, mirroring what SELECT ... FOR SHARE / FOR NO KEY UPDATE give
// the Postgres store.
package rowlock

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Mode selects how a row is held.
type Mode int

const (
	// Shared may be held by many holders at once. Used for rows a mutation
	// only references (the brand and category of a product being written).
	Shared Mode = iota
	// Exclusive serialises mutators of the same row.
	Exclusive
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Key identifies a row.
type Key struct {
	Entity string
	ID     int64
}

const exclusiveWeight = 1 << 30

type row struct {
	sem  *semaphore.Weighted
	refs int
}

// Table is a lock table keyed by row. Entries are created on first use and
// dropped once nobody holds or waits for them. The zero value is not usable;
// call New.
type Table struct {
	mu   sync.Mutex
	rows map[Key]*row
}

// New returns an empty lock table.
func New() *Table {
	return &Table{rows: make(map[Key]*row)}
}

// Acquire blocks until key is held in mode or ctx is done.
// The returned release func is idempotent.
func (t *Table) Acquire(ctx context.Context, key Key, mode Mode) (func(), error) {
	weight := int64(1)
	if mode == Exclusive {
		weight = exclusiveWeight
	}

	r := t.ref(key)
	if err := r.sem.Acquire(ctx, weight); err != nil {
		t.unref(key)
		return nil, fmt.Errorf("rowlock: acquire %s %s/%d: %w", mode, key.Entity, key.ID, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.sem.Release(weight)
			t.unref(key)
		})
	}, nil
}

// Len returns the number of rows currently held or awaited.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

func (t *Table) ref(key Key) *row {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[key]
	if !ok {
		r = &row{sem: semaphore.NewWeighted(exclusiveWeight)}
		t.rows[key] = r
	}
	r.refs++
	return r
}

func (t *Table) unref(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[key]
	if !ok {
		return
	}
	r.refs--
	if r.refs == 0 {
		delete(t.rows, key)
	}
}
