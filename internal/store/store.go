// Package store holds the in-memory tables shared across request handlers.
// Each table is guarded by its own lock; no operation spans two tables.
package store

import (
	"maps"
	"sync"
)

// Table maps string keys to records of one type. All methods are safe for
// concurrent use. Records are never removed; the table only grows.
type Table[R any] struct {
	mu   sync.RWMutex
	rows map[string]R
}

func newTable[R any]() *Table[R] {
	return &Table[R]{rows: make(map[string]R)}
}

func (t *Table[R]) Get(key string) (R, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.rows[key]
	return r, ok
}

func (t *Table[R]) Contains(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[key]
	return ok
}

// Insert stores the record under key, overwriting any existing record.
func (t *Table[R]) Insert(key string, row R) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[key] = row
}

// InsertIfAbsent stores the record only if the key is not already present
// (first write wins). The check and the write happen under one critical
// section. Reports whether the record was inserted.
func (t *Table[R]) InsertIfAbsent(key string, row R) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[key]; ok {
		return false
	}
	t.rows[key] = row
	return true
}

// Snapshot returns a copy of the table's contents. Mutating the returned
// map does not affect the table.
func (t *Table[R]) Snapshot() map[string]R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.rows)
}

func (t *Table[R]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Store is the shared database handle injected into every handler.
type Store struct {
	Links   *Table[ShortLink]
	Users   *Table[User]
	Devices *Table[Device]
	Scans   *Table[Scan]
}

func New() *Store {
	return &Store{
		Links:   newTable[ShortLink](),
		Users:   newTable[User](),
		Devices: newTable[Device](),
		Scans:   newTable[Scan](),
	}
}
