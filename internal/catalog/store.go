package catalog

import "sync/atomic"

// Source hands out the current catalog snapshot
type Source interface {
	Snapshot() *Catalog
}

// Store holds the live catalog. Readers take a snapshot and keep using it for
// the whole computation; a reload swaps in a new snapshot without touching
// the old one.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store serving cat. A nil catalog is replaced by Empty().
func NewStore(cat *Catalog) *Store {
	s := &Store{}
	s.Replace(cat)
	return s
}

// Snapshot returns the current catalog
func (s *Store) Snapshot() *Catalog {
	return s.current.Load()
}

// Replace publishes a new catalog
func (s *Store) Replace(cat *Catalog) {
	if cat == nil {
		cat = Empty()
	}
	s.current.Store(cat)
}
