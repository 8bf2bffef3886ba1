package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/handiism/lyricsheet/internal/model"
)

// ErrStaleRefresh is returned by Refresh when a newer refresh finished first.
// The result of the older one is discarded.
var ErrStaleRefresh = errors.New("refresh superseded by a newer one")

// Fetcher produces a catalog. *Assembler satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context) (*model.Catalog, error)
}

// Store owns the current catalog of a long-lived caller such as the TUI.
//
// A successful refresh replaces the catalog, sorted newest release year
// first. A failed refresh keeps the previous catalog. Each refresh takes a
// generation number; if an older refresh finishes after a newer one has
// been applied, its result is dropped.
//
// Catalogs returned by Snapshot and Refresh are shared and must not be
// modified.
type Store struct {
	fetcher Fetcher

	mu       sync.RWMutex
	current  *model.Catalog
	loaded   bool
	issued   uint64
	applied  uint64
	inflight int
	lastErr  error
}

// NewStore creates a Store with an empty catalog.
func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher: fetcher,
		current: model.NewCatalog(""),
	}
}

// Refresh fetches a new catalog and returns the catalog the store holds
// afterwards, together with the fetch error if there was one.
func (s *Store) Refresh(ctx context.Context) (*model.Catalog, error) {
	s.mu.Lock()
	s.issued++
	gen := s.issued
	s.inflight++
	s.mu.Unlock()

	cat, err := s.fetcher.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if gen < s.applied {
		return s.current, ErrStaleRefresh
	}
	if err != nil {
		s.lastErr = err
		return s.current, err
	}
	if cat == nil {
		cat = model.NewCatalog("")
	}

	model.SortByReleaseYear(cat.Songs)
	s.current = cat
	s.applied = gen
	s.loaded = true
	s.lastErr = nil
	return s.current, nil
}

// Snapshot returns the current catalog. Before the first successful refresh
// it is empty.
func (s *Store) Snapshot() *model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loaded returns true once a refresh has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Refreshing returns true while at least one refresh is in flight.
func (s *Store) Refreshing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// LastError returns the error of the most recent failed refresh, cleared by
// the next success.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
