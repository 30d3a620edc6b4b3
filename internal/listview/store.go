package listview

import (
	"context"
	"sync"
)

// Loader fetches the full record set from the collaborator API.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Store holds the last successfully fetched record set for one list view.
// A failed Load keeps the previous records (stale-but-present) and records
// the error for the view to surface. Overlapping Loads are guarded by a
// sequence number: a response from a superseded request is discarded.
type Store[T any] struct {
	loader  Loader[T]
	lastErr error
	records []T
	seq     uint64
	mu      sync.Mutex
	loaded  bool
}

// NewStore creates a store backed by the given loader.
func NewStore[T any](loader Loader[T]) *Store[T] {
	return &Store[T]{loader: loader}
}

// Load fetches records and replaces the held set wholesale on success.
// On failure the previous records are kept and the error is returned and
// retained for Err. No automatic retry.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	loader := s.loader
	s.mu.Unlock()

	records, err := loader(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer Load was issued while this one was in flight.
		return nil
	}

	if err != nil {
		s.lastErr = err
		return err
	}

	s.records = records
	s.loaded = true
	s.lastErr = nil
	return nil
}

// Replace installs records directly, bypassing the loader. Used when a
// mutation response already carries the refreshed list, and by tests.
func (s *Store[T]) Replace(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.loaded = true
	s.lastErr = nil
}

// Records returns the held record set. Possibly stale after a failed Load.
func (s *Store[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Err returns the error from the most recent applied Load, if any.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Loaded reports whether any Load has ever succeeded.
func (s *Store[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
