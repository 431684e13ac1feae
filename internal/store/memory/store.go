package memory

import (
	"context"
	"sync"

	"e-station-go/internal/store"
)

// Compile-time check: *Store must satisfy store.KeyValueStore.
var _ store.KeyValueStore = (*Store)(nil)

// Store is a process-local store.KeyValueStore. Nothing survives a restart,
// so it serves tests and throwaway sessions.
type Store struct {
	mu     sync.Mutex
	values map[string]string
}

func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == "" {
		return "", store.ErrEmptyKey
	}
	value, ok := s.values[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, []store.Entry{{Key: key, Value: value}})
}

func (s *Store) SetMany(_ context.Context, entries []store.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := store.ValidateEntries(entries); err != nil {
		return err
	}
	for _, e := range entries {
		s.values[e.Key] = e.Value
	}
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == "" {
		return store.ErrEmptyKey
	}
	delete(s.values, key)
	return nil
}

// Raw returns the stored value without going through the store interface.
func (s *Store) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *Store) Close() {}
