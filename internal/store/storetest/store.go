// Package storetest provides a store.KeyValueStore with injectable failures
// for tests of code built on the store.
package storetest

import (
	"context"

	"e-station-go/internal/store"
	"e-station-go/internal/store/memory"
)

// Compile-time check: *Store must satisfy store.KeyValueStore.
var _ store.KeyValueStore = (*Store)(nil)

// Store wraps a memory.Store. Each non-nil error field is returned by the
// matching operation instead of touching the data.
type Store struct {
	*memory.Store

	GetErr    error
	SetErr    error
	RemoveErr error
}

func NewStore() *Store {
	return &Store{Store: memory.NewStore()}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.GetErr != nil {
		return "", s.GetErr
	}
	return s.Store.Get(ctx, key)
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, []store.Entry{{Key: key, Value: value}})
}

func (s *Store) SetMany(ctx context.Context, entries []store.Entry) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	return s.Store.SetMany(ctx, entries)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	return s.Store.Remove(ctx, key)
}
