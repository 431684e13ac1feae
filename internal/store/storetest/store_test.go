package storetest

import (
	"context"
	"errors"
	"testing"

	"e-station-go/internal/store"
)

func TestStore_InjectedFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	s := NewStore()
	s.GetErr, s.SetErr, s.RemoveErr = boom, boom, boom

	if _, err := s.Get(ctx, store.KeyCredits); !errors.Is(err, boom) {
		t.Errorf("Get: expected injected error, got %v", err)
	}
	if err := s.Set(ctx, store.KeyCredits, "1"); !errors.Is(err, boom) {
		t.Errorf("Set: expected injected error, got %v", err)
	}
	if _, ok := s.Raw(store.KeyCredits); ok {
		t.Error("expected failed Set to write nothing")
	}
	if err := s.Remove(ctx, store.KeyCredits); !errors.Is(err, boom) {
		t.Errorf("Remove: expected injected error, got %v", err)
	}
}

func TestStore_PassesThrough(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Set(ctx, store.KeyCredits, "10"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, err := s.Get(ctx, store.KeyCredits); err != nil || v != "10" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	if err := s.Remove(ctx, store.KeyCredits); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get(ctx, store.KeyCredits); !errors.Is(err, store.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}
