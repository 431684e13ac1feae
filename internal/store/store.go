/**
 * Copyright 2026-present The E-Station Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors shared across all backend implementations.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrEmptyKey    = errors.New("key cannot be empty")
	ErrCorruptData = errors.New("stored value is not valid JSON")
)

// Keys persisted by the application. Each value is a UTF-8 JSON document
// (credits is a bare decimal string).
const (
	KeyUserData     = "user_data"
	KeyUserToken    = "user_token"
	KeyReservations = "reservations"
	KeyCredits      = "credits"
	KeyTransactions = "transactions"
)

// Entry is a single key/value pair written by SetMany.
type Entry struct {
	Key   string
	Value string
}

// KeyValueStore defines the contract that every backend (SQLite, Redis, Postgres) must satisfy.
type KeyValueStore interface {
	// Get returns the stored value, or ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all entries atomically: either every entry is stored or none is.
	SetMany(ctx context.Context, entries []Entry) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// --- Lifecycle ---
	Close()
}

// ValidateEntries rejects empty keys before a backend opens a transaction.
func ValidateEntries(entries []Entry) error {
	for _, e := range entries {
		if e.Key == "" {
			return ErrEmptyKey
		}
	}
	return nil
}

// LoadJSON reads key and decodes it into dst. It returns ErrKeyNotFound for an
// absent key, ErrCorruptData when the stored value cannot be decoded, and the
// backend error otherwise.
func LoadJSON(ctx context.Context, kv KeyValueStore, key string, dst any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: key %s: %v", ErrCorruptData, key, err)
	}
	return nil
}

// EncodeJSON builds an Entry holding the JSON encoding of v.
func EncodeJSON(key string, v any) (Entry, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return Entry{Key: key, Value: string(data)}, nil
}
