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


// Package sqlkv implements the key-value operations over database/sql for
// backends that keep every key in one table.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"e-station-go/internal/store"

	"go.uber.org/zap"
)

// Queries is a backend's SQL dialect for the kv table.
// Get takes (key), Upsert takes (key, value), Delete takes (key).
type Queries struct {
	Get    string
	Upsert string
	Delete string
}

// KV serves Get, Set, SetMany and Remove. Lifecycle stays with the owner of db.
type KV struct {
	db      *sql.DB
	queries Queries
}

func New(db *sql.DB, queries Queries) *KV {
	return &KV{db: db, queries: queries}
}

func (k *KV) Get(ctx context.Context, key string) (string, error) {
	zap.L().Debug("Reading key", zap.String("key", key))

	if key == "" {
		return "", store.ErrEmptyKey
	}

	var value string
	err := k.db.QueryRowContext(ctx, k.queries.Get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", store.ErrKeyNotFound
	}
	if err != nil {
		zap.L().Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return value, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	return k.SetMany(ctx, []store.Entry{{Key: key, Value: value}})
}

// SetMany upserts every entry inside one database transaction
func (k *KV) SetMany(ctx context.Context, entries []store.Entry) error {
	if err := store.ValidateEntries(entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	tx, err := k.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, k.queries.Upsert, entry.Key, entry.Value); err != nil {
			zap.L().Error("Failed to write key", zap.String("key", entry.Key), zap.Error(err))
			return fmt.Errorf("failed to write key %s: %w", entry.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Debug("Keys written", zap.Int("count", len(entries)))
	return nil
}

func (k *KV) Remove(ctx context.Context, key string) error {
	if key == "" {
		return store.ErrEmptyKey
	}

	if _, err := k.db.ExecContext(ctx, k.queries.Delete, key); err != nil {
		zap.L().Error("Failed to remove key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}

	zap.L().Debug("Key removed", zap.String("key", key))
	return nil
}
