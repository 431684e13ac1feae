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

package database

import "e-station-go/internal/store/sqlkv"

// sqliteQueries is the SQLite dialect of the kv_store operations.
var sqliteQueries = sqlkv.Queries{
	Get:    queryGetValue,
	Upsert: queryUpsertValue,
	Delete: queryDeleteValue,
}

const (
	queryGetValue = `
		SELECT value
		FROM kv_store
		WHERE key = ?`

	queryUpsertValue = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	queryDeleteValue = `
		DELETE FROM kv_store WHERE key = ?`
)
