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

package reservation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"
	"e-station-go/internal/store"

	"go.uber.org/zap"
)

// HistoryOrder selects how ListHistory orders past reservations.
type HistoryOrder int

const (
	// HistoryByInsertion lists past reservations newest booking first.
	// It matches a true date sort only while bookings are made in
	// chronological order.
	HistoryByInsertion HistoryOrder = iota
	// HistoryByScheduledAt lists past reservations by scheduled time, most recent first.
	HistoryByScheduledAt
)

// ParseHistoryOrder maps a configuration value to a HistoryOrder.
func ParseHistoryOrder(s string) (HistoryOrder, error) {
	switch s {
	case "", "insertion":
		return HistoryByInsertion, nil
	case "scheduled":
		return HistoryByScheduledAt, nil
	default:
		return HistoryByInsertion, apperr.Validation("unknown history order %q", s)
	}
}

// Ledger owns the persisted reservation list. Active and history views are
// computed on every read; nothing is cached.
type Ledger struct {
	kv           store.KeyValueStore
	historyOrder HistoryOrder
	mu           sync.Mutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithHistoryOrder overrides the default insertion-based history ordering.
func WithHistoryOrder(order HistoryOrder) Option {
	return func(l *Ledger) {
		l.historyOrder = order
	}
}

func NewLedger(kv store.KeyValueStore, opts ...Option) *Ledger {
	l := &Ledger{kv: kv, historyOrder: HistoryByInsertion}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append durably adds one reservation to the end of the stored list.
func (l *Ledger) Append(ctx context.Context, record models.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.load(ctx)
	if err != nil {
		return err
	}
	all = append(all, record)

	entry, err := store.EncodeJSON(store.KeyReservations, all)
	if err != nil {
		return apperr.Persistence("encode reservations", err)
	}
	if err := l.kv.SetMany(ctx, []store.Entry{entry}); err != nil {
		zap.L().Error("Failed to save reservation", zap.String("reservation_id", record.Id), zap.Error(err))
		return apperr.Persistence("save reservation", err)
	}

	zap.L().Info("Reservation saved",
		zap.String("reservation_id", record.Id),
		zap.String("station", record.StationName),
		zap.Time("scheduled_at", record.ScheduledAt),
		zap.Int("total", len(all)))
	return nil
}

// ListActive returns reservations scheduled at or after now, soonest first.
func (l *Ledger) ListActive(ctx context.Context, now time.Time) ([]models.Reservation, error) {
	all, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if !r.ScheduledAt.Before(now) {
			active = append(active, r)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].ScheduledAt.Before(active[j].ScheduledAt)
	})

	zap.L().Debug("Listed active reservations", zap.Int("count", len(active)))
	return active, nil
}

// ListHistory returns reservations scheduled before now, in the ledger's
// configured history order.
func (l *Ledger) ListHistory(ctx context.Context, now time.Time) ([]models.Reservation, error) {
	all, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	past := make([]models.Reservation, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].ScheduledAt.Before(now) {
			past = append(past, all[i])
		}
	}

	if l.historyOrder == HistoryByScheduledAt {
		sort.SliceStable(past, func(i, j int) bool {
			return past[i].ScheduledAt.After(past[j].ScheduledAt)
		})
	}

	zap.L().Debug("Listed reservation history", zap.Int("count", len(past)))
	return past, nil
}

// All returns every stored reservation in insertion order.
func (l *Ledger) All(ctx context.Context) ([]models.Reservation, error) {
	return l.load(ctx)
}

// load reads the stored list. A missing or unreadable document yields an
// empty list; a backend failure is a persistence error.
func (l *Ledger) load(ctx context.Context) ([]models.Reservation, error) {
	var all []models.Reservation
	err := store.LoadJSON(ctx, l.kv, store.KeyReservations, &all)
	switch {
	case err == nil:
		return all, nil
	case errors.Is(err, store.ErrKeyNotFound):
		return []models.Reservation{}, nil
	case errors.Is(err, store.ErrCorruptData):
		zap.L().Warn("Stored reservations are corrupt, starting from an empty list", zap.Error(err))
		return []models.Reservation{}, nil
	default:
		zap.L().Error("Failed to load reservations", zap.Error(err))
		return nil, apperr.Persistence("load reservations", err)
	}
}
