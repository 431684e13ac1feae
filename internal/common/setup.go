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

package common

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"e-station-go/internal/account"
	"e-station-go/internal/apperr"
	"e-station-go/internal/catalog"
	"e-station-go/internal/config"
	"e-station-go/internal/credit"
	"e-station-go/internal/database"
	"e-station-go/internal/location"
	"e-station-go/internal/models"
	"e-station-go/internal/pgstore"
	"e-station-go/internal/redisstore"
	"e-station-go/internal/reservation"
	"e-station-go/internal/store"
	"e-station-go/internal/store/memory"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// init loads environment variables from .env file if it exists
func init() {
	// Environment variables can also be set via shell export, docker, etc.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	} else {
		log.Println("✓ Loaded environment variables from .env file")
	}
}

type Services struct {
	Store        store.KeyValueStore
	Reservations *reservation.Ledger
	Credits      *credit.Ledger
	Accounts     *account.Service
}

func InitializeLogger() (*zap.Logger, func()) {
	cfg := zap.NewProductionConfig()
	if levelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL")); levelStr != "" {
		var level zapcore.Level
		if err := level.Set(strings.ToLower(levelStr)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

// InitializeStore opens the key-value backend selected by cfg.Store.Backend.
func InitializeStore(ctx context.Context, cfg *models.Config) (store.KeyValueStore, error) {
	zap.L().Info("Opening key-value store", zap.String("backend", cfg.Store.Backend))

	var (
		kv  store.KeyValueStore
		err error
	)
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		kv, err = nonNil(database.NewService(ctx, cfg.Store.Database))
	case config.BackendRedis:
		kv, err = nonNil(redisstore.NewStore(ctx, cfg.Store.Redis))
	case config.BackendPostgres:
		kv, err = nonNil(pgstore.NewStore(ctx, cfg.Store.Postgres))
	case config.BackendMemory:
		zap.L().Warn("Using in-memory store, nothing will be persisted")
		kv = memory.NewStore()
	default:
		err = fmt.Errorf("unsupported store backend: %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	return kv, nil
}

// nonNil keeps a failed constructor's typed nil pointer out of the interface.
func nonNil[T store.KeyValueStore](kv T, err error) (store.KeyValueStore, error) {
	if err != nil {
		return nil, err
	}
	return kv, nil
}

// InitializeServices opens the store and wires the ledgers on top of it.
func InitializeServices(ctx context.Context, cfg *models.Config) (*Services, error) {
	kv, err := InitializeStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewServices(kv, cfg)
}

// NewServices wires the ledgers over an already opened store.
func NewServices(kv store.KeyValueStore, cfg *models.Config) (*Services, error) {
	historyOrder, err := reservation.ParseHistoryOrder(cfg.Reservations.HistoryOrder)
	if err != nil {
		kv.Close()
		return nil, err
	}

	return &Services{
		Store:        kv,
		Reservations: reservation.NewLedger(kv, reservation.WithHistoryOrder(historyOrder)),
		Credits:      credit.NewLedger(kv),
		Accounts:     account.NewService(kv),
	}, nil
}

// InitializeCatalog loads the bundled station catalog.
func InitializeCatalog(cfg *models.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog.StationsFile)
}

// InitializeLocation returns the configured device position provider.
func InitializeLocation(cfg *models.Config) location.Provider {
	return location.NewStaticProvider(cfg.Location)
}

func (cs *Services) Close() {
	if cs.Store != nil {
		cs.Store.Close()
	}
}

// exit is replaced in tests.
var exit = os.Exit

// Fail prints the user-facing notice for err, runs cleanups in order and
// exits non-zero. Deferred calls in the caller do not run, so anything that
// must be closed is passed as a cleanup.
func Fail(logger *zap.Logger, action string, err error, cleanups ...func()) {
	logger.Error(action, zap.Error(err))
	fmt.Fprintln(os.Stderr, "Error:", apperr.UserMessage(err))
	for _, cleanup := range cleanups {
		cleanup()
	}
	_ = logger.Sync()
	exit(1)
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
