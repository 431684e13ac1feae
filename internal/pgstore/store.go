package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"e-station-go/internal/models"
	"e-station-go/internal/store"
	"e-station-go/internal/store/sqlkv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 5
	defaultConnLifetime = time.Hour
	defaultConnIdleTime = 30 * time.Minute
	defaultPingTimeout  = 5 * time.Second
)

const (
	querySchema = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	queryGetValue = `SELECT value FROM kv_store WHERE key = $1`

	queryUpsertValue = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	queryDeleteValue = `DELETE FROM kv_store WHERE key = $1`
)

// Compile-time check: *Store must satisfy store.KeyValueStore.
var _ store.KeyValueStore = (*Store)(nil)

// Store keeps application keys in a single Postgres table.
type Store struct {
	*sqlkv.KV
	db *sql.DB
}

// postgresQueries is the Postgres dialect of the kv_store operations.
var postgresQueries = sqlkv.Queries{
	Get:    queryGetValue,
	Upsert: queryUpsertValue,
	Delete: queryDeleteValue,
}

// NewStore opens a pgx/stdlib backed pool, validates the connection and creates the table.
func NewStore(ctx context.Context, cfg models.PostgresConfig) (*Store, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errors.New("postgres: empty DSN")
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("unable to open postgres: %w", err)
	}

	db.SetMaxOpenConns(positiveOr(cfg.MaxOpenConns, defaultMaxOpenConns))
	db.SetMaxIdleConns(positiveOr(cfg.MaxIdleConns, defaultMaxIdleConns))
	db.SetConnMaxLifetime(durationOr(cfg.ConnMaxLifetime, defaultConnLifetime))
	db.SetConnMaxIdleTime(durationOr(cfg.ConnMaxIdleTime, defaultConnIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, durationOr(cfg.PingTimeout, defaultPingTimeout))
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, querySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	zap.L().Info("Postgres store initialized successfully")
	return &Store{KV: sqlkv.New(db, postgresQueries), db: db}, nil
}

func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close postgres connection", zap.Error(err))
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
