package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"e-station-go/internal/models"
	"e-station-go/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
)

// Compile-time check: *Store must satisfy store.KeyValueStore.
var _ store.KeyValueStore = (*Store)(nil)

// Store keeps application keys in Redis, optionally namespaced by a prefix.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore returns a redis-backed store and validates the connection with PING.
func NewStore(ctx context.Context, cfg models.RedisConfig) (*Store, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("redis: addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  orDefault(cfg.DialTimeout, defaultDialTimeout),
		ReadTimeout:  orDefault(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout: orDefault(cfg.WriteTimeout, defaultWriteTimeout),
	})

	pingCtx, cancel := context.WithTimeout(ctx, orDefault(cfg.DialTimeout, defaultDialTimeout))
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	zap.L().Info("Successfully connected to Redis", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return NewStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewStoreFromClient wraps an existing client.
func NewStoreFromClient(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", store.ErrEmptyKey
	}

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", store.ErrKeyNotFound
	}
	if err != nil {
		zap.L().Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return store.ErrEmptyKey
	}
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		zap.L().Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// SetMany wraps the writes in MULTI/EXEC so they apply as one unit.
func (s *Store) SetMany(ctx context.Context, entries []store.Entry) error {
	if err := store.ValidateEntries(entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, entry := range entries {
			pipe.Set(ctx, s.key(entry.Key), entry.Value, 0)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("Failed to write keys", zap.Int("count", len(entries)), zap.Error(err))
		return fmt.Errorf("failed to write %d keys: %w", len(entries), err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return store.ErrEmptyKey
	}
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		zap.L().Error("Failed to remove key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() {
	if err := s.client.Close(); err != nil {
		zap.L().Warn("Failed to close redis client", zap.Error(err))
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
