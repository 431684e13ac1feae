package models

import "time"

// Config represents the application configuration
type Config struct {
	Store        StoreConfig
	Catalog      CatalogConfig
	Location     LocationConfig
	Reservations ReservationsConfig
}

// StoreConfig selects and tunes the key-value backend
type StoreConfig struct {
	Backend  string // sqlite, redis or postgres
	Database DatabaseConfig
	Redis    RedisConfig
	Postgres PostgresConfig
}

// DatabaseConfig holds SQLite connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig holds Postgres connection settings
type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// CatalogConfig points at the bundled station catalog
type CatalogConfig struct {
	StationsFile string
}

// LocationConfig describes the device position reported to the ranking screen
type LocationConfig struct {
	PermissionGranted bool
	Latitude          *float64
	Longitude         *float64
}

// ReservationsConfig holds reservation ledger settings
type ReservationsConfig struct {
	HistoryOrder string // insertion or scheduled
}
