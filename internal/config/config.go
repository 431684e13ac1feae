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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"e-station-go/internal/models"
)

// Supported STORE_BACKEND values
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

func Load() (*models.Config, error) {
	connMaxLifetime, err := getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	connMaxIdleTime, err := getEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second)
	if err != nil {
		return nil, err
	}

	pingTimeout, err := getEnvDuration("DB_PING_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	redisDialTimeout, err := getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	latitude, err := getEnvFloat("DEVICE_LATITUDE")
	if err != nil {
		return nil, err
	}

	longitude, err := getEnvFloat("DEVICE_LONGITUDE")
	if err != nil {
		return nil, err
	}

	backend := strings.ToLower(getEnvString("STORE_BACKEND", BackendSQLite))
	switch backend {
	case BackendSQLite, BackendRedis, BackendPostgres, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND: %q", backend)
	}

	historyOrder := strings.ToLower(getEnvString("HISTORY_ORDER", "insertion"))
	if historyOrder != "insertion" && historyOrder != "scheduled" {
		return nil, fmt.Errorf("invalid HISTORY_ORDER: %q", historyOrder)
	}

	return &models.Config{
		Store: models.StoreConfig{
			Backend: backend,
			Database: models.DatabaseConfig{
				Path:            getEnvString("DATABASE_PATH", "estation.db"),
				MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: connMaxLifetime,
				ConnMaxIdleTime: connMaxIdleTime,
				PingTimeout:     pingTimeout,
			},
			Redis: models.RedisConfig{
				Addr:        getEnvString("REDIS_ADDR", "localhost:6379"),
				Password:    getEnvString("REDIS_PASSWORD", ""),
				DB:          getEnvInt("REDIS_DB", 0),
				KeyPrefix:   getEnvString("REDIS_KEY_PREFIX", "estation"),
				DialTimeout: redisDialTimeout,
			},
			Postgres: models.PostgresConfig{
				DSN:             getEnvString("POSTGRES_DSN", ""),
				MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: connMaxLifetime,
				ConnMaxIdleTime: connMaxIdleTime,
				PingTimeout:     pingTimeout,
			},
		},
		Catalog: models.CatalogConfig{
			StationsFile: getEnvString("STATIONS_FILE", "stations.yaml"),
		},
		Location: models.LocationConfig{
			PermissionGranted: strings.ToLower(getEnvString("LOCATION_PERMISSION", "granted")) == "granted",
			Latitude:          latitude,
			Longitude:         longitude,
		},
		Reservations: models.ReservationsConfig{
			HistoryOrder: historyOrder,
		},
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat returns nil when the variable is unset.
func getEnvFloat(key string) (*float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number for %s: %q (%w)", key, value, err)
	}
	return &f, nil
}
