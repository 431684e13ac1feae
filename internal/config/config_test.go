package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORE_BACKEND", "DATABASE_PATH", "HISTORY_ORDER", "DEVICE_LATITUDE",
		"DEVICE_LONGITUDE", "LOCATION_PERMISSION", "DB_PING_TIMEOUT", "STATIONS_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("expected sqlite backend, got %s", cfg.Store.Backend)
	}
	if cfg.Store.Database.Path != "estation.db" {
		t.Errorf("unexpected database path %s", cfg.Store.Database.Path)
	}
	if cfg.Store.Database.PingTimeout != 5*time.Second {
		t.Errorf("unexpected ping timeout %v", cfg.Store.Database.PingTimeout)
	}
	if cfg.Catalog.StationsFile != "stations.yaml" {
		t.Errorf("unexpected stations file %s", cfg.Catalog.StationsFile)
	}
	if !cfg.Location.PermissionGranted || cfg.Location.Latitude != nil {
		t.Errorf("unexpected location config %+v", cfg.Location)
	}
	if cfg.Reservations.HistoryOrder != "insertion" {
		t.Errorf("unexpected history order %s", cfg.Reservations.HistoryOrder)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("DEVICE_LATITUDE", "-23.55")
	t.Setenv("DEVICE_LONGITUDE", "-46.63")
	t.Setenv("LOCATION_PERMISSION", "denied")
	t.Setenv("HISTORY_ORDER", "scheduled")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Backend != BackendRedis || cfg.Store.Redis.Addr != "cache:6380" {
		t.Errorf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Location.Latitude == nil || *cfg.Location.Latitude != -23.55 {
		t.Errorf("unexpected latitude %v", cfg.Location.Latitude)
	}
	if cfg.Location.PermissionGranted {
		t.Error("expected permission to be denied")
	}
	if cfg.Reservations.HistoryOrder != "scheduled" {
		t.Errorf("unexpected history order %s", cfg.Reservations.HistoryOrder)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"STORE_BACKEND", "mongo"},
		{"HISTORY_ORDER", "random"},
		{"DEVICE_LATITUDE", "north"},
		{"DB_PING_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
