package location

import (
	"context"
	"errors"
	"testing"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"
)

func ptr(f float64) *float64 { return &f }

func TestCurrentPosition(t *testing.T) {
	p := NewStaticProvider(models.LocationConfig{
		PermissionGranted: true,
		Latitude:          ptr(-23.55),
		Longitude:         ptr(-46.63),
	})

	pos, err := p.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("CurrentPosition failed: %v", err)
	}
	if pos.Latitude != -23.55 || pos.Longitude != -46.63 {
		t.Errorf("unexpected position %+v", pos)
	}
}

func TestCurrentPosition_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.LocationConfig
	}{
		{"denied", models.LocationConfig{PermissionGranted: false, Latitude: ptr(1), Longitude: ptr(1)}},
		{"no fix", models.LocationConfig{PermissionGranted: true}},
		{"half fix", models.LocationConfig{PermissionGranted: true, Latitude: ptr(1)}},
	}
	for _, tt := range tests {
		_, err := NewStaticProvider(tt.cfg).CurrentPosition(context.Background())
		if !errors.Is(err, apperr.ErrPermission) {
			t.Errorf("%s: expected ErrPermission, got %v", tt.name, err)
		}
	}
}

func TestCurrentPosition_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewStaticProvider(models.LocationConfig{PermissionGranted: true, Latitude: ptr(0), Longitude: ptr(0)})
	if _, err := p.CurrentPosition(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
