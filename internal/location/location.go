package location

import (
	"context"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"

	"go.uber.org/zap"
)

// Provider reports the device's current position.
type Provider interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// Compile-time check: StaticProvider must satisfy Provider.
var _ Provider = (*StaticProvider)(nil)

// StaticProvider serves a position fixed by configuration, standing in for
// the platform geolocation service.
type StaticProvider struct {
	granted  bool
	position *models.Coordinates
}

// NewStaticProvider builds a provider from the location settings.
func NewStaticProvider(cfg models.LocationConfig) *StaticProvider {
	p := &StaticProvider{granted: cfg.PermissionGranted}
	if cfg.Latitude != nil && cfg.Longitude != nil {
		p.position = &models.Coordinates{Latitude: *cfg.Latitude, Longitude: *cfg.Longitude}
	}
	return p
}

// CurrentPosition fails with ErrPermission when access is denied or no fix is available.
func (p *StaticProvider) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	if !p.granted {
		zap.L().Warn("Location permission denied")
		return models.Coordinates{}, apperr.Permission("location access is required to find nearby stations")
	}
	if p.position == nil {
		zap.L().Warn("No location fix available")
		return models.Coordinates{}, apperr.Permission("current location is unavailable")
	}

	zap.L().Debug("Current position",
		zap.Float64("latitude", p.position.Latitude),
		zap.Float64("longitude", p.position.Longitude))
	return *p.position, nil
}
