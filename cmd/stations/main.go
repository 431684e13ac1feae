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


package main

import (
	"context"
	"flag"
	"fmt"

	"e-station-go/internal/apperr"
	"e-station-go/internal/common"
	"e-station-go/internal/config"
	"e-station-go/internal/models"
	"e-station-go/internal/ranking"

	"go.uber.org/zap"
)

const defaultLimit = 5

// resolveOrigin prefers a -lat/-lon override, which must name both coordinates.
func resolveOrigin(ctx context.Context, cfg *models.Config, lat, lon *float64) (models.Coordinates, error) {
	switch {
	case lat != nil && lon != nil:
		return models.Coordinates{Latitude: *lat, Longitude: *lon}, nil
	case lat != nil || lon != nil:
		return models.Coordinates{}, apperr.Validation("-lat and -lon must be given together")
	}
	return common.InitializeLocation(cfg).CurrentPosition(ctx)
}

func countAvailable(stations []models.Station) int {
	n := 0
	for _, s := range stations {
		if s.IsAvailable() {
			n++
		}
	}
	return n
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	var lat, lon *float64
	flag.Func("lat", "Override device latitude", func(s string) error {
		v, err := parseCoordinate(s)
		lat = &v
		return err
	})
	flag.Func("lon", "Override device longitude", func(s string) error {
		v, err := parseCoordinate(s)
		lon = &v
		return err
	})
	limitFlag := flag.Int("limit", defaultLimit, "Number of nearest stations to show (0 for all)")
	flag.Parse()

	logger.Info("Starting station search")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	cat, err := common.InitializeCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load station catalog", zap.Error(err))
	}

	origin, err := resolveOrigin(ctx, cfg, lat, lon)
	if err != nil {
		common.Fail(logger, "Failed to resolve current position", err)
	}

	nearest := ranking.Nearest(cat.Stations(), origin, *limitFlag)

	common.PrintHeader(fmt.Sprintf("NEAREST STATIONS (%.5f, %.5f)", origin.Latitude, origin.Longitude), common.WideWidth)
	for i, station := range nearest {
		common.PrintStation(station, i == len(nearest)-1)
	}

	summary := fmt.Sprintf("SUMMARY: %d of %d stations shown, %d available",
		len(nearest), cat.Len(), countAvailable(nearest))
	common.PrintFooter(summary, common.WideWidth)

	logger.Info("Station search completed",
		zap.Int("catalog_size", cat.Len()),
		zap.Int("shown", len(nearest)))
}
