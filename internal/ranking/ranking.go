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

package ranking

import (
	"fmt"
	"math"
	"sort"

	"e-station-go/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b models.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Rank annotates a copy of every station with its distance from origin and
// returns the copies nearest first. Stations at equal distance keep their
// catalog order. The input slice is left untouched.
func Rank(stations []models.Station, origin models.Coordinates) []models.Station {
	ranked := make([]models.Station, len(stations))
	for i, station := range stations {
		distance := Haversine(origin, station.Coords)
		station.Distance = &distance
		ranked[i] = station
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Distance < *ranked[j].Distance
	})

	return ranked
}

// Nearest ranks stations and keeps the first limit entries (all when limit <= 0).
func Nearest(stations []models.Station, origin models.Coordinates, limit int) []models.Station {
	ranked := Rank(stations, origin)
	if limit > 0 && limit < len(ranked) {
		return ranked[:limit]
	}
	return ranked
}

// FormatDistance renders a ranked distance for display, or "-" when unranked.
func FormatDistance(station models.Station) string {
	if station.Distance == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f km", *station.Distance)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
