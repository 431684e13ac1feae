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

package models

// Station statuses as published in the catalog
const (
	StationStatusAvailable = "Disponível"
	StationStatusBusy      = "Ocupado"
)

// Coordinates is a position in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Station represents a read-only catalog entry
type Station struct {
	Id        int         `json:"id" yaml:"id"`
	Name      string      `json:"name" yaml:"name"`
	Address   string      `json:"address" yaml:"address"`
	Coords    Coordinates `json:"coords" yaml:"coords"`
	Power     string      `json:"power" yaml:"power"`
	Vacancies string      `json:"vacancies" yaml:"vacancies"`
	Price     float64     `json:"price" yaml:"price"` // per kWh
	Status    string      `json:"status" yaml:"status"`

	// Distance in kilometers, set only by ranking
	Distance *float64 `json:"distance,omitempty" yaml:"-"`
}

// IsAvailable reports whether the station accepts new reservations
func (s Station) IsAvailable() bool {
	return s.Status == StationStatusAvailable
}
