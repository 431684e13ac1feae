package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"e-station-go/internal/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type catalogFile struct {
	Stations []models.Station `yaml:"stations"`
}

// Catalog is the immutable, bundled list of charging stations.
type Catalog struct {
	stations []models.Station
}

// Load reads and validates a stations YAML file. Relative paths resolve
// against the working directory.
func Load(stationsFile string) (*Catalog, error) {
	var stationsPath string
	if filepath.IsAbs(stationsFile) {
		stationsPath = stationsFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		stationsPath = filepath.Join(wd, stationsFile)
	}

	data, err := os.ReadFile(stationsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", stationsFile, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", stationsFile, err)
	}

	zap.L().Info("Station catalog loaded", zap.String("file", stationsPath), zap.Int("stations", c.Len()))
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return New(file.Stations)
}

// New validates stations and returns a catalog holding its own copy.
func New(stations []models.Station) (*Catalog, error) {
	ids := make(map[int]bool, len(stations))
	for i, station := range stations {
		if station.Name == "" {
			return nil, fmt.Errorf("station at index %d missing name", i)
		}
		if ids[station.Id] {
			return nil, fmt.Errorf("duplicate station id %d", station.Id)
		}
		ids[station.Id] = true

		if station.Coords.Latitude < -90 || station.Coords.Latitude > 90 {
			return nil, fmt.Errorf("station %d latitude out of range: %f", station.Id, station.Coords.Latitude)
		}
		if station.Coords.Longitude < -180 || station.Coords.Longitude > 180 {
			return nil, fmt.Errorf("station %d longitude out of range: %f", station.Id, station.Coords.Longitude)
		}
	}

	return &Catalog{stations: copyStations(stations)}, nil
}

// Stations returns a fresh copy of the catalog in file order.
func (c *Catalog) Stations() []models.Station {
	return copyStations(c.stations)
}

// Find looks up a station by id.
func (c *Catalog) Find(id int) (models.Station, bool) {
	for _, station := range c.stations {
		if station.Id == id {
			return station, true
		}
	}
	return models.Station{}, false
}

func (c *Catalog) Len() int {
	return len(c.stations)
}

func copyStations(stations []models.Station) []models.Station {
	out := make([]models.Station, len(stations))
	copy(out, stations)
	for i := range out {
		out[i].Distance = nil
	}
	return out
}
