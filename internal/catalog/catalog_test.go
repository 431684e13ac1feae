package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYAML = `
stations:
  - id: 1
    name: Posto A
    address: Av. Paulista, 1000
    coords:
      latitude: -23.5614
      longitude: -46.6559
    power: 150kW
    vacancies: "2/4"
    price: 0.85
    status: Disponível
  - id: 2
    name: Posto B
    address: Rua Augusta, 500
    coords:
      latitude: -23.5530
      longitude: -46.6580
    power: 22kW
    vacancies: "0/2"
    price: 0.65
    status: Ocupado
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 stations, got %d", c.Len())
	}

	s, ok := c.Find(1)
	if !ok {
		t.Fatal("expected station 1")
	}
	if s.Name != "Posto A" || s.Coords.Latitude != -23.5614 || s.Price != 0.85 {
		t.Errorf("unexpected station: %+v", s)
	}
	if !s.IsAvailable() {
		t.Error("expected Posto A to be available")
	}
	if b, _ := c.Find(2); b.IsAvailable() {
		t.Error("expected Posto B to be busy")
	}
	if _, ok := c.Find(99); ok {
		t.Error("expected station 99 to be missing")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing name", "stations:\n  - id: 1\n", "missing name"},
		{"duplicate id", "stations:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n", "duplicate station id"},
		{"latitude", "stations:\n  - id: 1\n    name: A\n    coords: {latitude: 91, longitude: 0}\n", "latitude"},
		{"longitude", "stations:\n  - id: 1\n    name: A\n    coords: {latitude: 0, longitude: -181}\n", "longitude"},
		{"not yaml", "stations: [", ""},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected %q in error, got %v", tt.name, tt.want, err)
		}
	}
}

func TestStations_ReturnsCopy(t *testing.T) {
	c, err := Parse([]byte(testYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	stations := c.Stations()
	stations[0].Name = "changed"
	d := 1.0
	stations[1].Distance = &d

	fresh := c.Stations()
	if fresh[0].Name != "Posto A" {
		t.Error("catalog was mutated through returned slice")
	}
	if fresh[1].Distance != nil {
		t.Error("catalog entries must not carry a distance")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0o600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 stations, got %d", c.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
