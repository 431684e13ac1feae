package reservation

import (
	"context"
	"fmt"
	"time"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"

	"github.com/google/uuid"
)

// Connector is a plug type offered at booking time.
type Connector struct {
	Id    string
	Name  string
	Power string
	Price float64 // per kWh
}

// Connectors lists the bookable plug types.
var Connectors = []Connector{
	{Id: "ccs2", Name: "CCS2", Power: "150kW", Price: 0.85},
	{Id: "type2", Name: "Type 2", Power: "22kW", Price: 0.65},
}

// Durations lists the bookable session lengths in minutes.
var Durations = []int{60, 45, 30, 15}

// DefaultConnectorId and DefaultDuration are preselected on the booking form.
const (
	DefaultConnectorId = "ccs2"
	DefaultDuration    = 60
)

// FindConnector looks up a connector by id.
func FindConnector(id string) (Connector, bool) {
	for _, c := range Connectors {
		if c.Id == id {
			return c, true
		}
	}
	return Connector{}, false
}

// DurationLabel renders minutes the way reservations store them.
func DurationLabel(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

func validDuration(minutes int) bool {
	for _, d := range Durations {
		if d == minutes {
			return true
		}
	}
	return false
}

// MergeDateTime combines the calendar day of date with the clock time of
// clock, in date's location.
func MergeDateTime(date, clock time.Time) time.Time {
	clock = clock.In(date.Location())
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

// NewReservation builds a reservation for station from the fixed booking options.
func NewReservation(station models.Station, scheduledAt time.Time, connectorId string, durationMinutes int) (models.Reservation, error) {
	if station.Name == "" {
		return models.Reservation{}, apperr.Validation("station is required")
	}
	if !station.IsAvailable() {
		return models.Reservation{}, apperr.Validation("station %s is not available for booking (%s)", station.Name, station.Status)
	}
	if scheduledAt.IsZero() {
		return models.Reservation{}, apperr.Validation("reservation date is required")
	}
	connector, ok := FindConnector(connectorId)
	if !ok {
		return models.Reservation{}, apperr.Validation("unknown connector %q", connectorId)
	}
	if !validDuration(durationMinutes) {
		return models.Reservation{}, apperr.Validation("unsupported duration %d min", durationMinutes)
	}

	return models.Reservation{
		Id:          uuid.New().String(),
		StationName: station.Name,
		Status:      models.ReservationStatusActive,
		ScheduledAt: scheduledAt.UTC(),
		Coords:      station.Coords,
		Connector:   connector.Name,
		Duration:    DurationLabel(durationMinutes),
	}, nil
}

// Book builds a reservation and appends it to the ledger.
func (l *Ledger) Book(ctx context.Context, station models.Station, scheduledAt time.Time, connectorId string, durationMinutes int) (models.Reservation, error) {
	record, err := NewReservation(station, scheduledAt, connectorId, durationMinutes)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := l.Append(ctx, record); err != nil {
		return models.Reservation{}, err
	}
	return record, nil
}
