package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatusActive is assigned at booking time and never changes
const ReservationStatusActive = "ACTIVE"

// Reservation represents a booked charging session (immutable once created)
type Reservation struct {
	Id          string      `json:"id"`
	StationName string      `json:"stationName"`
	Status      string      `json:"status"`
	ScheduledAt time.Time   `json:"date"`
	Coords      Coordinates `json:"coords"`
	Connector   string      `json:"connector"`
	Duration    string      `json:"duration"`
}

// CreditTransaction represents one top-up in the credit log
type CreditTransaction struct {
	Id         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"` // display timestamp
	OccurredAt time.Time       `json:"occurredAt"`
}

// User is the locally registered account (stored in plaintext)
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
