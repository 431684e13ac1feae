package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"
	"e-station-go/internal/store"
	"e-station-go/internal/store/storetest"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func record(id string, scheduledAt time.Time) models.Reservation {
	return models.Reservation{
		Id:          id,
		StationName: "Posto " + id,
		Status:      models.ReservationStatusActive,
		ScheduledAt: scheduledAt,
		Coords:      models.Coordinates{Latitude: -23.56, Longitude: -46.65},
		Connector:   "CCS2",
		Duration:    "60 min",
	}
}

func setupLedger(t *testing.T, opts ...Option) (*Ledger, *storetest.Store) {
	kv := storetest.NewStore()
	return NewLedger(kv, opts...), kv
}

func appendAll(t *testing.T, l *Ledger, records ...models.Reservation) {
	t.Helper()
	for _, r := range records {
		if err := l.Append(context.Background(), r); err != nil {
			t.Fatalf("Append(%s) failed: %v", r.Id, err)
		}
	}
}

func ids(records []models.Reservation) string {
	s := ""
	for i, r := range records {
		if i > 0 {
			s += ","
		}
		s += r.Id
	}
	return s
}

func TestListActive_Empty(t *testing.T) {
	l, _ := setupLedger(t)

	active, err := l.ListActive(context.Background(), testNow)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no reservations, got %d", len(active))
	}
}

func TestBookTomorrow_ShowsAsActive(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	station := models.Station{Id: 1, Name: "Posto A", Status: models.StationStatusAvailable}
	if _, err := l.Book(ctx, station, testNow.Add(24*time.Hour), "ccs2", 60); err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	active, err := l.ListActive(ctx, testNow)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active reservation, got %d", len(active))
	}
	if active[0].StationName != "Posto A" {
		t.Errorf("expected Posto A, got %s", active[0].StationName)
	}

	history, err := l.ListHistory(ctx, testNow)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d", len(history))
	}
}

func TestActiveAndHistory_Partition(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	hour := time.Hour
	appendAll(t, l,
		record("a", testNow.Add(-72*hour)),
		record("b", testNow.Add(48*hour)),
		record("c", testNow), // exactly now counts as active
		record("d", testNow.Add(-1*time.Nanosecond)),
		record("e", testNow.Add(2*hour)),
		record("f", testNow.Add(-24*hour)),
	)

	active, err := l.ListActive(ctx, testNow)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	history, err := l.ListHistory(ctx, testNow)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}

	if got := ids(active); got != "c,e,b" {
		t.Errorf("expected active c,e,b got %s", got)
	}
	// Reverse insertion order
	if got := ids(history); got != "f,d,a" {
		t.Errorf("expected history f,d,a got %s", got)
	}

	seen := make(map[string]int)
	for _, r := range active {
		seen[r.Id]++
	}
	for _, r := range history {
		seen[r.Id]++
	}
	all, _ := l.All(ctx)
	if len(seen) != len(all) {
		t.Errorf("expected union of %d records, got %d", len(all), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("reservation %s appears in %d views", id, n)
		}
	}
}

func TestListActive_SortedAscending(t *testing.T) {
	l, _ := setupLedger(t)

	for i := 0; i < 10; i++ {
		offset := time.Duration((i*7)%10+1) * time.Hour
		appendAll(t, l, record(fmt.Sprintf("r%d", i), testNow.Add(offset)))
	}

	active, err := l.ListActive(context.Background(), testNow)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	for i := 1; i < len(active); i++ {
		if active[i].ScheduledAt.Before(active[i-1].ScheduledAt) {
			t.Errorf("active list not ascending at %d", i)
		}
	}
}

func TestListHistory_ByScheduledAt(t *testing.T) {
	l, _ := setupLedger(t, WithHistoryOrder(HistoryByScheduledAt))

	// Booked out of chronological order
	appendAll(t, l,
		record("late", testNow.Add(-1*time.Hour)),
		record("early", testNow.Add(-48*time.Hour)),
		record("mid", testNow.Add(-24*time.Hour)),
	)

	history, err := l.ListHistory(context.Background(), testNow)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if got := ids(history); got != "late,mid,early" {
		t.Errorf("expected late,mid,early got %s", got)
	}
}

func TestParseHistoryOrder(t *testing.T) {
	tests := []struct {
		in   string
		want HistoryOrder
		ok   bool
	}{
		{"", HistoryByInsertion, true},
		{"insertion", HistoryByInsertion, true},
		{"scheduled", HistoryByScheduledAt, true},
		{"random", HistoryByInsertion, false},
	}
	for _, tt := range tests {
		got, err := ParseHistoryOrder(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseHistoryOrder(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestRoundTrip_PreservesOrderAndFields(t *testing.T) {
	l, kv := setupLedger(t)
	ctx := context.Background()

	want := []models.Reservation{
		record("x", testNow.Add(5*time.Hour)),
		record("y", testNow.Add(-5*time.Hour)),
		record("z", testNow.Add(30*time.Minute)),
	}
	appendAll(t, l, want...)

	// A fresh ledger over the same store sees the same sequence
	got, err := NewLedger(kv).All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.Id != w.Id || g.StationName != w.StationName || g.Status != w.Status ||
			g.Coords != w.Coords || g.Connector != w.Connector || g.Duration != w.Duration ||
			!g.ScheduledAt.Equal(w.ScheduledAt) {
			t.Errorf("record %d differs: want %+v got %+v", i, w, g)
		}
	}
}

func TestStoredLayout(t *testing.T) {
	l, kv := setupLedger(t)
	appendAll(t, l, record("a", testNow))

	raw, ok := kv.Raw(store.KeyReservations)
	if !ok {
		t.Fatal("expected reservations key to be written")
	}

	var docs []map[string]any
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		t.Fatalf("stored value is not a JSON array: %v", err)
	}
	for _, field := range []string{"id", "stationName", "status", "date", "coords", "connector", "duration"} {
		if _, ok := docs[0][field]; !ok {
			t.Errorf("expected field %q in stored reservation", field)
		}
	}
	if docs[0]["date"] != "2026-03-10T12:00:00Z" {
		t.Errorf("expected ISO date, got %v", docs[0]["date"])
	}
}

func TestCorruptData_DefaultsToEmpty(t *testing.T) {
	l, kv := setupLedger(t)
	ctx := context.Background()
	kv.Set(ctx, store.KeyReservations, "not json")

	active, err := l.ListActive(ctx, testNow)
	if err != nil {
		t.Fatalf("expected corrupt data to be tolerated, got %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected empty list, got %d", len(active))
	}

	appendAll(t, l, record("a", testNow.Add(time.Hour)))
	all, _ := l.All(ctx)
	if len(all) != 1 {
		t.Errorf("expected the new record only, got %d", len(all))
	}
}

func TestPersistenceErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("storage offline")

	l, kv := setupLedger(t)
	kv.GetErr = boom
	if _, err := l.ListActive(ctx, testNow); !errors.Is(err, apperr.ErrPersistence) {
		t.Errorf("ListActive: expected ErrPersistence, got %v", err)
	}
	if _, err := l.ListHistory(ctx, testNow); !errors.Is(err, apperr.ErrPersistence) {
		t.Errorf("ListHistory: expected ErrPersistence, got %v", err)
	}
	if err := l.Append(ctx, record("a", testNow)); !errors.Is(err, apperr.ErrPersistence) {
		t.Errorf("Append (read): expected ErrPersistence, got %v", err)
	}

	l, kv = setupLedger(t)
	kv.SetErr = boom
	err := l.Append(ctx, record("a", testNow))
	if !errors.Is(err, apperr.ErrPersistence) || !errors.Is(err, boom) {
		t.Errorf("Append (write): expected ErrPersistence wrapping cause, got %v", err)
	}
	if _, ok := kv.Raw(store.KeyReservations); ok {
		t.Error("expected nothing to be stored")
	}
}
