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
	"time"

	"e-station-go/internal/apperr"
	"e-station-go/internal/common"
	"e-station-go/internal/config"
	"e-station-go/internal/reservation"

	"go.uber.org/zap"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseSchedule reads the date and time flags in loc. Empty values fall back to now.
func parseSchedule(date, clock string, now time.Time, loc *time.Location) (time.Time, error) {
	day := now.In(loc)
	if date != "" {
		d, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return time.Time{}, apperr.Validation("invalid date %q, expected YYYY-MM-DD", date)
		}
		day = d
	}

	at := now.In(loc)
	if clock != "" {
		c, err := time.ParseInLocation(clockLayout, clock, loc)
		if err != nil {
			return time.Time{}, apperr.Validation("invalid time %q, expected HH:MM", clock)
		}
		at = c
	}

	return reservation.MergeDateTime(day, at), nil
}

func printOptions() {
	fmt.Println("Connectors:")
	for i, c := range reservation.Connectors {
		fmt.Printf("%s%-6s %-7s %s  R$ %.2f / kWh\n", common.BoxPrefix(i == len(reservation.Connectors)-1), c.Id, c.Name, c.Power, c.Price)
	}
	fmt.Println("Durations:")
	for i, d := range reservation.Durations {
		fmt.Printf("%s%s\n", common.BoxPrefix(i == len(reservation.Durations)-1), reservation.DurationLabel(d))
	}
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	stationFlag := flag.Int("station", 0, "Catalog id of the station to book (required)")
	dateFlag := flag.String("date", "", "Reservation date YYYY-MM-DD (default today)")
	timeFlag := flag.String("time", "", "Reservation time HH:MM (default now)")
	connectorFlag := flag.String("connector", reservation.DefaultConnectorId, "Connector id")
	durationFlag := flag.Int("duration", reservation.DefaultDuration, "Session length in minutes")
	listFlag := flag.Bool("options", false, "List connectors and durations, then exit")
	flag.Parse()

	if *listFlag {
		printOptions()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	cat, err := common.InitializeCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load station catalog", zap.Error(err))
	}

	station, ok := cat.Find(*stationFlag)
	if !ok {
		common.Fail(logger, "Unknown station", apperr.Validation("no station with id %d", *stationFlag))
	}

	scheduledAt, err := parseSchedule(*dateFlag, *timeFlag, time.Now(), time.Local)
	if err != nil {
		common.Fail(logger, "Invalid schedule", err)
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	logger.Info("Booking station",
		zap.Int("station_id", station.Id),
		zap.String("station", station.Name),
		zap.Time("scheduled_at", scheduledAt),
		zap.String("connector", *connectorFlag),
		zap.Int("duration_minutes", *durationFlag))

	record, err := services.Reservations.Book(ctx, station, scheduledAt, *connectorFlag, *durationFlag)
	if err != nil {
		common.Fail(logger, "Failed to book station", err, services.Close)
	}

	common.PrintHeader("RESERVATION CONFIRMED", common.DefaultWidth)
	common.PrintReservation(record, time.Local, true)
	common.PrintFooter(fmt.Sprintf("Reservation id: %s", record.Id), common.DefaultWidth)
}
