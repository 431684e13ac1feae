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

	"e-station-go/internal/common"
	"e-station-go/internal/config"
	"e-station-go/internal/models"
	"e-station-go/internal/reservation"

	"go.uber.org/zap"
)

const (
	viewActive  = "active"
	viewHistory = "history"
)

func listView(ctx context.Context, ledger *reservation.Ledger, view string, now time.Time) ([]models.Reservation, string, error) {
	switch view {
	case viewActive:
		records, err := ledger.ListActive(ctx, now)
		return records, "ACTIVE RESERVATIONS", err
	case viewHistory:
		records, err := ledger.ListHistory(ctx, now)
		return records, "RESERVATION HISTORY", err
	default:
		return nil, "", fmt.Errorf("unknown view %q (want %s or %s)", view, viewActive, viewHistory)
	}
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	viewFlag := flag.String("view", viewActive, "Which reservations to list: active or history")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	records, title, err := listView(ctx, services.Reservations, *viewFlag, time.Now())
	if err != nil {
		common.Fail(logger, "Failed to list reservations", err, services.Close)
	}

	common.PrintHeader(title, common.DefaultWidth)
	if len(records) == 0 {
		fmt.Println("No reservations found.")
	}
	for i, r := range records {
		common.PrintReservation(r, time.Local, i == len(records)-1)
	}
	common.PrintFooter(fmt.Sprintf("SUMMARY: %d reservations", len(records)), common.DefaultWidth)

	logger.Info("Reservation listing completed",
		zap.String("view", *viewFlag),
		zap.Int("count", len(records)))
}
