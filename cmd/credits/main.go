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
	"strings"

	"e-station-go/internal/apperr"
	"e-station-go/internal/common"
	"e-station-go/internal/config"
	"e-station-go/internal/credit"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(strings.Replace(s, ",", ".", 1)))
	if err != nil {
		return decimal.Zero, apperr.Validation("invalid amount %q", s)
	}
	return amount, nil
}

func printPresets() {
	labels := make([]string, 0, len(credit.PresetAmounts))
	for _, p := range credit.PresetAmounts {
		labels = append(labels, common.FormatMoney(p))
	}
	fmt.Printf("Quick amounts: %s\n", strings.Join(labels, " | "))
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	topUpFlag := flag.String("topup", "", "Amount to add to the balance (optional)")
	reconcileFlag := flag.Bool("reconcile", false, "Check the balance against the transaction log")
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

	if *topUpFlag != "" {
		amount, err := parseAmount(*topUpFlag)
		if err != nil {
			common.Fail(logger, "Invalid top-up amount", err, services.Close)
		}
		result, err := services.Credits.TopUp(ctx, amount)
		if err != nil {
			common.Fail(logger, "Failed to top up credits", err, services.Close)
		}
		fmt.Printf("✓ Added %s, new balance %s\n", common.FormatMoney(amount), common.FormatMoney(result.Balance))
	}

	if *reconcileFlag {
		if err := services.Credits.Reconcile(ctx); err != nil {
			common.Fail(logger, "Balance reconciliation failed", err, services.Close)
		}
		fmt.Println("✓ Balance matches transaction log")
	}

	balance, err := services.Credits.Balance(ctx)
	if err != nil {
		common.Fail(logger, "Failed to load balance", err, services.Close)
	}
	transactions, err := services.Credits.Transactions(ctx)
	if err != nil {
		common.Fail(logger, "Failed to load transactions", err, services.Close)
	}

	common.PrintHeader(fmt.Sprintf("CREDITS  Balance: %s", common.FormatMoney(balance)), common.DefaultWidth)
	printPresets()
	fmt.Println()
	if len(transactions) == 0 {
		fmt.Println("No transactions yet.")
	}
	for i, tx := range transactions {
		common.PrintTransaction(tx, i == len(transactions)-1)
	}
	common.PrintFooter(fmt.Sprintf("SUMMARY: %d transactions", len(transactions)), common.DefaultWidth)

	logger.Info("Credit report completed",
		zap.String("balance", balance.StringFixed(2)),
		zap.Int("transactions", len(transactions)))
}
