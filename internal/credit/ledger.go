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

package credit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"e-station-go/internal/apperr"
	"e-station-go/internal/models"
	"e-station-go/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DisplayLayout formats the transaction timestamp shown in the credit history (dd/MM, HH:mm).
const DisplayLayout = "02/01, 15:04"

// PresetAmounts are the top-up values offered to the user.
var PresetAmounts = []decimal.Decimal{
	decimal.NewFromInt(10),
	decimal.NewFromInt(25),
	decimal.NewFromInt(50),
	decimal.NewFromInt(100),
}

// TopUpResult carries the state after a successful top-up.
type TopUpResult struct {
	Balance      decimal.Decimal
	Transactions []models.CreditTransaction
}

// Ledger maintains the prepaid balance (the cached total) and the
// transaction log (the audit trail). Both are always written together.
type Ledger struct {
	kv    store.KeyValueStore
	clock func() time.Time
	mu    sync.Mutex
}

func NewLedger(kv store.KeyValueStore) *Ledger {
	return &Ledger{kv: kv, clock: time.Now}
}

// Balance returns the current balance. A missing value is zero.
func (l *Ledger) Balance(ctx context.Context) (decimal.Decimal, error) {
	return l.loadBalance(ctx)
}

// Transactions returns the log, most recent first.
func (l *Ledger) Transactions(ctx context.Context) ([]models.CreditTransaction, error) {
	return l.loadTransactions(ctx)
}

// TopUp adds amount to the balance and records the transaction. The new
// balance and log are persisted in a single atomic write. A corrupt stored
// balance or log is refused with a persistence error and left untouched.
func (l *Ledger) TopUp(ctx context.Context, amount decimal.Decimal) (*TopUpResult, error) {
	if !amount.IsPositive() {
		return nil, apperr.Validation("top-up amount must be positive, got %s", amount.String())
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	currentBalance, transactions, err := l.readState(ctx)
	if err != nil {
		return nil, err
	}

	now := l.clock()
	transaction := models.CreditTransaction{
		Id:         uuid.New().String(),
		Amount:     amount,
		Date:       now.Format(DisplayLayout),
		OccurredAt: now.UTC(),
	}

	updated := make([]models.CreditTransaction, 0, len(transactions)+1)
	updated = append(updated, transaction)
	updated = append(updated, transactions...)

	newBalance := currentBalance.Add(amount)

	logEntry, err := store.EncodeJSON(store.KeyTransactions, updated)
	if err != nil {
		return nil, apperr.Persistence("encode transactions", err)
	}
	err = l.kv.SetMany(ctx, []store.Entry{
		{Key: store.KeyCredits, Value: newBalance.String()},
		logEntry,
	})
	if err != nil {
		zap.L().Error("Failed to persist top-up",
			zap.String("transaction_id", transaction.Id),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return nil, apperr.Persistence("save top-up", err)
	}

	zap.L().Info("Top-up processed successfully",
		zap.String("transaction_id", transaction.Id),
		zap.String("amount", amount.String()),
		zap.String("old_balance", currentBalance.String()),
		zap.String("new_balance", newBalance.String()))

	return &TopUpResult{Balance: newBalance, Transactions: updated}, nil
}

// Reconcile verifies that the stored balance matches the sum of all logged transactions.
func (l *Ledger) Reconcile(ctx context.Context) error {
	zap.L().Info("Reconciling credit balance")

	currentBalance, transactions, err := l.readState(ctx)
	if err != nil {
		return err
	}

	calculatedBalance := decimal.Zero
	for _, t := range transactions {
		calculatedBalance = calculatedBalance.Add(t.Amount)
	}

	// Exact decimal comparison
	if !currentBalance.Equal(calculatedBalance) {
		zap.L().Error("Balance reconciliation failed",
			zap.String("current_balance", currentBalance.String()),
			zap.String("calculated_balance", calculatedBalance.String()),
			zap.String("difference", currentBalance.Sub(calculatedBalance).String()))
		return fmt.Errorf("balance mismatch: current=%s, calculated=%s", currentBalance.String(), calculatedBalance.String())
	}

	zap.L().Info("Balance reconciliation successful",
		zap.String("balance", currentBalance.String()),
		zap.Int("transactions", len(transactions)))
	return nil
}

// loadBalance is the tolerant read behind Balance: corrupt data reads as zero.
func (l *Ledger) loadBalance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := l.readBalance(ctx)
	if errors.Is(err, store.ErrCorruptData) {
		zap.L().Warn("Stored balance is not a number, treating as zero", zap.Error(err))
		return decimal.Zero, nil
	}
	return balance, err
}

// loadTransactions is the tolerant read behind Transactions: corrupt data reads as empty.
func (l *Ledger) loadTransactions(ctx context.Context) ([]models.CreditTransaction, error) {
	transactions, err := l.readTransactions(ctx)
	if errors.Is(err, store.ErrCorruptData) {
		zap.L().Warn("Stored transactions are corrupt, showing an empty log", zap.Error(err))
		return []models.CreditTransaction{}, nil
	}
	return transactions, err
}

// readBalance returns a missing balance as zero and wraps undecodable values
// in store.ErrCorruptData.
func (l *Ledger) readBalance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := l.kv.Get(ctx, store.KeyCredits)
	if errors.Is(err, store.ErrKeyNotFound) {
		// No balance record means zero balance
		return decimal.Zero, nil
	}
	if err != nil {
		zap.L().Error("Failed to get balance", zap.Error(err))
		return decimal.Zero, apperr.Persistence("load balance", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: key %s: %v", store.ErrCorruptData, store.KeyCredits, err)
	}
	return balance, nil
}

// readTransactions returns a missing log as empty and passes
// store.ErrCorruptData through for undecodable values.
func (l *Ledger) readTransactions(ctx context.Context) ([]models.CreditTransaction, error) {
	var transactions []models.CreditTransaction
	err := store.LoadJSON(ctx, l.kv, store.KeyTransactions, &transactions)
	switch {
	case err == nil:
		return transactions, nil
	case errors.Is(err, store.ErrKeyNotFound):
		return []models.CreditTransaction{}, nil
	case errors.Is(err, store.ErrCorruptData):
		return nil, err
	default:
		zap.L().Error("Failed to load transactions", zap.Error(err))
		return nil, apperr.Persistence("load transactions", err)
	}
}

// readState loads balance and log for a write or a reconciliation. Corrupt
// data is refused so it is never overwritten.
func (l *Ledger) readState(ctx context.Context) (decimal.Decimal, []models.CreditTransaction, error) {
	balance, err := l.readBalance(ctx)
	if errors.Is(err, store.ErrCorruptData) {
		zap.L().Error("Stored balance is corrupt", zap.Error(err))
		return decimal.Zero, nil, apperr.Persistence("load balance", err)
	}
	if err != nil {
		return decimal.Zero, nil, err
	}

	transactions, err := l.readTransactions(ctx)
	if errors.Is(err, store.ErrCorruptData) {
		zap.L().Error("Stored transactions are corrupt", zap.Error(err))
		return decimal.Zero, nil, apperr.Persistence("load transactions", err)
	}
	if err != nil {
		return decimal.Zero, nil, err
	}
	return balance, transactions, nil
}
