package ingest

import (
	"context"
	"crypto/sha1"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/fx"
)

// TxStore persists ledger entries. Add must be idempotent on the
// fingerprint so re-importing the same file is a no-op.
type TxStore interface {
	Add(ctx context.Context, txns []model.Transaction) (int, error)
}

type Importer struct {
	Store TxStore
	Fx    *fx.Resolver
}

// Import normalizes, fingerprints and persists a batch of raw ledger rows.
// It returns the number of rows actually inserted; rows whose fingerprint
// already exists are silently skipped.
func (i *Importer) Import(ctx context.Context, txns []model.Transaction) (int, error) {
	prepared := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		Normalize(&tx)
		if tx.LocalAmount.IsZero() && !tx.NativeAmount.IsZero() {
			if err := i.deriveLocalAmount(ctx, &tx); err != nil {
				return 0, err
			}
		}
		tx.Fingerprint = Fingerprint(tx)
		tx.CreatedAt = time.Now().UTC()
		prepared = append(prepared, tx)
	}

	inserted, err := i.Store.Add(ctx, prepared)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transactions: %w", err)
	}
	if skipped := len(prepared) - inserted; skipped > 0 {
		slog.Info("skipped already imported transactions", "count", skipped)
	}
	return inserted, nil
}

func (i *Importer) deriveLocalAmount(ctx context.Context, tx *model.Transaction) error {
	rate, err := i.Fx.Rate(ctx, tx.NativeCurrency, tx.Date)
	if err != nil {
		return fmt.Errorf("cannot derive local amount for %s on %s: %w",
			tx.Symbol, tx.Date.Format("2006-01-02"), err)
	}
	tx.FxRate = rate
	tx.LocalAmount = tx.NativeAmount.Mul(rate)
	return nil
}

// Normalize enforces the ledger sign conventions: direction is implied by
// the action kind, so Sell rows store non-negative quantity and amounts.
func Normalize(tx *model.Transaction) {
	tx.Symbol = strings.ToUpper(strings.TrimSpace(tx.Symbol))
	if tx.ActionType == model.ActionType_Sell {
		tx.Quantity = tx.Quantity.Abs()
		tx.NativeAmount = tx.NativeAmount.Abs()
		tx.LocalAmount = tx.LocalAmount.Abs()
	}
	tx.Fee = tx.Fee.Abs()
}

// Fingerprint is a content hash over a transaction's defining fields. Two
// imports of the same economic event always collide, regardless of row
// ordering or file of origin.
func Fingerprint(tx model.Transaction) string {
	payload := strings.Join([]string{
		tx.Date.Format("2006-01-02"),
		tx.Symbol,
		tx.Quantity.String(),
		tx.NativeCurrency,
		string(tx.ActionType),
		tx.Platform,
	}, "|")
	return fmt.Sprintf("%x", sha1.Sum([]byte(payload)))
}
