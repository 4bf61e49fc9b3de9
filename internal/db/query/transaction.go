package db

import (
	"database/sql"
	"fmt"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// AddTransactions inserts ledger entries, skipping any whose fingerprint is
// already present. Returns the rows actually inserted.
func AddTransactions(tx *sql.Tx, txns []model.Transaction) ([]model.Transaction, error) {
	if len(txns) == 0 {
		return nil, nil
	}

	t := table.Transaction
	models := make([]*model.Transaction, len(txns))
	for i := range txns {
		models[i] = &txns[i]
	}
	stmt := t.INSERT(t.MutableColumns).
		MODELS(models).
		ON_CONFLICT(t.Fingerprint).
		DO_NOTHING().
		RETURNING(t.AllColumns)

	result := []model.Transaction{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}

	return result, nil
}

// GetTransactions returns the full ledger of one user in date order,
// optionally narrowed to one instrument.
func GetTransactions(tx *sql.Tx, userID int32, symbol string) ([]model.Transaction, error) {
	t := table.Transaction
	predicate := t.UserID.EQ(postgres.Int32(userID))
	if symbol != "" {
		predicate = predicate.AND(t.Symbol.EQ(postgres.String(symbol)))
	}

	stmt := t.SELECT(t.AllColumns).
		WHERE(predicate).
		ORDER_BY(t.Date.ASC(), t.TransactionID.ASC())

	result := []model.Transaction{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return result, nil
}

// LastTransactionPrice returns the unit price of the newest ledger entry
// for symbol across all users, nil when the ledger has none. Used by the
// scale-mismatch heuristic.
func LastTransactionPrice(tx *sql.Tx, symbol string) (*decimal.Decimal, error) {
	t := table.Transaction
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.Symbol.EQ(postgres.String(symbol)).
			AND(t.UnitPrice.GT(postgres.Float(0)))).
		ORDER_BY(t.Date.DESC(), t.TransactionID.DESC()).
		LIMIT(1)

	result := []model.Transaction{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load last transaction price: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return &result[0].UnitPrice, nil
}

// DeleteTransaction removes one ledger entry. The ledger is append-only
// otherwise; this exists only for explicit user corrections.
func DeleteTransaction(tx *sql.Tx, transactionID int32) error {
	t := table.Transaction
	stmt := t.DELETE().WHERE(t.TransactionID.EQ(postgres.Int32(transactionID)))
	if _, err := stmt.Exec(tx); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return nil
}
