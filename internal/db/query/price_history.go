package db

import (
	"database/sql"
	"fmt"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// UpsertDailyClose writes one (symbol, date) close. A later write for the
// same day overwrites, it never duplicates.
func UpsertDailyClose(tx *sql.Tx, row model.PriceHistory) error {
	t := table.PriceHistory
	stmt := t.INSERT(t.MutableColumns).
		MODEL(row).
		ON_CONFLICT(t.Symbol, t.Date).
		DO_UPDATE(postgres.SET(
			t.ClosePrice.SET(t.EXCLUDED.ClosePrice),
			t.Source.SET(t.EXCLUDED.Source),
		))

	if _, err := stmt.Exec(tx); err != nil {
		return fmt.Errorf("failed to upsert daily close for %s: %w", row.Symbol, err)
	}
	return nil
}

// GetDailyCloses returns the full close series of one instrument in
// ascending date order.
func GetDailyCloses(tx *sql.Tx, symbol string) ([]model.PriceHistory, error) {
	t := table.PriceHistory
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(t.Date.ASC())

	result := []model.PriceHistory{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load price history for %s: %w", symbol, err)
	}
	return result, nil
}
