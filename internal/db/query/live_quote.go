package db

import (
	"database/sql"
	"fmt"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// UpsertLiveQuote writes the current quote for an instrument. One row per
// symbol; concurrent refreshers race safely, last writer wins.
func UpsertLiveQuote(tx *sql.Tx, quote model.LiveQuote) error {
	t := table.LiveQuote
	stmt := t.INSERT(t.AllColumns).
		MODEL(quote).
		ON_CONFLICT(t.Symbol).
		DO_UPDATE(postgres.SET(
			t.Price.SET(t.EXCLUDED.Price),
			t.Currency.SET(t.EXCLUDED.Currency),
			t.Source.SET(t.EXCLUDED.Source),
			t.CompanyName.SET(t.EXCLUDED.CompanyName),
			t.Exchange.SET(t.EXCLUDED.Exchange),
			t.MovingAvg.SET(t.EXCLUDED.MovingAvg),
			t.AllTimeHigh.SET(t.EXCLUDED.AllTimeHigh),
			t.AllTimeLow.SET(t.EXCLUDED.AllTimeLow),
			t.Resilience.SET(t.EXCLUDED.Resilience),
			t.DayChangePct.SET(t.EXCLUDED.DayChangePct),
			t.Status.SET(t.EXCLUDED.Status),
			t.FetchedAt.SET(t.EXCLUDED.FetchedAt),
		))

	if _, err := stmt.Exec(tx); err != nil {
		return fmt.Errorf("failed to upsert quote for %s: %w", quote.Symbol, err)
	}
	return nil
}

// GetLiveQuote returns the stored quote for symbol, nil when absent.
func GetLiveQuote(tx *sql.Tx, symbol string) (*model.LiveQuote, error) {
	t := table.LiveQuote
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.Symbol.EQ(postgres.String(symbol)))

	result := []model.LiveQuote{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load quote for %s: %w", symbol, err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return &result[0], nil
}

// GetLiveQuotes returns all stored quotes keyed by symbol.
func GetLiveQuotes(tx *sql.Tx) (map[string]model.LiveQuote, error) {
	t := table.LiveQuote
	stmt := t.SELECT(t.AllColumns)

	result := []model.LiveQuote{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}

	out := make(map[string]model.LiveQuote, len(result))
	for _, q := range result {
		out[q.Symbol] = q
	}
	return out, nil
}
