package db

import (
	"database/sql"
	"fmt"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// LatestRateOnOrBefore returns the newest stored fixing for currency dated
// on or before date, nil when none exists. Rates are never interpolated.
func LatestRateOnOrBefore(tx *sql.Tx, currency string, date time.Time) (*model.ExchangeRate, error) {
	t := table.ExchangeRate
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.Currency.EQ(postgres.String(currency)).
			AND(t.Date.LT_EQ(postgres.DateT(date)))).
		ORDER_BY(t.Date.DESC()).
		LIMIT(1)

	result := []model.ExchangeRate{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load fx rate for %s: %w", currency, err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return &result[0], nil
}

// AddExchangeRates persists a fetched fixing. Re-fetching the same day is
// an idempotent overwrite.
func AddExchangeRates(tx *sql.Tx, rates []model.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	t := table.ExchangeRate
	models := make([]*model.ExchangeRate, len(rates))
	for i := range rates {
		models[i] = &rates[i]
	}
	stmt := t.INSERT(t.MutableColumns).
		MODELS(models).
		ON_CONFLICT(t.Currency, t.Date).
		DO_UPDATE(postgres.SET(
			t.Rate.SET(t.EXCLUDED.Rate),
			t.Amount.SET(t.EXCLUDED.Amount),
		))

	if _, err := stmt.Exec(tx); err != nil {
		return fmt.Errorf("failed to insert fx rates: %w", err)
	}
	return nil
}
