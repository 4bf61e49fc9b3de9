package fx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// LocalCurrency is the currency everything is valued in.
const LocalCurrency = "CZK"

// ErrNoRate means no conversion factor could be resolved after exhausting
// the store and the remote feed. Callers must surface this as "unknown";
// defaulting to 1.0 silently corrupts every downstream value.
var ErrNoRate = errors.New("fx: no rate available")

// RateStore reads and writes persisted exchange rates.
type RateStore interface {
	// LatestOnOrBefore returns the newest stored rate for currency with
	// date <= the given date, or nil when none exists.
	LatestOnOrBefore(ctx context.Context, currency string, date time.Time) (*model.ExchangeRate, error)
	Add(ctx context.Context, rates []model.ExchangeRate) error
}

// Feed is the remote central-bank source used when the store has nothing.
type Feed interface {
	DailyRates(ctx context.Context, date time.Time) ([]model.ExchangeRate, error)
}

type Resolver struct {
	Store RateStore
	Feed  Feed
}

// Rate resolves the multiplicative currency -> CZK factor for a date.
// Rates are never interpolated: the last known fixing on or before the
// date wins. A store miss triggers a one-time feed fetch for that date,
// persisted for the next caller.
func (r *Resolver) Rate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	if currency == LocalCurrency {
		return decimal.NewFromInt(1), nil
	}

	stored, err := r.Store.LatestOnOrBefore(ctx, currency, date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fx rate lookup for %s failed: %w", currency, err)
	}
	if stored != nil {
		return effectiveRate(*stored), nil
	}

	fetched, err := r.Feed.DailyRates(ctx, date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s on %s (%v)", ErrNoRate, currency, date.Format("2006-01-02"), err)
	}
	if err := r.Store.Add(ctx, fetched); err != nil {
		return decimal.Zero, fmt.Errorf("fx rate persist failed: %w", err)
	}
	for _, rate := range fetched {
		if rate.Currency == currency {
			return effectiveRate(rate), nil
		}
	}

	return decimal.Zero, fmt.Errorf("%w: %s on %s", ErrNoRate, currency, date.Format("2006-01-02"))
}

// effectiveRate folds the per-N-units quote basis into one multiplier.
func effectiveRate(r model.ExchangeRate) decimal.Decimal {
	if r.Amount.IsZero() {
		return decimal.Zero
	}
	return r.Rate.Div(r.Amount)
}
