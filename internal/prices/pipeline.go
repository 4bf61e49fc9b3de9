package prices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/history"
	"folio/internal/ticker"

	"github.com/shopspring/decimal"
)

// Store is everything the pipeline needs persisted. Injected so tests can
// substitute an in-memory store and a fake clock instead of a database and
// process lifetime.
type Store interface {
	// GetQuote returns the stored quote for symbol, nil when absent.
	GetQuote(ctx context.Context, symbol string) (*model.LiveQuote, error)
	UpsertQuote(ctx context.Context, quote model.LiveQuote) error
	AppendDailyClose(ctx context.Context, row model.PriceHistory) error
	DailyCloses(ctx context.Context, symbol string) (history.Series, error)
	// LastTransactionPrice returns the unit price of the most recent
	// ledger transaction for symbol, nil when the ledger has none.
	LastTransactionPrice(ctx context.Context, symbol string) (*decimal.Decimal, error)
	Identities(ctx context.Context) ([]model.TickerIdentity, error)
}

// Config carries the data-quality heuristics. The scale band exists because
// some providers silently quote certain listings in a minor unit (pence
// instead of pounds); a fresh price sitting ~100x over the last transaction
// price is treated as minor-unit quoted and divided by 100.
type Config struct {
	ScaleLow    decimal.Decimal
	ScaleHigh   decimal.Decimal
	ScaleFactor decimal.Decimal
	EmaPeriod   int
}

func DefaultConfig() Config {
	return Config{
		ScaleLow:    decimal.NewFromInt(50),
		ScaleHigh:   decimal.NewFromInt(150),
		ScaleFactor: decimal.RequireFromString("0.01"),
		EmaPeriod:   history.DefaultEmaPeriod,
	}
}

// Pipeline resolves one trusted current price per instrument by walking an
// ordered list of sources. Adding, removing or reordering a provider is a
// data change on Sources, not a code change.
type Pipeline struct {
	Store   Store
	Sources []Source
	Now     func() time.Time
	Config  Config
}

func NewPipeline(store Store, sources ...Source) *Pipeline {
	return &Pipeline{
		Store:   store,
		Sources: sources,
		Now:     time.Now,
		Config:  DefaultConfig(),
	}
}

// GetQuote returns the current quote for symbol, refreshing from external
// sources when the same-day cache misses or fails validation. It returns
// (nil, nil) when every source comes up empty; the last cached value is
// left untouched in that case.
func (p *Pipeline) GetQuote(ctx context.Context, symbol string, force bool, targetCurrency string, kind model.ProductType) (*model.LiveQuote, error) {
	identities, err := p.Store.Identities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticker identities: %w", err)
	}
	canonical := ticker.ResolveCanonical(identities, symbol)
	identity := findIdentity(identities, canonical)
	if identity != nil {
		if kind == "" {
			kind = identity.ProductType
		}
		if targetCurrency == "" {
			targetCurrency = identity.Currency
		}
	}

	if !force {
		cached, err := p.Store.GetQuote(ctx, canonical)
		if err != nil {
			return nil, fmt.Errorf("quote cache read for %s failed: %w", canonical, err)
		}
		if cached != nil && sameDay(cached.FetchedAt, p.Now()) {
			if identity == nil || identity.CompanyName == "" ||
				ticker.NameMatches(identity.CompanyName, cached.CompanyName, ticker.ValidateThreshold) {
				return cached, nil
			}
			// a cached quote that no longer matches the mapped
			// company is cache-invalid, not trusted
			slog.Warn("same-day cached quote fails name validation, refetching",
				"symbol", canonical, "cached", cached.CompanyName, "mapped", identity.CompanyName)
		}
	}

	req := Request{Symbol: canonical, Currency: targetCurrency, Kind: kind}
	for _, src := range p.Sources {
		q, err := src.Fetch(ctx, req)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				slog.Warn("quote source failed", "source", src.Name(), "symbol", canonical, "error", err)
			}
			continue
		}
		if identity != nil && identity.CompanyName != "" && q.CompanyName != "" &&
			!ticker.NameMatches(identity.CompanyName, q.CompanyName, ticker.ValidateThreshold) {
			slog.Warn("discarding quote for wrong company",
				"source", src.Name(), "symbol", canonical, "fetched", q.CompanyName, "mapped", identity.CompanyName)
			continue
		}
		return p.persist(ctx, symbol, canonical, identity, q)
	}

	return nil, nil
}

func (p *Pipeline) persist(ctx context.Context, requested, canonical string, identity *model.TickerIdentity, q *Quote) (*model.LiveQuote, error) {
	now := p.Now()
	price := p.correctScale(ctx, canonical, q.Price)

	companyName := q.CompanyName
	if companyName == "" && identity != nil {
		companyName = identity.CompanyName
	}

	quote := model.LiveQuote{
		Symbol:       canonical,
		Price:        price,
		Currency:     q.Currency,
		Source:       q.Source,
		CompanyName:  companyName,
		DayChangePct: q.DayChangePct,
		Status:       model.QuoteStatus_Active,
		FetchedAt:    now,
	}
	if q.Exchange != "" {
		exchange := q.Exchange
		quote.Exchange = &exchange
	}

	err := p.Store.AppendDailyClose(ctx, model.PriceHistory{
		Symbol:     canonical,
		Date:       day(now),
		ClosePrice: price,
		Source:     q.Source,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append daily close for %s: %w", canonical, err)
	}

	p.deriveMetrics(ctx, canonical, &quote)

	if err := p.Store.UpsertQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to upsert quote for %s: %w", canonical, err)
	}
	if requested != canonical {
		// the alias row keeps mirroring the canonical price so rows
		// that still reference it directly stay valued
		mirror := quote
		mirror.Symbol = requested
		if err := p.Store.UpsertQuote(ctx, mirror); err != nil {
			return nil, fmt.Errorf("failed to mirror quote onto %s: %w", requested, err)
		}
	}

	return &quote, nil
}

// deriveMetrics recomputes the stored technical indicators from the daily
// close history. A failure here degrades the quote, it does not lose it.
func (p *Pipeline) deriveMetrics(ctx context.Context, symbol string, quote *model.LiveQuote) {
	series, err := p.Store.DailyCloses(ctx, symbol)
	if err != nil {
		slog.Warn("failed to load price history for metrics", "symbol", symbol, "error", err)
		return
	}
	if high, low, ok := series.Extremes(); ok {
		quote.AllTimeHigh = &high
		quote.AllTimeLow = &low
	}
	quote.MovingAvg = series.ResampleWeekly().Ema(p.Config.EmaPeriod)
	resilience := int32(series.Resilience())
	quote.Resilience = &resilience
}

// correctScale applies the minor-unit heuristic: a fresh price whose ratio
// to the last known transaction price falls inside the configured band is
// divided by 100. The correction is deterministic from the two inputs.
func (p *Pipeline) correctScale(ctx context.Context, symbol string, price decimal.Decimal) decimal.Decimal {
	last, err := p.Store.LastTransactionPrice(ctx, symbol)
	if err != nil {
		slog.Warn("failed to read last transaction price", "symbol", symbol, "error", err)
		return price
	}
	if last == nil || last.LessThanOrEqual(decimal.Zero) {
		return price
	}
	ratio := price.Div(*last)
	if ratio.GreaterThanOrEqual(p.Config.ScaleLow) && ratio.LessThanOrEqual(p.Config.ScaleHigh) {
		corrected := price.Mul(p.Config.ScaleFactor)
		slog.Info("scale mismatch corrected", "symbol", symbol,
			"fetched", price.String(), "corrected", corrected.String(), "ratio", ratio.StringFixed(2))
		return corrected
	}
	return price
}

func findIdentity(identities []model.TickerIdentity, symbol string) *model.TickerIdentity {
	for i := range identities {
		if identities[i].Symbol == symbol {
			return &identities[i]
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
