package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"folio/internal/costbasis"
	"folio/internal/db/models/postgres/public/model"
	"folio/internal/fx"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteGetter is satisfied by the price resolution pipeline.
type QuoteGetter interface {
	GetQuote(ctx context.Context, symbol string, force bool, targetCurrency string, kind model.ProductType) (*model.LiveQuote, error)
}

type Valuer struct {
	Quotes QuoteGetter
	Fx     *fx.Resolver
	Now    func() time.Time
}

// Snapshot values every open position in the user's ledger as of today and
// returns the staged rows under one run id. A failed valuation of one
// instrument lands in that row's error column; it never blocks the rest of
// the portfolio.
func (v *Valuer) Snapshot(ctx context.Context, userID int32, txns []model.Transaction) ([]model.PortfolioSnapshot, error) {
	now := v.now()
	runID := uuid.New()

	rows := []model.PortfolioSnapshot{}
	for _, symbol := range heldSymbols(txns) {
		pos := costbasis.AsOf(txns, symbol, now, costbasis.Options{})
		if pos.RemainingQty.LessThanOrEqual(decimal.Zero) {
			// flat position, nothing to value
			continue
		}

		row := model.PortfolioSnapshot{
			RunID:         runID,
			UserID:        userID,
			Symbol:        symbol,
			Quantity:      pos.RemainingQty,
			AvgCostLocal:  pos.AvgCostLocal,
			AvgCostNative: pos.AvgCostNative,
			CreatedAt:     now,
		}
		if err := v.value(ctx, &row, pos, symbolKind(txns, symbol)); err != nil {
			slog.Warn("valuation failed for instrument", "symbol", symbol, "error", err)
			msg := err.Error()
			row.Error = &msg
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (v *Valuer) value(ctx context.Context, row *model.PortfolioSnapshot, pos costbasis.Position, kind model.ProductType) error {
	quote, err := v.Quotes.GetQuote(ctx, row.Symbol, false, "", kind)
	if err != nil {
		return fmt.Errorf("quote lookup failed: %w", err)
	}
	if quote == nil {
		return fmt.Errorf("no price available for %s", row.Symbol)
	}

	rate, err := v.Fx.Rate(ctx, quote.Currency, v.now())
	if err != nil {
		return fmt.Errorf("no fx rate for %s: %w", quote.Currency, err)
	}

	valueLocal := pos.RemainingQty.Mul(quote.Price).Mul(rate)
	costLocal := pos.RemainingQty.Mul(pos.AvgCostLocal)
	unrealizedLocal := valueLocal.Sub(costLocal)
	unrealizedNative := quote.Price.Sub(pos.AvgCostNative).Mul(pos.RemainingQty)

	// split the local P&L into the part the price move explains at
	// today's FX, and the remainder driven by the FX move itself
	priceEffect := unrealizedNative.Mul(rate)
	fxEffect := unrealizedLocal.Sub(priceEffect)

	row.CurrentPrice = &quote.Price
	row.PriceCurrency = &quote.Currency
	row.CurrentValueLocal = &valueLocal
	row.UnrealizedPlLocal = &unrealizedLocal
	row.UnrealizedPlNative = &unrealizedNative
	row.PriceEffect = &priceEffect
	row.FxEffect = &fxEffect
	return nil
}

func (v *Valuer) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now().UTC()
}

// heldSymbols lists the distinct instruments the ledger ever acquired, in a
// stable order.
func heldSymbols(txns []model.Transaction) []string {
	seen := map[string]bool{}
	for _, tx := range txns {
		switch tx.ActionType {
		case model.ActionType_Buy, model.ActionType_Revenue:
			if tx.ProductType == model.ProductType_Equity || tx.ProductType == model.ProductType_Crypto {
				seen[tx.Symbol] = true
			}
		}
	}
	symbols := make([]string, 0, len(seen))
	for s := range seen {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

func symbolKind(txns []model.Transaction, symbol string) model.ProductType {
	for _, tx := range txns {
		if tx.Symbol == symbol {
			return tx.ProductType
		}
	}
	return model.ProductType_Equity
}
