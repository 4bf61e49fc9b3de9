package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/fx"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

var snapNow = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func buy(symbol string, product model.ProductType, qty, price, fxRate float64, currency string) model.Transaction {
	native := decimal.NewFromFloat(qty * price)
	return model.Transaction{
		UserID:         1,
		Symbol:         symbol,
		ProductType:    product,
		ActionType:     model.ActionType_Buy,
		Quantity:       d(qty),
		UnitPrice:      d(price),
		NativeAmount:   native,
		NativeCurrency: currency,
		FxRate:         d(fxRate),
		LocalAmount:    native.Mul(d(fxRate)),
		Date:           snapNow.AddDate(-1, 0, 0),
	}
}

type quoteGetterFunc func(ctx context.Context, symbol string, force bool, targetCurrency string, kind model.ProductType) (*model.LiveQuote, error)

func (f quoteGetterFunc) GetQuote(ctx context.Context, symbol string, force bool, targetCurrency string, kind model.ProductType) (*model.LiveQuote, error) {
	return f(ctx, symbol, force, targetCurrency, kind)
}

func fixedQuotes(quotes map[string]model.LiveQuote) QuoteGetter {
	return quoteGetterFunc(func(ctx context.Context, symbol string, force bool, targetCurrency string, kind model.ProductType) (*model.LiveQuote, error) {
		q, ok := quotes[symbol]
		if !ok {
			return nil, nil
		}
		return &q, nil
	})
}

type snapRateStore struct {
	rates []model.ExchangeRate
}

func (m *snapRateStore) LatestOnOrBefore(ctx context.Context, currency string, date time.Time) (*model.ExchangeRate, error) {
	for i := range m.rates {
		if m.rates[i].Currency == currency && !m.rates[i].Date.After(date) {
			return &m.rates[i], nil
		}
	}
	return nil, nil
}

func (m *snapRateStore) Add(ctx context.Context, rates []model.ExchangeRate) error {
	m.rates = append(m.rates, rates...)
	return nil
}

type snapFeed struct{}

func (snapFeed) DailyRates(ctx context.Context, date time.Time) ([]model.ExchangeRate, error) {
	return nil, errors.New("feed unavailable")
}

func snapResolver(rates ...model.ExchangeRate) *fx.Resolver {
	return &fx.Resolver{Store: &snapRateStore{rates: rates}, Feed: snapFeed{}}
}

func usdRate(rate float64) model.ExchangeRate {
	return model.ExchangeRate{
		Currency: "USD",
		Date:     snapNow,
		Rate:     d(rate),
		Amount:   decimal.NewFromInt(1),
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("values a local currency position", func(t *testing.T) {
		valuer := &Valuer{
			Quotes: fixedQuotes(map[string]model.LiveQuote{
				"CEZ": {Symbol: "CEZ", Price: d(1200), Currency: "CZK"},
			}),
			Fx:  snapResolver(),
			Now: func() time.Time { return snapNow },
		}

		rows, err := valuer.Snapshot(ctx, 1, []model.Transaction{
			buy("CEZ", model.ProductType_Equity, 10, 1000, 1, "CZK"),
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		row := rows[0]
		require.Nil(t, row.Error)
		require.True(t, row.CurrentValueLocal.Equal(d(12000)))
		require.True(t, row.UnrealizedPlLocal.Equal(d(2000)))
		// same currency, the whole move is price
		require.True(t, row.PriceEffect.Equal(d(2000)))
		require.True(t, row.FxEffect.IsZero())
	})

	t.Run("splits price and fx effects for foreign positions", func(t *testing.T) {
		// bought 10 @ 100 USD at 20 CZK/USD, now 110 USD at 25 CZK/USD
		valuer := &Valuer{
			Quotes: fixedQuotes(map[string]model.LiveQuote{
				"AAPL": {Symbol: "AAPL", Price: d(110), Currency: "USD"},
			}),
			Fx:  snapResolver(usdRate(25)),
			Now: func() time.Time { return snapNow },
		}

		rows, err := valuer.Snapshot(ctx, 1, []model.Transaction{
			buy("AAPL", model.ProductType_Equity, 10, 100, 20, "USD"),
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		row := rows[0]
		require.Nil(t, row.Error)
		// 10 * 110 * 25 = 27500 vs cost 10 * 2000 = 20000
		require.True(t, row.CurrentValueLocal.Equal(d(27500)))
		require.True(t, row.UnrealizedPlLocal.Equal(d(7500)))
		require.True(t, row.UnrealizedPlNative.Equal(d(100)))
		// price move of 100 USD at today's 25 CZK/USD
		require.True(t, row.PriceEffect.Equal(d(2500)))
		require.True(t, row.FxEffect.Equal(d(5000)))
	})

	t.Run("one failing instrument never blocks the rest", func(t *testing.T) {
		valuer := &Valuer{
			Quotes: fixedQuotes(map[string]model.LiveQuote{
				"CEZ": {Symbol: "CEZ", Price: d(1200), Currency: "CZK"},
			}),
			Fx:  snapResolver(),
			Now: func() time.Time { return snapNow },
		}

		rows, err := valuer.Snapshot(ctx, 1, []model.Transaction{
			buy("CEZ", model.ProductType_Equity, 10, 1000, 1, "CZK"),
			buy("NOPE", model.ProductType_Equity, 5, 50, 1, "CZK"),
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		bySymbol := map[string]model.PortfolioSnapshot{}
		for _, r := range rows {
			bySymbol[r.Symbol] = r
		}
		require.Nil(t, bySymbol["CEZ"].Error)
		require.NotNil(t, bySymbol["NOPE"].Error)
		require.Nil(t, bySymbol["NOPE"].CurrentValueLocal)
		// the failed row still carries the position itself
		require.True(t, bySymbol["NOPE"].Quantity.Equal(d(5)))
	})

	t.Run("missing fx rate is a row error, not a silent one-to-one", func(t *testing.T) {
		valuer := &Valuer{
			Quotes: fixedQuotes(map[string]model.LiveQuote{
				"AAPL": {Symbol: "AAPL", Price: d(110), Currency: "USD"},
			}),
			Fx:  snapResolver(),
			Now: func() time.Time { return snapNow },
		}

		rows, err := valuer.Snapshot(ctx, 1, []model.Transaction{
			buy("AAPL", model.ProductType_Equity, 10, 100, 20, "USD"),
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].Error)
		require.Nil(t, rows[0].CurrentValueLocal)
	})

	t.Run("flat and non-instrument rows are excluded", func(t *testing.T) {
		sellAll := buy("CEZ", model.ProductType_Equity, 10, 1200, 1, "CZK")
		sellAll.ActionType = model.ActionType_Sell
		sellAll.Date = snapNow.AddDate(0, -1, 0)

		deposit := model.Transaction{
			UserID:         1,
			Symbol:         "EUR",
			ProductType:    model.ProductType_Cash,
			ActionType:     model.ActionType_Deposit,
			NativeCurrency: "EUR",
			Date:           snapNow.AddDate(0, -2, 0),
		}

		rows, err := (&Valuer{
			Quotes: fixedQuotes(nil),
			Fx:     snapResolver(),
			Now:    func() time.Time { return snapNow },
		}).Snapshot(ctx, 1, []model.Transaction{
			buy("CEZ", model.ProductType_Equity, 10, 1000, 1, "CZK"),
			sellAll,
			deposit,
		})
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("all rows share one run id", func(t *testing.T) {
		valuer := &Valuer{
			Quotes: fixedQuotes(map[string]model.LiveQuote{
				"CEZ":  {Symbol: "CEZ", Price: d(1200), Currency: "CZK"},
				"KOMB": {Symbol: "KOMB", Price: d(900), Currency: "CZK"},
			}),
			Fx:  snapResolver(),
			Now: func() time.Time { return snapNow },
		}

		rows, err := valuer.Snapshot(ctx, 1, []model.Transaction{
			buy("CEZ", model.ProductType_Equity, 10, 1000, 1, "CZK"),
			buy("KOMB", model.ProductType_Equity, 3, 800, 1, "CZK"),
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, rows[0].RunID, rows[1].RunID)
	})
}
