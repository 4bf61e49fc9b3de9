package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/fx"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func on(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

// memTxStore records what Import hands it and dedupes on fingerprint the
// way the database unique index would.
type memTxStore struct {
	rows map[string]model.Transaction
	got  []model.Transaction
}

func newMemTxStore() *memTxStore {
	return &memTxStore{rows: map[string]model.Transaction{}}
}

func (m *memTxStore) Add(ctx context.Context, txns []model.Transaction) (int, error) {
	m.got = append(m.got, txns...)
	inserted := 0
	for _, tx := range txns {
		if _, ok := m.rows[tx.Fingerprint]; ok {
			continue
		}
		m.rows[tx.Fingerprint] = tx
		inserted++
	}
	return inserted, nil
}

type memRateStore struct {
	rates []model.ExchangeRate
}

func (m *memRateStore) LatestOnOrBefore(ctx context.Context, currency string, date time.Time) (*model.ExchangeRate, error) {
	for i := range m.rates {
		if m.rates[i].Currency == currency && !m.rates[i].Date.After(date) {
			return &m.rates[i], nil
		}
	}
	return nil, nil
}

func (m *memRateStore) Add(ctx context.Context, rates []model.ExchangeRate) error {
	m.rates = append(m.rates, rates...)
	return nil
}

type feedStub struct{}

func (feedStub) DailyRates(ctx context.Context, date time.Time) ([]model.ExchangeRate, error) {
	return nil, fx.ErrNoRate
}

func testResolver(rates ...model.ExchangeRate) *fx.Resolver {
	return &fx.Resolver{Store: &memRateStore{rates: rates}, Feed: feedStub{}}
}

func sampleBuy() model.Transaction {
	return model.Transaction{
		UserID:         1,
		Symbol:         "CEZ",
		ProductType:    model.ProductType_Equity,
		ActionType:     model.ActionType_Buy,
		Quantity:       d(10),
		UnitPrice:      d(100),
		NativeAmount:   d(1000),
		NativeCurrency: "CZK",
		FxRate:         d(1),
		LocalAmount:    d(1000),
		Date:           on(2024, 1, 2),
		Platform:       "degiro",
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("stable across repeated calls", func(t *testing.T) {
		require.Equal(t, Fingerprint(sampleBuy()), Fingerprint(sampleBuy()))
	})

	t.Run("ignores fields outside the identity", func(t *testing.T) {
		a := sampleBuy()
		b := sampleBuy()
		b.UnitPrice = d(999)
		b.Fee = d(3)
		require.Equal(t, Fingerprint(a), Fingerprint(b))
	})

	t.Run("changes with any identity field", func(t *testing.T) {
		base := Fingerprint(sampleBuy())

		tx := sampleBuy()
		tx.Date = on(2024, 1, 3)
		require.NotEqual(t, base, Fingerprint(tx))

		tx = sampleBuy()
		tx.Quantity = d(11)
		require.NotEqual(t, base, Fingerprint(tx))

		tx = sampleBuy()
		tx.ActionType = model.ActionType_Sell
		require.NotEqual(t, base, Fingerprint(tx))

		tx = sampleBuy()
		tx.Platform = "xtb"
		require.NotEqual(t, base, Fingerprint(tx))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("sell rows lose their sign", func(t *testing.T) {
		tx := sampleBuy()
		tx.ActionType = model.ActionType_Sell
		tx.Quantity = d(-4)
		tx.NativeAmount = d(-600)
		tx.LocalAmount = d(-600)
		tx.Fee = d(-2)
		Normalize(&tx)
		require.True(t, tx.Quantity.Equal(d(4)))
		require.True(t, tx.NativeAmount.Equal(d(600)))
		require.True(t, tx.LocalAmount.Equal(d(600)))
		require.True(t, tx.Fee.Equal(d(2)))
	})

	t.Run("buy amounts keep their sign", func(t *testing.T) {
		tx := sampleBuy()
		tx.NativeAmount = d(-1000)
		Normalize(&tx)
		require.True(t, tx.NativeAmount.Equal(d(-1000)))
	})

	t.Run("symbol is upper cased and trimmed", func(t *testing.T) {
		tx := sampleBuy()
		tx.Symbol = "  cez "
		Normalize(&tx)
		require.Equal(t, "CEZ", tx.Symbol)
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("re-importing the same batch inserts nothing new", func(t *testing.T) {
		store := newMemTxStore()
		importer := &Importer{Store: store, Fx: testResolver()}

		inserted, err := importer.Import(ctx, []model.Transaction{sampleBuy()})
		require.NoError(t, err)
		require.Equal(t, 1, inserted)

		inserted, err = importer.Import(ctx, []model.Transaction{sampleBuy()})
		require.NoError(t, err)
		require.Equal(t, 0, inserted)
		require.Len(t, store.rows, 1)
	})

	t.Run("derives the local amount from the stored rate", func(t *testing.T) {
		store := newMemTxStore()
		importer := &Importer{Store: store, Fx: testResolver(model.ExchangeRate{
			Currency: "USD",
			Date:     on(2024, 1, 1),
			Rate:     d(23),
			Amount:   decimal.NewFromInt(1),
		})}

		tx := sampleBuy()
		tx.Symbol = "AAPL"
		tx.NativeCurrency = "USD"
		tx.FxRate = decimal.Zero
		tx.LocalAmount = decimal.Zero

		inserted, err := importer.Import(ctx, []model.Transaction{tx})
		require.NoError(t, err)
		require.Equal(t, 1, inserted)
		got := store.got[0]
		require.True(t, got.FxRate.Equal(d(23)))
		require.True(t, got.LocalAmount.Equal(d(23000)), "local = %s", got.LocalAmount)
	})

	t.Run("a provided local amount is never overwritten", func(t *testing.T) {
		store := newMemTxStore()
		importer := &Importer{Store: store, Fx: testResolver()}

		tx := sampleBuy()
		tx.NativeCurrency = "USD"
		tx.LocalAmount = d(22800)

		_, err := importer.Import(ctx, []model.Transaction{tx})
		require.NoError(t, err)
		require.True(t, store.got[0].LocalAmount.Equal(d(22800)))
	})

	t.Run("missing rate fails the import instead of guessing", func(t *testing.T) {
		store := newMemTxStore()
		importer := &Importer{Store: store, Fx: testResolver()}

		tx := sampleBuy()
		tx.NativeCurrency = "USD"
		tx.LocalAmount = decimal.Zero

		_, err := importer.Import(ctx, []model.Transaction{tx})
		require.ErrorIs(t, err, fx.ErrNoRate)
		require.Empty(t, store.got)
	})
}

const sampleCsv = `date,symbol,product,action,quantity,unit_price,native_amount,currency,fx_rate,local_amount,fee,platform
2024-01-02,CEZ,equity,buy,10,100,1000,CZK,1,1000,0,degiro
2024-02-10,aapl,equity,sell,-4,150,-600,USD,23,,2,degiro
2024-03-01,BTC,crypto,buy,0.5,60000,30000,USD,,,,anycoin
`

func TestParseCSV(t *testing.T) {
	t.Run("parses a full export", func(t *testing.T) {
		txns, err := ParseCSV(strings.NewReader(sampleCsv), 7)
		require.NoError(t, err)
		require.Len(t, txns, 3)

		require.Equal(t, int32(7), txns[0].UserID)
		require.Equal(t, "CEZ", txns[0].Symbol)
		require.Equal(t, model.ActionType_Buy, txns[0].ActionType)
		require.Equal(t, on(2024, 1, 2), txns[0].Date)
		require.True(t, txns[0].Quantity.Equal(d(10)))

		// raw values are preserved; Normalize handles signs later
		require.Equal(t, "aapl", txns[1].Symbol)
		require.True(t, txns[1].Quantity.Equal(d(-4)))
		require.True(t, txns[1].LocalAmount.IsZero())

		require.Equal(t, model.ProductType_Crypto, txns[2].ProductType)
		require.True(t, txns[2].Quantity.Equal(d(0.5)))
		require.Equal(t, "USD", txns[2].NativeCurrency)
	})

	t.Run("missing column fails the file", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("date,symbol\n2024-01-02,CEZ\n"), 1)
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing column")
	})

	t.Run("malformed row names its line", func(t *testing.T) {
		bad := strings.Replace(sampleCsv, "2024-02-10", "10.02.2024", 1)
		_, err := ParseCSV(strings.NewReader(bad), 1)
		require.Error(t, err)
		require.Contains(t, err.Error(), "row 3")
	})

	t.Run("empty input is not an error", func(t *testing.T) {
		txns, err := ParseCSV(strings.NewReader(""), 1)
		require.NoError(t, err)
		require.Empty(t, txns)
	})
}
