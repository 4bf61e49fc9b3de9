package realized

import (
	"testing"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func on(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func buy(symbol string, qty, price float64, date time.Time) model.Transaction {
	return model.Transaction{
		Symbol:         symbol,
		ProductType:    model.ProductType_Equity,
		ActionType:     model.ActionType_Buy,
		Quantity:       d(qty),
		UnitPrice:      d(price),
		NativeAmount:   d(qty * price),
		NativeCurrency: "CZK",
		FxRate:         d(1),
		LocalAmount:    d(qty * price),
		Date:           date,
	}
}

func sell(symbol string, qty, price float64, date time.Time) model.Transaction {
	tx := buy(symbol, qty, price, date)
	tx.ActionType = model.ActionType_Sell
	return tx
}

func year(y int) (time.Time, time.Time) {
	return on(y, 1, 1), on(y, 12, 31)
}

func TestCompute(t *testing.T) {
	t.Run("single disposal against average cost", func(t *testing.T) {
		txns := []model.Transaction{
			buy("CEZ", 10, 100, on(2024, 1, 1)),
			sell("CEZ", 4, 150, on(2024, 3, 1)),
		}
		from, to := year(2024)
		disposals, summary := Compute(txns, from, to)

		require.Len(t, disposals, 1)
		row := disposals[0]
		require.True(t, row.SellPricePerUnit.Equal(d(150)))
		require.True(t, row.AvgCostLocal.Equal(d(100)))
		require.True(t, row.GrossPl.Equal(d(200)), "gross = %s", row.GrossPl)
		require.True(t, row.NetPl.Equal(d(200)))
		require.True(t, summary.GrossPl.Equal(d(200)))
		require.Equal(t, 1, summary.WinCount)
		require.Equal(t, 0, summary.LossCount)
	})

	t.Run("fee in native currency is converted with the row's fx rate", func(t *testing.T) {
		s := sell("AAPL", 4, 150, on(2024, 3, 1))
		s.NativeCurrency = "USD"
		s.FxRate = d(20)
		s.LocalAmount = d(12000)
		s.Fee = d(2)
		txns := []model.Transaction{
			func() model.Transaction {
				b := buy("AAPL", 10, 100, on(2024, 1, 1))
				b.NativeCurrency = "USD"
				b.FxRate = d(20)
				b.LocalAmount = d(20000)
				return b
			}(),
			s,
		}
		from, to := year(2024)
		disposals, summary := Compute(txns, from, to)

		require.Len(t, disposals, 1)
		row := disposals[0]
		// sell 12000/4 = 3000 local per unit, avg cost 2000 local per unit
		require.True(t, row.GrossPl.Equal(d(4000)), "gross = %s", row.GrossPl)
		require.True(t, row.FeeLocal.Equal(d(40)))
		require.True(t, row.NetPl.Equal(d(3960)))
		require.True(t, summary.NetPl.Equal(d(3960)))
	})

	t.Run("cost basis replays as of each disposal", func(t *testing.T) {
		txns := []model.Transaction{
			buy("CEZ", 10, 100, on(2024, 1, 1)),
			sell("CEZ", 5, 150, on(2024, 2, 1)),
			buy("CEZ", 10, 300, on(2024, 3, 1)),
			sell("CEZ", 5, 150, on(2024, 4, 1)),
		}
		from, to := year(2024)
		disposals, _ := Compute(txns, from, to)

		require.Len(t, disposals, 2)
		// first sale sees only the 100 cost buy
		require.True(t, disposals[0].AvgCostLocal.Equal(d(100)))
		// second sale sees 1000+3000 over 20 acquired units
		require.True(t, disposals[1].AvgCostLocal.Equal(d(200)), "avg = %s", disposals[1].AvgCostLocal)
	})

	t.Run("later buys never leak into earlier disposals", func(t *testing.T) {
		txns := []model.Transaction{
			buy("CEZ", 10, 100, on(2024, 1, 1)),
			sell("CEZ", 4, 150, on(2024, 3, 1)),
			buy("CEZ", 100, 900, on(2024, 6, 1)),
		}
		from, to := year(2024)
		disposals, _ := Compute(txns, from, to)
		require.Len(t, disposals, 1)
		require.True(t, disposals[0].AvgCostLocal.Equal(d(100)))
	})

	t.Run("sells outside the window are skipped", func(t *testing.T) {
		txns := []model.Transaction{
			buy("CEZ", 10, 100, on(2023, 1, 1)),
			sell("CEZ", 2, 150, on(2023, 6, 1)),
			sell("CEZ", 2, 150, on(2024, 6, 1)),
		}
		from, to := year(2024)
		disposals, _ := Compute(txns, from, to)
		require.Len(t, disposals, 1)
		require.Equal(t, on(2024, 6, 1), disposals[0].Date)
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		txns := []model.Transaction{
			buy("CEZ", 10, 100, on(2023, 1, 1)),
			sell("CEZ", 1, 150, on(2024, 1, 1)),
			sell("CEZ", 1, 150, on(2024, 12, 31)),
		}
		from, to := year(2024)
		disposals, _ := Compute(txns, from, to)
		require.Len(t, disposals, 2)
	})

	t.Run("win and loss buckets", func(t *testing.T) {
		txns := []model.Transaction{
			buy("CEZ", 10, 100, on(2024, 1, 1)),
			sell("CEZ", 2, 150, on(2024, 2, 1)),
			sell("CEZ", 2, 50, on(2024, 3, 1)),
			sell("CEZ", 2, 100, on(2024, 4, 1)),
		}
		from, to := year(2024)
		_, summary := Compute(txns, from, to)

		require.Equal(t, 1, summary.WinCount)
		require.True(t, summary.WinSum.Equal(d(100)))
		require.Equal(t, 1, summary.LossCount)
		require.True(t, summary.LossSum.Equal(d(-100)))
		// break-even disposal lands in neither bucket
		require.True(t, summary.GrossPl.IsZero())
	})
}

func TestComputeTaxExemption(t *testing.T) {
	boughtOn := on(2021, 1, 1)

	t.Run("held one day short stays taxable", func(t *testing.T) {
		sellDay := boughtOn.AddDate(0, 0, ExemptHoldingDays-1)
		txns := []model.Transaction{
			buy("CEZ", 10, 100, boughtOn),
			sell("CEZ", 4, 150, sellDay),
		}
		disposals, summary := Compute(txns, boughtOn, sellDay)
		require.Len(t, disposals, 1)
		require.Equal(t, ExemptHoldingDays-1, disposals[0].HoldingDays)
		require.False(t, disposals[0].TaxExempt)
		require.True(t, summary.TaxableGross.Equal(d(200)))
		require.True(t, summary.ExemptGross.IsZero())
	})

	t.Run("exactly the exemption period is exempt", func(t *testing.T) {
		sellDay := boughtOn.AddDate(0, 0, ExemptHoldingDays)
		txns := []model.Transaction{
			buy("CEZ", 10, 100, boughtOn),
			sell("CEZ", 4, 150, sellDay),
		}
		disposals, summary := Compute(txns, boughtOn, sellDay)
		require.Len(t, disposals, 1)
		require.Equal(t, ExemptHoldingDays, disposals[0].HoldingDays)
		require.True(t, disposals[0].TaxExempt)
		require.True(t, summary.ExemptGross.Equal(d(200)))
		require.True(t, summary.TaxableGross.IsZero())
	})

	t.Run("holding runs from the earliest acquisition", func(t *testing.T) {
		later := buy("CEZ", 10, 100, on(2023, 6, 1))
		txns := []model.Transaction{
			buy("CEZ", 1, 100, boughtOn),
			later,
			sell("CEZ", 4, 150, boughtOn.AddDate(0, 0, ExemptHoldingDays)),
		}
		disposals, _ := Compute(txns, on(2021, 1, 1), on(2030, 1, 1))
		require.Len(t, disposals, 1)
		require.True(t, disposals[0].TaxExempt)
	})
}
