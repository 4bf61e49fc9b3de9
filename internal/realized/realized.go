package realized

import (
	"time"

	"folio/internal/costbasis"
	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// ExemptHoldingDays is the minimum calendar holding period after which a
// disposal's gain is tax exempt (three years).
const ExemptHoldingDays = 1095

// Disposal is one Sell transaction priced against the average cost
// prevailing immediately before it.
type Disposal struct {
	TransactionID    int32
	Symbol           string
	Date             time.Time
	Quantity         decimal.Decimal
	SellPricePerUnit decimal.Decimal
	AvgCostLocal     decimal.Decimal
	GrossPl          decimal.Decimal
	NetPl            decimal.Decimal
	FeeLocal         decimal.Decimal
	HoldingDays      int
	TaxExempt        bool
}

type Summary struct {
	GrossPl      decimal.Decimal
	NetPl        decimal.Decimal
	ExemptGross  decimal.Decimal
	TaxableGross decimal.Decimal
	WinCount     int
	WinSum       decimal.Decimal
	LossCount    int
	LossSum      decimal.Decimal
}

func newSummary() Summary {
	return Summary{
		GrossPl:      decimal.Zero,
		NetPl:        decimal.Zero,
		ExemptGross:  decimal.Zero,
		TaxableGross: decimal.Zero,
		WinSum:       decimal.Zero,
		LossSum:      decimal.Zero,
	}
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Compute projects every Sell transaction dated within [from, to] onto a
// realized P&L row and aggregates the rows. The ledger itself is never
// modified; each disposal replays the cost basis as of its own date, so a
// row is unaffected by anything dated after it.
func Compute(txns []model.Transaction, from, to time.Time) ([]Disposal, Summary) {
	fromDay := day(from)
	toDay := day(to)

	disposals := []Disposal{}
	summary := newSummary()

	for _, tx := range txns {
		if tx.ActionType != model.ActionType_Sell {
			continue
		}
		txDay := day(tx.Date)
		if txDay.Before(fromDay) || txDay.After(toDay) {
			continue
		}
		if tx.Quantity.LessThanOrEqual(decimal.Zero) {
			continue
		}

		d := disposal(txns, tx)
		disposals = append(disposals, d)

		summary.GrossPl = summary.GrossPl.Add(d.GrossPl)
		summary.NetPl = summary.NetPl.Add(d.NetPl)
		if d.TaxExempt {
			summary.ExemptGross = summary.ExemptGross.Add(d.GrossPl)
		} else {
			summary.TaxableGross = summary.TaxableGross.Add(d.GrossPl)
		}
		if d.GrossPl.GreaterThan(decimal.Zero) {
			summary.WinCount++
			summary.WinSum = summary.WinSum.Add(d.GrossPl)
		} else if d.GrossPl.LessThan(decimal.Zero) {
			summary.LossCount++
			summary.LossSum = summary.LossSum.Add(d.GrossPl)
		}
	}

	return disposals, summary
}

func disposal(txns []model.Transaction, sell model.Transaction) Disposal {
	sellDay := day(sell.Date)
	sellPrice := sell.LocalAmount.Abs().Div(sell.Quantity)

	pos := costbasis.AsOf(txns, sell.Symbol, sellDay, costbasis.Options{})

	gross := sellPrice.Sub(pos.AvgCostLocal).Mul(sell.Quantity)
	feeLocal := localFee(sell)
	net := gross.Sub(feeLocal)

	holdingDays := 0
	if pos.FirstPurchase != nil {
		holdingDays = int(sellDay.Sub(*pos.FirstPurchase).Hours() / 24)
	}

	return Disposal{
		TransactionID:    sell.TransactionID,
		Symbol:           sell.Symbol,
		Date:             sellDay,
		Quantity:         sell.Quantity,
		SellPricePerUnit: sellPrice,
		AvgCostLocal:     pos.AvgCostLocal,
		GrossPl:          gross,
		NetPl:            net,
		FeeLocal:         feeLocal,
		HoldingDays:      holdingDays,
		TaxExempt:        pos.FirstPurchase != nil && holdingDays >= ExemptHoldingDays,
	}
}

// localFee converts the transaction fee to the local currency with the fx
// rate the transaction itself carries.
func localFee(tx model.Transaction) decimal.Decimal {
	fee := tx.Fee.Abs()
	if fee.IsZero() {
		return decimal.Zero
	}
	if tx.FxRate.IsZero() {
		return fee
	}
	return fee.Mul(tx.FxRate)
}
