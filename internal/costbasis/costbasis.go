package costbasis

import (
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// Position is the state of one holding after replaying the ledger up to a
// date: what is left and what it cost on average, in the local currency and
// in the instrument's native currency.
type Position struct {
	Symbol        string
	RemainingQty  decimal.Decimal
	AvgCostLocal  decimal.Decimal
	AvgCostNative decimal.Decimal
	AvgFxRate     decimal.Decimal
	FirstPurchase *time.Time
}

type Options struct {
	// Platform scopes the replay to transactions on one platform when
	// non-empty.
	Platform string
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AsOf replays all transactions of one instrument and returns the position
// prevailing immediately before any sale dated asOf: acquisitions (buys and
// staking/reward revenue) count up to and including asOf, disposals count
// strictly before asOf. A remaining quantity of zero or less is a defined
// flat position, not an error.
//
// Average cost is gross acquisition cost divided by gross acquired
// quantity. It is deliberately never re-based after partial sales, which
// makes it stable across any number of disposals.
func AsOf(txns []model.Transaction, symbol string, asOf time.Time, opts Options) Position {
	cutoff := day(asOf)

	bought := decimal.Zero
	sold := decimal.Zero
	costLocal := decimal.Zero
	costNative := decimal.Zero
	var firstPurchase *time.Time

	for _, tx := range txns {
		if tx.Symbol != symbol {
			continue
		}
		if opts.Platform != "" && tx.Platform != opts.Platform {
			continue
		}
		txDay := day(tx.Date)

		switch tx.ActionType {
		case model.ActionType_Buy, model.ActionType_Revenue:
			if txDay.After(cutoff) {
				continue
			}
			qty := tx.Quantity
			if tx.ProductType == model.ProductType_Crypto {
				// some platforms take the fee out of the asset
				// itself; the acquired quantity shrinks by the
				// fee's equivalent in units
				qty = qty.Sub(feeQuantity(tx))
			}
			bought = bought.Add(qty)
			costLocal = costLocal.Add(tx.LocalAmount.Abs())
			costNative = costNative.Add(tx.NativeAmount.Abs())
			if firstPurchase == nil || txDay.Before(*firstPurchase) {
				d := txDay
				firstPurchase = &d
			}
		case model.ActionType_Sell:
			if !txDay.Before(cutoff) {
				continue
			}
			qty := tx.Quantity
			if tx.ProductType == model.ProductType_Crypto {
				qty = qty.Add(feeQuantity(tx))
			}
			sold = sold.Add(qty)
		}
	}

	remaining := bought.Sub(sold)
	if remaining.LessThanOrEqual(decimal.Zero) || bought.IsZero() {
		return Position{Symbol: symbol}
	}

	avgLocal := costLocal.Div(bought)
	avgNative := costNative.Div(bought)
	avgFx := decimal.Zero
	if !costNative.IsZero() {
		avgFx = costLocal.Div(costNative)
	}

	return Position{
		Symbol:        symbol,
		RemainingQty:  remaining,
		AvgCostLocal:  avgLocal,
		AvgCostNative: avgNative,
		AvgFxRate:     avgFx,
		FirstPurchase: firstPurchase,
	}
}

// feeQuantity converts a native-currency fee into instrument units at the
// transaction's unit price.
func feeQuantity(tx model.Transaction) decimal.Decimal {
	if tx.Fee.IsZero() || tx.UnitPrice.IsZero() {
		return decimal.Zero
	}
	return tx.Fee.Abs().Div(tx.UnitPrice)
}
