package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	db "folio/internal/db/query"
	"folio/internal/fx"
	"folio/internal/portfolio"
	"folio/internal/prices"
	"folio/internal/util"

	"github.com/Rhymond/go-money"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func main() {
	userID := flag.Int("user", 0, "user id to value")
	flag.Parse()
	if *userID == 0 {
		log.Fatal("usage: valuation -user <id>")
	}

	cfg := util.LoadConfig()
	util.InitLogger(cfg.LogLevel)

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	txns, err := db.GetTransactions(tx, int32(*userID), "")
	if err != nil {
		log.Fatal(err)
	}

	store := db.NewStore(tx)
	valuer := portfolio.Valuer{
		Quotes: prices.NewPipeline(store,
			prices.NewYahooSource(),
			prices.NewCoinGeckoSource(),
			prices.NewGoogleFinanceSource(),
		),
		Fx: &fx.Resolver{Store: store, Feed: fx.NewCnbClient()},
	}

	rows, err := valuer.Snapshot(ctx, int32(*userID), txns)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.ReplaceSnapshot(tx, int32(*userID), rows); err != nil {
		log.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}

	total := decimal.Zero
	for _, row := range rows {
		if row.Error != nil {
			fmt.Printf("%-10s  %12s  valuation failed: %s\n", row.Symbol, row.Quantity.String(), *row.Error)
			continue
		}
		total = total.Add(*row.CurrentValueLocal)
		fmt.Printf("%-10s  %12s @ %s %s  value %s  unrealized %s (price %s, fx %s)\n",
			row.Symbol,
			row.Quantity.String(),
			row.CurrentPrice.StringFixed(2),
			*row.PriceCurrency,
			czk(*row.CurrentValueLocal),
			czk(*row.UnrealizedPlLocal),
			czk(*row.PriceEffect),
			czk(*row.FxEffect),
		)
	}
	fmt.Printf("\ntotal portfolio value: %s\n", czk(total))
}

func czk(d decimal.Decimal) string {
	return money.New(d.Round(2).Shift(2).IntPart(), money.CZK).Display()
}
