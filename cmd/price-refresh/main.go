package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	db "folio/internal/db/query"
	"folio/internal/prices"
	"folio/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	symbol := flag.String("symbol", "", "refresh a single symbol instead of all tracked tickers")
	force := flag.Bool("force", false, "refetch even when a same-day quote is cached")
	flag.Parse()

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

	store := db.NewStore(tx)
	pipeline := prices.NewPipeline(store,
		prices.NewYahooSource(),
		prices.NewCoinGeckoSource(),
		prices.NewGoogleFinanceSource(),
	)

	ctx := context.Background()
	symbols := []string{*symbol}
	if *symbol == "" {
		identities, err := db.GetTickerIdentities(tx)
		if err != nil {
			log.Fatal(err)
		}
		symbols = symbols[:0]
		for _, id := range identities {
			if id.AliasOf != nil && *id.AliasOf != "" {
				// alias rows are refreshed through their canonical
				continue
			}
			symbols = append(symbols, id.Symbol)
		}
	}

	refreshed, missed := 0, 0
	for _, s := range symbols {
		quote, err := pipeline.GetQuote(ctx, s, *force, "", "")
		if err != nil {
			log.Fatal(err)
		}
		if quote == nil {
			slog.Warn("no source could price symbol", "symbol", s)
			missed++
			continue
		}
		slog.Info("quote refreshed", "symbol", s, "price", quote.Price.String(),
			"currency", quote.Currency, "source", quote.Source)
		refreshed++
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}
	log.Printf("refreshed %d symbols, %d without a price", refreshed, missed)
}
