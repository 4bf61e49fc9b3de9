package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"folio/internal/db/models/postgres/public/model"
	db "folio/internal/db/query"
	"folio/internal/fx"
	"folio/internal/ingest"
	"folio/internal/ticker"
	"folio/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	filePath := flag.String("file", "", "ledger csv export to import")
	userID := flag.Int("user", 0, "owning user id")
	flag.Parse()
	if *filePath == "" || *userID == 0 {
		log.Fatal("usage: import -file <ledger.csv> -user <id>")
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

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *filePath, err)
	}
	defer f.Close()

	txns, err := ingest.ParseCSV(f, int32(*userID))
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *filePath, err)
	}

	store := db.NewStore(tx)
	importer := ingest.Importer{
		Store: db.NewLedgerStore(tx),
		Fx:    &fx.Resolver{Store: store, Feed: fx.NewCnbClient()},
	}

	ctx := context.Background()
	inserted, err := importer.Import(ctx, txns)
	if err != nil {
		log.Fatal(err)
	}

	registrar := ticker.Registrar{Store: store}
	for _, id := range newIdentities(txns) {
		if _, err := registrar.Register(ctx, id); err != nil {
			log.Fatal(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}

	log.Printf("imported %d of %d transactions", inserted, len(txns))
}

// newIdentities derives one identity candidate per instrument in the batch,
// seeded from the first row that mentions it.
func newIdentities(txns []model.Transaction) []model.TickerIdentity {
	seen := map[string]bool{}
	out := []model.TickerIdentity{}
	for _, tx := range txns {
		if tx.ProductType != model.ProductType_Equity && tx.ProductType != model.ProductType_Crypto {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(tx.Symbol))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		out = append(out, model.TickerIdentity{
			Symbol:      symbol,
			Currency:    tx.NativeCurrency,
			ProductType: tx.ProductType,
		})
	}
	return out
}
