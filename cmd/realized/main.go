package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	db "folio/internal/db/query"
	"folio/internal/realized"
	"folio/internal/util"

	"github.com/Rhymond/go-money"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func main() {
	userID := flag.Int("user", 0, "user id to report")
	fromStr := flag.String("from", "", "period start (2006-01-02), defaults to start of year")
	toStr := flag.String("to", "", "period end (2006-01-02), defaults to today")
	flag.Parse()
	if *userID == 0 {
		log.Fatal("usage: realized -user <id> [-from 2024-01-01] [-to 2024-12-31]")
	}

	cfg := util.LoadConfig()
	util.InitLogger(cfg.LogLevel)

	now := time.Now().UTC()
	from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	to := now
	var err error
	if *fromStr != "" {
		if from, err = time.Parse("2006-01-02", *fromStr); err != nil {
			log.Fatalf("bad -from: %v", err)
		}
	}
	if *toStr != "" {
		if to, err = time.Parse("2006-01-02", *toStr); err != nil {
			log.Fatalf("bad -to: %v", err)
		}
	}

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	txns, err := db.GetTransactions(tx, int32(*userID), "")
	if err != nil {
		log.Fatal(err)
	}

	disposals, summary := realized.Compute(txns, from, to)

	for _, d := range disposals {
		status := "taxable"
		if d.TaxExempt {
			status = "exempt"
		}
		fmt.Printf("%s  %-10s  sold %s @ %s (avg cost %s)  gross %s  net %s  held %d days  %s\n",
			d.Date.Format("2006-01-02"),
			d.Symbol,
			d.Quantity.String(),
			czk(d.SellPricePerUnit),
			czk(d.AvgCostLocal),
			czk(d.GrossPl),
			czk(d.NetPl),
			d.HoldingDays,
			status,
		)
	}

	fmt.Printf("\ngross P&L: %s   net P&L: %s\n", czk(summary.GrossPl), czk(summary.NetPl))
	fmt.Printf("exempt gains: %s   taxable gains: %s\n", czk(summary.ExemptGross), czk(summary.TaxableGross))
	fmt.Printf("wins: %d (%s)   losses: %d (%s)\n",
		summary.WinCount, czk(summary.WinSum), summary.LossCount, czk(summary.LossSum))
}

func czk(d decimal.Decimal) string {
	return money.New(d.Round(2).Shift(2).IntPart(), money.CZK).Display()
}
