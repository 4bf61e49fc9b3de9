package db

import (
	"context"
	"database/sql"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/history"

	"github.com/shopspring/decimal"
)

// Store adapts the transaction-bound query functions to the engine-facing
// interfaces (price pipeline store, fx rate store). One Store spans one
// request's transaction.
type Store struct {
	Tx *sql.Tx
}

func NewStore(tx *sql.Tx) *Store { return &Store{Tx: tx} }

func (s *Store) GetQuote(_ context.Context, symbol string) (*model.LiveQuote, error) {
	return GetLiveQuote(s.Tx, symbol)
}

func (s *Store) UpsertQuote(_ context.Context, quote model.LiveQuote) error {
	return UpsertLiveQuote(s.Tx, quote)
}

func (s *Store) AppendDailyClose(_ context.Context, row model.PriceHistory) error {
	return UpsertDailyClose(s.Tx, row)
}

func (s *Store) DailyCloses(_ context.Context, symbol string) (history.Series, error) {
	rows, err := GetDailyCloses(s.Tx, symbol)
	if err != nil {
		return nil, err
	}
	series := make(history.Series, 0, len(rows))
	for _, r := range rows {
		series = append(series, history.Point{Date: r.Date, Close: r.ClosePrice})
	}
	return series, nil
}

func (s *Store) LastTransactionPrice(_ context.Context, symbol string) (*decimal.Decimal, error) {
	return LastTransactionPrice(s.Tx, symbol)
}

func (s *Store) Identities(_ context.Context) ([]model.TickerIdentity, error) {
	return GetTickerIdentities(s.Tx)
}

func (s *Store) AddIdentity(_ context.Context, identity model.TickerIdentity) error {
	return AddTickerIdentity(s.Tx, identity)
}

func (s *Store) SetAlias(_ context.Context, symbol, canonical string) error {
	return SetAlias(s.Tx, symbol, canonical)
}

func (s *Store) LatestOnOrBefore(_ context.Context, currency string, date time.Time) (*model.ExchangeRate, error) {
	return LatestRateOnOrBefore(s.Tx, currency, date)
}

func (s *Store) Add(_ context.Context, rates []model.ExchangeRate) error {
	return AddExchangeRates(s.Tx, rates)
}

// LedgerStore is the importer's view of the transaction table.
type LedgerStore struct {
	Tx *sql.Tx
}

func NewLedgerStore(tx *sql.Tx) *LedgerStore { return &LedgerStore{Tx: tx} }

func (s *LedgerStore) Add(_ context.Context, txns []model.Transaction) (int, error) {
	inserted, err := AddTransactions(s.Tx, txns)
	if err != nil {
		return 0, err
	}
	return len(inserted), nil
}
