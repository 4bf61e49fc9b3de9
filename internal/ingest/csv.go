package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// expected header of a ledger export:
// date,symbol,product,action,quantity,unit_price,native_amount,currency,fx_rate,local_amount,fee,platform
var csvColumns = []string{
	"date", "symbol", "product", "action", "quantity", "unit_price",
	"native_amount", "currency", "fx_rate", "local_amount", "fee", "platform",
}

// ParseCSV reads a ledger export into transactions for one user. Rows are
// parsed strictly: a malformed row fails the whole file so a partial import
// never goes unnoticed.
func ParseCSV(r io.Reader, userID int32) ([]model.Transaction, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range csvColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", name)
		}
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for n, record := range records[1:] {
		tx, err := parseRow(record, col, userID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

func parseRow(record []string, col map[string]int, userID int32) (model.Transaction, error) {
	get := func(name string) string { return strings.TrimSpace(record[col[name]]) }

	date, err := time.Parse("2006-01-02", get("date"))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad date %q: %w", get("date"), err)
	}

	nums := map[string]decimal.Decimal{}
	for _, name := range []string{"quantity", "unit_price", "native_amount", "fx_rate", "local_amount", "fee"} {
		raw := get(name)
		if raw == "" {
			nums[name] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("bad %s %q: %w", name, raw, err)
		}
		nums[name] = d
	}

	action := model.ActionType(strings.ToLower(get("action")))
	product := model.ProductType(strings.ToLower(get("product")))

	return model.Transaction{
		UserID:         userID,
		Symbol:         get("symbol"),
		ProductType:    product,
		ActionType:     action,
		Quantity:       nums["quantity"],
		UnitPrice:      nums["unit_price"],
		NativeAmount:   nums["native_amount"],
		NativeCurrency: strings.ToUpper(get("currency")),
		FxRate:         nums["fx_rate"],
		LocalAmount:    nums["local_amount"],
		Fee:            nums["fee"],
		Date:           date,
		Platform:       get("platform"),
	}, nil
}
