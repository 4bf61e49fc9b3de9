package fx

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

const defaultCnbURL = "https://www.cnb.cz/cs/financni-trhy/devizovy-trh/kurzy-devizoveho-trhu/kurzy-devizoveho-trhu/denni_kurz.txt"

// CnbClient fetches the Czech National Bank daily fixing. The feed is a
// pipe-delimited text file:
//
//	30.08.2026 #168
//	země|měna|množství|kód|kurz
//	Austrálie|dolar|1|AUD|15,858
//
// Rates use a decimal comma and quote per `množství` units (some currencies
// are quoted per 100 or 1000).
type CnbClient struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewCnbClient() *CnbClient {
	return &CnbClient{
		HttpClient: &http.Client{Timeout: 8 * time.Second},
		BaseURL:    defaultCnbURL,
	}
}

func (c *CnbClient) DailyRates(ctx context.Context, date time.Time) ([]model.ExchangeRate, error) {
	url := fmt.Sprintf("%s?date=%s", c.BaseURL, date.Format("02.01.2006"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cnb fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cnb fetch returned %s", resp.Status)
	}

	rates := []model.ExchangeRate{}
	scanner := bufio.NewScanner(resp.Body)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo <= 2 || line == "" {
			// date header and column header
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) != 5 {
			continue
		}
		amount, err := parseCzechDecimal(fields[2])
		if err != nil {
			continue
		}
		rate, err := parseCzechDecimal(fields[4])
		if err != nil {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(fields[3]))
		if code == "" || amount.IsZero() {
			continue
		}
		rates = append(rates, model.ExchangeRate{
			Currency:  code,
			Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Rate:      rate,
			Amount:    amount,
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cnb response read failed: %w", err)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("cnb returned no rates for %s", date.Format("2006-01-02"))
	}

	return rates, nil
}

func parseCzechDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
