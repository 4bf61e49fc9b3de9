package prices

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// defaultExchangeCandidates maps a target currency to the prioritized
// exchange codes tried on the scraped source. The tables live here as data
// so reordering or extending them is a config change, not a code change.
var defaultExchangeCandidates = map[string][]string{
	"USD": {"NASDAQ", "NYSE", "NYSEARCA", "BATS"},
	"EUR": {"ETR", "FRA", "AMS"},
	"GBP": {"LON"},
	"CZK": {"PRG"},
	"CHF": {"SWX"},
	"CAD": {"TSE"},
}

var (
	gfPriceRe    = regexp.MustCompile(`data-last-price="([0-9.,]+)"`)
	gfCurrencyRe = regexp.MustCompile(`data-currency-code="([A-Z]+)"`)
	gfTitleRe    = regexp.MustCompile(`<title>([^(<]+)\(`)
)

// GoogleFinanceSource is the scraping-based secondary source, keyed by
// TICKER:EXCHANGE. Candidates come from the target currency's exchange
// table, with manually curated overrides for known-ambiguous tickers tried
// first.
type GoogleFinanceSource struct {
	HttpClient *http.Client
	BaseURL    string
	Candidates map[string][]string
	// Overrides lists explicit TICKER:EXCHANGE candidates per symbol.
	Overrides map[string][]string
}

func NewGoogleFinanceSource() *GoogleFinanceSource {
	return &GoogleFinanceSource{
		HttpClient: &http.Client{Timeout: 8 * time.Second},
		BaseURL:    "https://www.google.com/finance/quote",
		Candidates: defaultExchangeCandidates,
		Overrides:  map[string][]string{},
	}
}

func (s *GoogleFinanceSource) Name() string { return "googlefinance" }

func (s *GoogleFinanceSource) Fetch(ctx context.Context, req Request) (*Quote, error) {
	if req.Kind == model.ProductType_Crypto {
		return nil, ErrNotFound
	}

	for _, key := range s.candidateKeys(req) {
		q, err := s.scrape(ctx, key)
		if err != nil {
			slog.Debug("google finance scrape miss", "key", key, "error", err)
			continue
		}
		q.Symbol = req.Symbol
		return q, nil
	}

	return nil, ErrNotFound
}

func (s *GoogleFinanceSource) candidateKeys(req Request) []string {
	keys := []string{}
	keys = append(keys, s.Overrides[strings.ToUpper(req.Symbol)]...)
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}
	for _, exchange := range s.Candidates[currency] {
		keys = append(keys, req.Symbol+":"+exchange)
	}
	return keys
}

func (s *GoogleFinanceSource) scrape(ctx context.Context, key string) (*Quote, error) {
	url := fmt.Sprintf("%s/%s", s.BaseURL, key)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", yahooUserAgent)

	resp, err := s.HttpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google finance http %d", ErrNotFound, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	page := string(body)

	priceMatch := gfPriceRe.FindStringSubmatch(page)
	if priceMatch == nil {
		return nil, ErrNotFound
	}
	price, err := decimal.NewFromString(strings.ReplaceAll(priceMatch[1], ",", ""))
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNotFound
	}

	currency := ""
	if m := gfCurrencyRe.FindStringSubmatch(page); m != nil {
		currency = m[1]
	}
	name := ""
	if m := gfTitleRe.FindStringSubmatch(page); m != nil {
		name = strings.TrimSpace(m[1])
	}
	exchange := ""
	if i := strings.Index(key, ":"); i >= 0 {
		exchange = key[i+1:]
	}

	return &Quote{
		Price:       price,
		Currency:    currency,
		CompanyName: name,
		Exchange:    exchange,
		Source:      "googlefinance",
	}, nil
}
