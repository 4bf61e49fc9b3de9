package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"golang.org/x/net/publicsuffix"
)

const yahooUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// YahooSource prices equities through the v8 chart API with the raw symbol
// and retries with `.` and `-` swapped, because share-class notation
// differs across providers (BRK.B vs BRK-B). Crypto is requested with the
// <SYMBOL>-USD convention and is always USD denominated at this layer.
type YahooSource struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewYahooSource() *YahooSource {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		slog.Error("failed to create cookie jar", "error", err)
	}
	return &YahooSource{
		HttpClient: &http.Client{Timeout: 8 * time.Second, Jar: jar},
		BaseURL:    "https://query2.finance.yahoo.com",
	}
}

func (s *YahooSource) Name() string { return "yahoo" }

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol                     string  `json:"symbol"`
				Currency                   string  `json:"currency"`
				ExchangeName               string  `json:"exchangeName"`
				FullExchangeName           string  `json:"fullExchangeName"`
				ShortName                  string  `json:"shortName"`
				LongName                   string  `json:"longName"`
				RegularMarketPrice         float64 `json:"regularMarketPrice"`
				ChartPreviousClose         float64 `json:"chartPreviousClose"`
				RegularMarketTime          int64   `json:"regularMarketTime"`
				RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
			} `json:"meta"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (s *YahooSource) Fetch(ctx context.Context, req Request) (*Quote, error) {
	symbols := []string{req.Symbol}
	if req.Kind == model.ProductType_Crypto {
		symbols = []string{req.Symbol + "-USD"}
	} else if swapped := swapClassNotation(req.Symbol); swapped != req.Symbol {
		symbols = append(symbols, swapped)
	}

	for _, symbol := range symbols {
		q, err := s.fetchSymbol(ctx, symbol)
		if err != nil {
			slog.Debug("yahoo fetch miss", "symbol", symbol, "error", err)
			continue
		}
		if req.Kind == model.ProductType_Crypto {
			// crypto quotes stay USD denominated here; conversion to
			// the user's currency happens later
			q.Currency = "USD"
			q.Symbol = req.Symbol
		}
		return q, nil
	}

	return nil, ErrNotFound
}

func (s *YahooSource) fetchSymbol(ctx context.Context, symbol string) (*Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", s.BaseURL, symbol)
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
		return nil, fmt.Errorf("%w: yahoo http %d", ErrNotFound, resp.StatusCode)
	}

	var raw yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if len(raw.Chart.Result) == 0 {
		return nil, ErrNotFound
	}

	meta := raw.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return nil, ErrNotFound
	}

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}
	exchange := meta.FullExchangeName
	if exchange == "" {
		exchange = meta.ExchangeName
	}
	change := decimal.NewFromFloat(meta.RegularMarketChangePercent)

	return &Quote{
		Symbol:       meta.Symbol,
		Price:        decimal.NewFromFloat(meta.RegularMarketPrice),
		Currency:     strings.ToUpper(meta.Currency),
		CompanyName:  name,
		Exchange:     exchange,
		DayChangePct: &change,
		Source:       "yahoo",
	}, nil
}

// swapClassNotation flips between the two share-class spellings:
// BRK.B <-> BRK-B.
func swapClassNotation(symbol string) string {
	if strings.Contains(symbol, ".") {
		return strings.ReplaceAll(symbol, ".", "-")
	}
	if strings.Contains(symbol, "-") {
		return strings.ReplaceAll(symbol, "-", ".")
	}
	return symbol
}
