package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"folio/internal/db/models/postgres/public/model"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// defaultCoinIDs maps ticker symbols to CoinGecko coin identifiers. The
// provider keys its API by its own slugs, not exchange symbols.
var defaultCoinIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"SOL":   "solana",
	"DOT":   "polkadot",
	"DOGE":  "dogecoin",
	"LTC":   "litecoin",
	"XRP":   "ripple",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"ATOM":  "cosmos",
}

// CoinGeckoSource is the crypto fallback when the chart API has no
// <SYMBOL>-USD listing. Prices and 24h change are USD denominated.
type CoinGeckoSource struct {
	HttpClient *http.Client
	BaseURL    string
	CoinIDs    map[string]string
}

func NewCoinGeckoSource() *CoinGeckoSource {
	return &CoinGeckoSource{
		HttpClient: &http.Client{Timeout: 8 * time.Second},
		BaseURL:    "https://api.coingecko.com",
		CoinIDs:    defaultCoinIDs,
	}
}

func (s *CoinGeckoSource) Name() string { return "coingecko" }

func (s *CoinGeckoSource) Fetch(ctx context.Context, req Request) (*Quote, error) {
	if req.Kind != model.ProductType_Crypto {
		return nil, ErrNotFound
	}
	coinID, ok := s.CoinIDs[strings.ToUpper(req.Symbol)]
	if !ok {
		coinID = strings.ToLower(req.Symbol)
	}

	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true", s.BaseURL, coinID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HttpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: coingecko http %d", ErrNotFound, resp.StatusCode)
	}

	// the response is keyed by the coin slug, so the outer object has a
	// dynamic key; jsonpath keeps the extraction declarative
	var doc interface{}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	priceVal, err := jsonpath.Get(fmt.Sprintf("$[%q].usd", coinID), doc)
	if err != nil {
		return nil, ErrNotFound
	}
	price, ok := priceVal.(float64)
	if !ok || price <= 0 {
		return nil, ErrNotFound
	}

	var change *decimal.Decimal
	if changeVal, err := jsonpath.Get(fmt.Sprintf("$[%q].usd_24h_change", coinID), doc); err == nil {
		if f, ok := changeVal.(float64); ok {
			d := decimal.NewFromFloat(f)
			change = &d
		}
	}

	return &Quote{
		Symbol:       req.Symbol,
		Price:        decimal.NewFromFloat(price),
		Currency:     "USD",
		CompanyName:  coinID,
		DayChangePct: change,
		Source:       "coingecko",
	}, nil
}
