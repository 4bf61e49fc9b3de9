package prices

import (
	"context"
	"errors"

	"folio/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// ErrNotFound means a source has nothing for the requested symbol. Source
// adapters convert timeouts and malformed responses into ErrNotFound so a
// single flaky provider never aborts the fallback chain.
var ErrNotFound = errors.New("prices: not found")

// Request identifies what a source should price.
type Request struct {
	Symbol string
	// Currency is the target currency hint used to pick exchange
	// candidates on secondary sources.
	Currency string
	Kind     model.ProductType
}

// Quote is one successful fetch before validation and persistence.
type Quote struct {
	Symbol       string
	Price        decimal.Decimal
	Currency     string
	CompanyName  string
	Exchange     string
	DayChangePct *decimal.Decimal
	Source       string
}

// Source is one external quote provider. Fetch returns ErrNotFound when the
// provider has no answer for the request; any other error is treated the
// same way by the pipeline but is worth logging separately.
type Source interface {
	Name() string
	Fetch(ctx context.Context, req Request) (*Quote, error)
}
