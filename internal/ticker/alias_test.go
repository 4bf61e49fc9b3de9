package ticker

import (
	"testing"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/util"

	"github.com/stretchr/testify/require"
)

func identity(symbol, name string, isin *string, aliasOf *string) model.TickerIdentity {
	return model.TickerIdentity{
		Symbol:      symbol,
		CompanyName: name,
		Isin:        isin,
		AliasOf:     aliasOf,
	}
}

func TestSameInstrument(t *testing.T) {
	t.Run("shared isin", func(t *testing.T) {
		isin := util.StringPtr("US0378331005")
		a := identity("AAPL", "Apple Inc.", isin, nil)
		b := identity("APC.DE", "Totally Different Words", isin, nil)
		require.True(t, SameInstrument(a, b))
	})

	t.Run("empty isin does not match", func(t *testing.T) {
		empty := util.StringPtr("")
		a := identity("A", "First Company", empty, nil)
		b := identity("B", "Second Company", empty, nil)
		require.False(t, SameInstrument(a, b))
	})

	t.Run("exact normalized names", func(t *testing.T) {
		a := identity("AAPL", "Apple Inc.", nil, nil)
		b := identity("APC", "APPLE INC", nil, nil)
		require.True(t, SameInstrument(a, b))
	})

	t.Run("containment below merge bar rejected", func(t *testing.T) {
		a := identity("V", "Vanguard", nil, nil)
		b := identity("VWRL", "Vanguard FTSE All-World UCITS ETF", nil, nil)
		require.False(t, SameInstrument(a, b))
	})
}

func TestDetectAlias(t *testing.T) {
	known := []model.TickerIdentity{
		identity("AAPL", "Apple Inc.", nil, nil),
		identity("MSFT", "Microsoft Corporation", nil, nil),
	}

	t.Run("detects same instrument under new symbol", func(t *testing.T) {
		candidate := identity("APC.F", "Apple Inc", nil, nil)
		require.Equal(t, "AAPL", DetectAlias(candidate, known))
	})

	t.Run("new instrument yields no alias", func(t *testing.T) {
		candidate := identity("NVDA", "NVIDIA Corporation", nil, nil)
		require.Equal(t, "", DetectAlias(candidate, known))
	})

	t.Run("match against an alias resolves to its root", func(t *testing.T) {
		withAlias := append(known, identity("APC.F", "Apple Inc", nil, util.StringPtr("AAPL")))
		candidate := identity("APC.DE", "Apple Inc.", nil, nil)
		require.Equal(t, "AAPL", DetectAlias(candidate, withAlias))
	})
}

func TestResolveCanonical(t *testing.T) {
	identities := []model.TickerIdentity{
		identity("AAPL", "Apple Inc.", nil, nil),
		identity("APC.F", "Apple Inc", nil, util.StringPtr("AAPL")),
	}

	t.Run("canonical resolves to itself", func(t *testing.T) {
		require.Equal(t, "AAPL", ResolveCanonical(identities, "AAPL"))
	})

	t.Run("alias resolves to root", func(t *testing.T) {
		require.Equal(t, "AAPL", ResolveCanonical(identities, "APC.F"))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := ResolveCanonical(identities, "APC.F")
		second := ResolveCanonical(identities, first)
		require.Equal(t, first, second)
	})

	t.Run("unknown symbol resolves to itself", func(t *testing.T) {
		require.Equal(t, "XXX", ResolveCanonical(identities, "XXX"))
	})

	t.Run("cycle breaks at entry point", func(t *testing.T) {
		cyclic := []model.TickerIdentity{
			identity("A", "One", nil, util.StringPtr("B")),
			identity("B", "Two", nil, util.StringPtr("A")),
		}
		require.Equal(t, "A", ResolveCanonical(cyclic, "A"))
	})
}
