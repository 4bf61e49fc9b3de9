package ticker

import (
	"folio/internal/db/models/postgres/public/model"
)

const (
	// MergeThreshold is the similarity bar for auto-merging two identities
	// during ingestion. Merging is destructive for the ledger view, so the
	// bar is high.
	MergeThreshold = 0.85

	// ValidateThreshold is the floor below which a fetched quote is
	// rejected as belonging to the wrong company. Rejecting a fetch is
	// cheap, so the bar is low.
	ValidateThreshold = 0.40
)

// SameInstrument reports whether two identities describe one economic
// instrument: shared non-empty ISIN, exact normalized name equality, or
// containment with similarity at or above MergeThreshold.
func SameInstrument(a, b model.TickerIdentity) bool {
	if a.Isin != nil && b.Isin != nil && *a.Isin != "" && *a.Isin == *b.Isin {
		return true
	}
	na := Normalize(a.CompanyName)
	nb := Normalize(b.CompanyName)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return NameMatches(a.CompanyName, b.CompanyName, MergeThreshold)
}

// DetectAlias scans known identities for one that matches the candidate and
// returns the canonical symbol the candidate should alias, or "" when the
// candidate is genuinely new. Identities that are themselves aliases are
// resolved to their root first, so a detected alias always points at a
// canonical symbol in one hop.
func DetectAlias(candidate model.TickerIdentity, known []model.TickerIdentity) string {
	index := make(map[string]model.TickerIdentity, len(known))
	for _, id := range known {
		index[id.Symbol] = id
	}
	for _, id := range known {
		if id.Symbol == candidate.Symbol {
			continue
		}
		if SameInstrument(candidate, id) {
			return resolve(index, id.Symbol)
		}
	}
	return ""
}

// ResolveCanonical follows the alias pointer of symbol to its root.
// Resolving an already-canonical symbol returns the symbol itself, and
// resolution is idempotent: the result never has an alias pointer of its
// own.
func ResolveCanonical(identities []model.TickerIdentity, symbol string) string {
	index := make(map[string]model.TickerIdentity, len(identities))
	for _, id := range identities {
		index[id.Symbol] = id
	}
	return resolve(index, symbol)
}

func resolve(index map[string]model.TickerIdentity, symbol string) string {
	seen := map[string]bool{}
	current := symbol
	for {
		if seen[current] {
			// defensive break on a cyclic mapping; treat the entry
			// point as canonical
			return symbol
		}
		seen[current] = true
		id, ok := index[current]
		if !ok || id.AliasOf == nil || *id.AliasOf == "" || *id.AliasOf == current {
			return current
		}
		current = *id.AliasOf
	}
}
