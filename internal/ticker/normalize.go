package ticker

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// legal-entity suffixes and share-class markers that carry no identity
// information. kept as a fixed table so two listings of the same company
// ("Apple Inc." vs "APPLE INC") normalize to one comparable key.
var legalSuffixes = map[string]bool{
	"inc":          true,
	"incorporated": true,
	"corp":         true,
	"corporation":  true,
	"co":           true,
	"company":      true,
	"ag":           true,
	"se":           true,
	"plc":          true,
	"ltd":          true,
	"limited":      true,
	"sa":           true,
	"nv":           true,
	"asa":          true,
	"oyj":          true,
	"ab":           true,
	"spa":          true,
	"gmbh":         true,
	"adr":          true,
}

// share-class markers, e.g. "Alphabet Inc. Class A" / "Berkshire Hathaway Cl B"
var classMarkers = map[string]bool{
	"class": true,
	"cl":    true,
}

var shareClassLetters = map[string]bool{
	"a": true,
	"b": true,
	"c": true,
}

// Normalize reduces a company name to a comparable key: lower-case,
// punctuation stripped, whitespace collapsed, legal suffixes and
// share-class markers removed.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if legalSuffixes[tok] {
			continue
		}
		if classMarkers[tok] {
			// swallow the class letter that follows, if any
			if i+1 < len(tokens) && shareClassLetters[tokens[i+1]] {
				i++
			}
			continue
		}
		out = append(out, tok)
	}

	return strings.Join(out, " ")
}

// Similarity is a character-level ratio between two normalized keys,
// 1.0 for identical strings, 0.0 for fully dissimilar.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// NameMatches reports whether a fetched company name is plausibly the same
// company as the known one: exact normalized equality, or containment of
// one normalized key in the other with a similarity ratio at or above
// threshold.
func NameMatches(known, fetched string, threshold float64) bool {
	nk := Normalize(known)
	nf := Normalize(fetched)
	if nk == "" || nf == "" {
		return false
	}
	if nk == nf {
		return true
	}
	if !strings.Contains(nk, nf) && !strings.Contains(nf, nk) {
		return false
	}
	return Similarity(nk, nf) >= threshold
}
