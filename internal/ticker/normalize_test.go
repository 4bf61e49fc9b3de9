package ticker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "apple", Normalize("Apple Inc."))
	require.Equal(t, "apple", Normalize("APPLE INC"))
	require.Equal(t, "alphabet", Normalize("Alphabet Inc. Class A"))
	require.Equal(t, "berkshire hathaway", Normalize("Berkshire Hathaway Inc. Cl B"))
	require.Equal(t, "volkswagen", Normalize("Volkswagen AG"))
	require.Equal(t, "shell", Normalize("Shell PLC"))
	require.Equal(t, "ceske drahy", Normalize("Ceske  Drahy"))
}

func TestNormalizeCollapsesPunctuationAndWhitespace(t *testing.T) {
	require.Equal(t, "s p global", Normalize("S&P   Global, Inc."))
	require.Equal(t, "", Normalize("Inc. Corp Ltd"))
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("apple", "apple"))
	require.Equal(t, 1.0, Similarity("", ""))
	require.Less(t, Similarity("apple", "microsoft"), 0.4)
	require.Greater(t, Similarity("apple", "apple hospitality"), 0.0)
}

func TestNameMatches(t *testing.T) {
	t.Run("exact normalized equality", func(t *testing.T) {
		require.True(t, NameMatches("Apple Inc.", "APPLE INC", 0.85))
	})

	t.Run("containment above threshold", func(t *testing.T) {
		require.True(t, NameMatches("Vanguard FTSE All-World", "Vanguard FTSE All-World UCITS", 0.40))
	})

	t.Run("containment below threshold rejected", func(t *testing.T) {
		// "go" is contained in the longer name but shares almost no
		// characters with it
		require.False(t, NameMatches("Go", "Goldman Sachs Group", 0.40))
	})

	t.Run("no containment rejected even when similar", func(t *testing.T) {
		require.False(t, NameMatches("Apple Inc.", "Ample Inc.", 0.40))
	})

	t.Run("empty names never match", func(t *testing.T) {
		require.False(t, NameMatches("", "Apple Inc.", 0.40))
		require.False(t, NameMatches("Apple Inc.", "", 0.40))
	})
}
