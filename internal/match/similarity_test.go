package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings score one", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("ramesh kumar", "ramesh kumar"))
	})

	t.Run("empty strings score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("", ""))
		assert.Equal(t, 0.0, Ratio("ramesh", ""))
	})

	t.Run("trailing vowels cost little", func(t *testing.T) {
		// 2*12/(14+12) with two deleted runes.
		assert.InDelta(t, 0.923, Ratio("ramesha kumara", "ramesh kumar"), 0.001)
	})

	t.Run("disjoint strings score low", func(t *testing.T) {
		assert.Less(t, Ratio("ramesh", "pooja"), 0.5)
	})
}

func TestLevenshteinRatio(t *testing.T) {
	assert.Equal(t, 1.0, LevenshteinRatio("gandhi", "gandhi"))
	assert.InDelta(t, 0.857, LevenshteinRatio("ramesha", "ramesh"), 0.001)
	assert.Equal(t, 0.0, LevenshteinRatio("", "gandhi"))
}

func TestTokenSortRatio(t *testing.T) {
	t.Run("reordered tokens score one", func(t *testing.T) {
		assert.Equal(t, 1.0, TokenSortRatio("kumar ramesh", "ramesh kumar"))
	})

	t.Run("near tokens keep high score", func(t *testing.T) {
		got := TokenSortRatio("kumara ramesha", "ramesh kumar")
		assert.Greater(t, got, 0.9)
	})
}

func TestTokenSetRatio(t *testing.T) {
	t.Run("subset containment scores high", func(t *testing.T) {
		got := TokenSetRatio("gandhi street mg road", "house 12 gandhi street mg road")
		assert.GreaterOrEqual(t, got, 0.9)
	})

	t.Run("empty side scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, TokenSetRatio("", "gandhi street"))
	})
}

func TestPartialRatio(t *testing.T) {
	t.Run("exact substring scores one", func(t *testing.T) {
		assert.Equal(t, 1.0, PartialRatio("gandhi", "mahatma gandhi road"))
	})

	t.Run("equal lengths fall back to ratio", func(t *testing.T) {
		assert.Equal(t, Ratio("abcd", "abcx"), PartialRatio("abcd", "abcx"))
	})
}

func TestWRatio(t *testing.T) {
	t.Run("bounded to unit interval", func(t *testing.T) {
		pairs := [][2]string{
			{"ramesh kumar", "kumar ramesh"},
			{"12 gandhi street", "flat 12 gandhi street near mg road pune"},
			{"a", "completely different value"},
		}
		for _, p := range pairs {
			got := WRatio(p[0], p[1])
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	})

	t.Run("never below plain ratio", func(t *testing.T) {
		a, b := "gandhi street pune", "pune gandhi street"
		assert.GreaterOrEqual(t, WRatio(a, b), Ratio(a, b))
	})
}
