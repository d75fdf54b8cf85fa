// Package match implements the per-field similarity scorers of the
// verification engine. Every scorer takes two raw values, normalizes them
// through internal/normalize, and returns a score in [0,1]. Scorers never
// panic and degrade to 0.0 on empty or unparseable input.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio is the normalized indel similarity of two strings: insertions and
// deletions only, substitutions count double. Equivalent to 2*LCS/(len1+len2),
// which matches the classic fuzz.ratio semantics the scoring heuristics were
// tuned against.
func Ratio(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	return float64(2*lcsLength(ra, rb)) / float64(total)
}

// LevenshteinRatio is the unit-cost edit-distance similarity, normalized by
// the longer input.
func LevenshteinRatio(a, b string) float64 {
	if a == "" || b == "" {
		if a == b {
			return 0
		}
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// TokenSortRatio compares the inputs with their tokens sorted, ignoring word
// order entirely.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the sorted token intersection against each side's
// sorted remainder, rewarding full containment of one side in the other.
func TokenSetRatio(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var inter, diffA, diffB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := Ratio(combinedA, combinedB)
	if base != "" {
		if r := Ratio(base, combinedA); r > best {
			best = r
		}
		if r := Ratio(base, combinedB); r > best {
			best = r
		}
	}
	return best
}

// PartialRatio slides the shorter input across the longer and returns the best
// window similarity, tolerating one side being a substring of the other.
func PartialRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == len(rb) {
		return Ratio(string(ra), string(rb))
	}

	best := 0.0
	window := len(ra)
	for i := 0; i+window <= len(rb); i++ {
		r := Ratio(string(ra), string(rb[i:i+window]))
		if r > best {
			best = r
			if best == 1 {
				break
			}
		}
	}
	return best
}

// WRatio is a composite weighted-ratio style metric: the plain ratios for
// similar-length inputs, discounted partial matching when lengths diverge.
func WRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longer, shorter := la, lb
	if shorter > longer {
		longer, shorter = shorter, longer
	}

	best := Ratio(a, b)
	if r := LevenshteinRatio(a, b); r > best {
		best = r
	}

	tokenScale := 0.95
	if r := tokenScale * TokenSortRatio(a, b); r > best {
		best = r
	}
	if r := tokenScale * TokenSetRatio(a, b); r > best {
		best = r
	}

	if float64(longer) >= 1.5*float64(shorter) {
		partialScale := 0.9
		if float64(longer) >= 8*float64(shorter) {
			partialScale = 0.6
		}
		if r := partialScale * PartialRatio(a, b); r > best {
			best = r
		}
	}
	return best
}

// lcsLength computes the longest-common-subsequence length with a two-row DP.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func sortedTokens(s string) string {
	toks := strings.Fields(s)
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}
