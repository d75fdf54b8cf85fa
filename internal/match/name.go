package match

import (
	"sort"
	"strings"

	"idverify/internal/normalize"
)

// Score floors applied by the structural name heuristics. Floors only ever
// raise a base similarity, never lower it.
const (
	floorReordered     = 0.95
	floorTruncatedLast = 0.87
	floorInitialMatch  = 0.87
	floorMiddleInitial = 0.90
)

// NameScore compares two person names. The base score is the best of the
// edit-distance, token-sort and partial ratios over the normalized values,
// then raised to structural floors for common OCR and entry patterns:
// reordered tokens, a truncated last name, an initial in place of a full
// name, and a matching middle initial.
func NameScore(a, b string) float64 {
	na := normalize.Full(a, normalize.KindGeneric)
	nb := normalize.Full(b, normalize.KindGeneric)
	if na == "" || nb == "" {
		return 0
	}

	score := Ratio(na, nb)
	if r := TokenSortRatio(na, nb); r > score {
		score = r
	}
	if r := PartialRatio(na, nb); r > score {
		score = r
	}

	ta := strings.Fields(na)
	tb := strings.Fields(nb)

	if sameTokenMultiset(ta, tb) {
		score = raiseTo(score, floorReordered)
	}
	if truncatedLastName(ta, tb) || truncatedLastName(tb, ta) {
		score = raiseTo(score, floorTruncatedLast)
	}
	if initialForName(ta, tb) {
		score = raiseTo(score, floorInitialMatch)
	}
	if middleInitialMatch(ta, tb) {
		score = raiseTo(score, floorMiddleInitial)
	}
	if twoTokenReversal(ta, tb) {
		score = raiseTo(score, floorReordered)
	}
	return clamp01(score)
}

// sameTokenMultiset reports whether both names contain exactly the same
// tokens, counting duplicates.
func sameTokenMultiset(a, b []string) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// truncatedLastName matches when long has exactly one more token than short,
// all leading tokens align, and short's final token is a prefix of long's.
func truncatedLastName(short, long []string) bool {
	n := len(short)
	if n == 0 || len(long) != n+1 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if short[i] != long[i] {
			return false
		}
	}
	last := short[n-1]
	return last != "" && strings.HasPrefix(long[n], last)
}

// initialForName matches two-token names whose first tokens agree and whose
// second tokens are an initial and the full name it abbreviates.
func initialForName(a, b []string) bool {
	if len(a) != 2 || len(b) != 2 || a[0] != b[0] {
		return false
	}
	return isInitialOf(a[1], b[1]) || isInitialOf(b[1], a[1])
}

// middleInitialMatch matches three-token names with identical first and last
// tokens whose middle tokens share a first letter.
func middleInitialMatch(a, b []string) bool {
	if len(a) != 3 || len(b) != 3 {
		return false
	}
	if a[0] != b[0] || a[2] != b[2] {
		return false
	}
	return a[1] != "" && b[1] != "" && a[1][:1] == b[1][:1]
}

// twoTokenReversal matches "first last" against "last first" exactly.
func twoTokenReversal(a, b []string) bool {
	return len(a) == 2 && len(b) == 2 && a[0] == b[1] && a[1] == b[0]
}

func isInitialOf(initial, full string) bool {
	return len(initial) == 1 && len(full) > 1 && strings.HasPrefix(full, initial)
}

func raiseTo(score, floor float64) float64 {
	if floor > score {
		return floor
	}
	return score
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
