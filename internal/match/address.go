package match

import (
	"strings"

	"idverify/internal/normalize"
)

const (
	addressStrongMatch = 0.90
	coverageFloor      = 0.50
	numericBonusPer    = 0.02
	numericBonusCap    = 0.05
	jaccardBonusCap    = 0.05
	totalBonusCap      = 0.08
)

// AddressScore compares two postal addresses. Both sides go through the full
// normalization pipeline (abbreviation expansion, stopword removal), then the
// best of the token and window ratios is taken. The raw score is scaled by
// token coverage to penalize one side containing far more information than
// the other, and small bonuses reward shared house or plot numbers and
// overall token overlap.
func AddressScore(a, b string) float64 {
	na := normalize.Full(a, normalize.KindGeneric)
	nb := normalize.Full(b, normalize.KindGeneric)
	if na == "" || nb == "" {
		return 0
	}

	raw := TokenSortRatio(na, nb)
	if r := TokenSetRatio(na, nb); r > raw {
		raw = r
	}
	if r := WRatio(na, nb); r > raw {
		raw = r
	}
	if r := PartialRatio(na, nb); r > raw {
		raw = r
	}

	ta := strings.Fields(na)
	tb := strings.Fields(nb)
	score := raw * tokenCoverage(ta, tb, raw)

	score += addressBonus(ta, tb)
	return clamp01(score)
}

// tokenCoverage is the shared-token fraction over the larger side. A strong
// raw match waives the penalty entirely and weak coverage is floored so a
// genuinely similar pair is never crushed to near zero.
func tokenCoverage(a, b []string, raw float64) float64 {
	if raw >= addressStrongMatch {
		return 1
	}
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return coverageFloor
	}
	cov := float64(sharedCount(a, b)) / float64(larger)
	if cov < coverageFloor {
		return coverageFloor
	}
	return cov
}

// addressBonus rewards shared bare numbers (house, plot, pin fragments) and
// general token overlap. The combined bonus is capped.
func addressBonus(a, b []string) float64 {
	bonus := 0.0

	shared := sharedNumericCount(a, b)
	if shared > 0 {
		nb := numericBonusPer * float64(shared)
		if nb > numericBonusCap {
			nb = numericBonusCap
		}
		bonus += nb
	}

	if jacc := jaccard(a, b); jacc > 0 {
		jb := jaccardBonusCap * jacc
		if jb > jaccardBonusCap {
			jb = jaccardBonusCap
		}
		bonus += jb
	}

	if bonus > totalBonusCap {
		bonus = totalBonusCap
	}
	return bonus
}

func sharedCount(a, b []string) int {
	sb := tokenSliceSet(b)
	n := 0
	for tok := range tokenSliceSet(a) {
		if _, ok := sb[tok]; ok {
			n++
		}
	}
	return n
}

func sharedNumericCount(a, b []string) int {
	sb := make(map[string]struct{})
	for _, tok := range b {
		if isAllDigits(tok) {
			sb[tok] = struct{}{}
		}
	}
	seen := make(map[string]struct{})
	n := 0
	for _, tok := range a {
		if !isAllDigits(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := sb[tok]; ok {
			n++
		}
	}
	return n
}

func jaccard(a, b []string) float64 {
	sa := tokenSliceSet(a)
	sb := tokenSliceSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for tok := range sa {
		if _, ok := sb[tok]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func tokenSliceSet(toks []string) map[string]struct{} {
	set := make(map[string]struct{}, len(toks))
	for _, tok := range toks {
		set[tok] = struct{}{}
	}
	return set
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
