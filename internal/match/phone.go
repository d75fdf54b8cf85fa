package match

import (
	"strings"

	"idverify/internal/normalize"
)

// nsnLength is the national significant number length assumed when splitting
// off a country code.
const nsnLength = 10

// suffixTiers maps the length of a matching trailing digit run to its score,
// checked longest first.
var suffixTiers = []struct {
	length int
	score  float64
}{
	{9, 0.95},
	{8, 0.90},
	{7, 0.85},
	{6, 0.80},
}

// PhoneScore compares two phone numbers on their digits alone. Country codes
// and formatting are ignored: equal national numbers score 1.0, long shared
// suffixes score by tier, and anything else falls back to a positionwise
// digit comparison.
func PhoneScore(a, b string) float64 {
	da := normalize.Digits(a)
	db := normalize.Digits(b)
	if da == "" || db == "" {
		return 0
	}
	if da == db {
		return 1
	}

	na := nationalNumber(da)
	nb := nationalNumber(db)
	if na != "" && na == nb {
		return 1
	}

	for _, tier := range suffixTiers {
		if len(da) >= tier.length && len(db) >= tier.length &&
			da[len(da)-tier.length:] == db[len(db)-tier.length:] {
			return tier.score
		}
	}

	return digitwiseScore(na, nb)
}

// nationalNumber strips a leading country code by keeping the trailing ten
// digits. Shorter inputs are returned unchanged.
func nationalNumber(digits string) string {
	if len(digits) <= nsnLength {
		return digits
	}
	return digits[len(digits)-nsnLength:]
}

// digitwiseScore right-aligns both numbers with zero padding and scores by
// the fraction of agreeing positions, counting the length difference as
// mismatches. The denominator is floored so very short inputs cannot score
// spuriously high.
func digitwiseScore(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	lenDiff := maxLen - len(a) + maxLen - len(b)

	pa := zeroPad(a, maxLen)
	pb := zeroPad(b, maxLen)
	diff := lenDiff
	for i := 0; i < maxLen; i++ {
		if pa[i] != pb[i] {
			diff++
		}
	}

	denom := maxLen
	if denom < 6 {
		denom = 6
	}
	score := 1 - float64(diff)/float64(denom)
	if score < 0 {
		return 0
	}
	return score
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
