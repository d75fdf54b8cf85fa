package match

import (
	"idverify/internal/normalize"
)

// DOBScore compares two dates of birth. When both sides parse as calendar
// dates the comparison is exact on the ISO form. Otherwise the raw digits are
// coerced to a canonical ddmmyyyy form and compared exactly. Dates either
// match or they do not, there is no partial credit.
func DOBScore(a, b string) float64 {
	da := normalize.Date(a)
	db := normalize.Date(b)
	if da != "" && db != "" && da == db {
		return 1
	}

	ca := canonicalDigits(a)
	cb := canonicalDigits(b)
	if ca != "" && ca == cb {
		return 1
	}
	return 0
}

// canonicalDigits coerces a date's digit string toward ddmmyyyy: a six-digit
// ddmmyy form gets the century prefixed to its year, a seven-digit form gets
// a leading zero restored.
func canonicalDigits(s string) string {
	digits := normalize.Digits(s)
	switch len(digits) {
	case 6:
		return digits[:4] + "20" + digits[4:]
	case 7:
		return "0" + digits
	default:
		return digits
	}
}
