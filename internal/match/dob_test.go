package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOBScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"same iso date", "2001-04-19", "2001-04-19", 1.0},
		{"separator variants", "19/04/2001", "19-04-2001", 1.0},
		{"month name form", "19 Apr 2001", "19-04-2001", 1.0},
		{"iso against dmy", "2001-04-19", "19/04/2001", 1.0},
		{"two digit year", "19-04-01", "19/04/2001", 1.0},
		{"six digit fallback", "190401", "19042001", 1.0},
		{"seven digit fallback", "1902001", "01902001", 1.0},
		{"different day", "19-04-2001", "18-04-2001", 0.0},
		{"different year", "19-04-2001", "19-04-2002", 0.0},
		{"swapped day month differs", "04-19-2001", "19-04-2001", 1.0},
		{"garbage input", "not a date", "19-04-2001", 0.0},
		{"empty sides", "", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DOBScore(tt.a, tt.b))
		})
	}
}

func TestCanonicalDigits(t *testing.T) {
	assert.Equal(t, "19042001", canonicalDigits("19-04-01"))
	assert.Equal(t, "01902001", canonicalDigits("1902001"))
	assert.Equal(t, "19042001", canonicalDigits("19042001"))
	assert.Equal(t, "", canonicalDigits("no digits"))
}
