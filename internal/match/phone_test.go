package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical digits", "9876543210", "9876543210", 1.0},
		{"formatting ignored", "+91-98765 43210", "9876543210", 1.0},
		{"country code ignored", "+919876543210", "09876543210", 1.0},
		{"devanagari digits", "९८७६५४३२१०", "9876543210", 1.0},
		{"nine digit suffix", "9876543210", "876543210", 0.95},
		{"eight digit suffix", "9876543210", "76543210", 0.90},
		{"seven digit suffix", "+91 9876543210", "6543210", 0.85},
		{"six digit suffix", "9876543210", "543210", 0.80},
		// One differing digit over ten national positions; the country code
		// never reaches the digitwise comparison.
		{"digitwise over national numbers", "+91 9876543210", "9876503210", 0.90},
		{"empty side", "", "9876543210", 0.0},
		{"both empty", "", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PhoneScore(tt.a, tt.b), 1e-9)
		})
	}

	t.Run("unrelated numbers score low", func(t *testing.T) {
		assert.Less(t, PhoneScore("9876543210", "1234509876"), 0.60)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, PhoneScore("98765", "43210"), PhoneScore("43210", "98765"))
	})
}

func TestDigitwiseScore(t *testing.T) {
	t.Run("single digit difference", func(t *testing.T) {
		// One mismatched position over ten.
		assert.InDelta(t, 0.9, digitwiseScore("9876543210", "9876543211"), 1e-9)
	})

	t.Run("length difference counts as mismatch", func(t *testing.T) {
		got := digitwiseScore("12345", "1234")
		assert.Less(t, got, 1.0)
	})

	t.Run("short inputs use floored denominator", func(t *testing.T) {
		// Two differing digits over a floor of six, not two.
		assert.InDelta(t, 1-2.0/6.0, digitwiseScore("12", "34"), 1e-9)
	})

	t.Run("never negative", func(t *testing.T) {
		assert.Equal(t, 0.0, digitwiseScore("111111", "999999999999"))
	})
}
