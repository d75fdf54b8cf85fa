package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	// Every digit survives, country code included; phone scoring strips the
	// country code itself.
	assert.Equal(t, "919876543210", Digits("+91 98765-43210"))
	assert.Equal(t, "9876543210", Digits("९८७६५४३२१०"))
	assert.Equal(t, "12", Digits("house 12"))
	assert.Equal(t, "", Digits("no digits here"))
	assert.Equal(t, "", Digits(""))
}

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"street suffix", "gandhi st", "gandhi street"},
		{"road suffix", "mg rd", "mg road"},
		{"house number", "hno 12", "house number 12"},
		{"transliterated house", "makan 12", "house 12"},
		{"transliterated road", "gandhi roda", "gandhi road"},
		{"unknown tokens untouched", "gandhi colony", "gandhi colony"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandAbbreviations(tt.in))
		})
	}
}

func TestRemoveStopwords(t *testing.T) {
	assert.Equal(t, "mg road", RemoveStopwords("near mg road"))
	assert.Equal(t, "temple gandhi street", RemoveStopwords("behind the temple gandhi street"))
	assert.Equal(t, "pune", RemoveStopwords("pune india"))
	assert.Equal(t, "", RemoveStopwords("near the"))
}

func TestFull(t *testing.T) {
	t.Run("generic lowercases and collapses", func(t *testing.T) {
		assert.Equal(t, "ramesh kumar", Full("  Ramesh   KUMAR  ", KindGeneric))
	})

	t.Run("generic strips punctuation", func(t *testing.T) {
		assert.Equal(t, "flat number b 12 3 gandhi street mg road",
			Full("Flat No. B-12/3, Gandhi St. (Near MG Road)", KindGeneric))
	})

	t.Run("phone keeps digits only", func(t *testing.T) {
		assert.Equal(t, "919876543210", Full("+91 98765 43210", KindPhone))
	})

	t.Run("id keeps digits only", func(t *testing.T) {
		assert.Equal(t, "123456789012", Full("1234-5678-9012", KindID))
	})

	t.Run("date canonicalizes to iso", func(t *testing.T) {
		assert.Equal(t, "2001-04-19", Full("19/04/2001", KindDate))
	})

	t.Run("unparseable date empty", func(t *testing.T) {
		assert.Equal(t, "", Full("not a date", KindDate))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Full("", KindGeneric))
	})

	t.Run("hindi address transliterated and expanded", func(t *testing.T) {
		assert.Equal(t, "house 12 gandhi road", Full("मकान १२ गांधी रोड", KindGeneric))
	})
}
