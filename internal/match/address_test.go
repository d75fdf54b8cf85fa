package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressScore(t *testing.T) {
	t.Run("identical addresses score one", func(t *testing.T) {
		got := AddressScore("12 Gandhi Street, Pune", "12 Gandhi Street, Pune")
		assert.Equal(t, 1.0, got)
	})

	t.Run("abbreviations and punctuation ignored", func(t *testing.T) {
		got := AddressScore(
			"Flat No. B-12/3, Gandhi St. (Near MG Road)",
			"B12/3 Gandhi Street MG Road")
		assert.GreaterOrEqual(t, got, 0.90)
	})

	t.Run("hindi address against latin", func(t *testing.T) {
		got := AddressScore("मकान १२ गांधी रोड", "Makan 12 Gandhi Road")
		assert.GreaterOrEqual(t, got, 0.90)
	})

	t.Run("shared house number earns bonus", func(t *testing.T) {
		with := AddressScore("12 Gandhi Street Pune", "12 Gandhi Road Pune")
		without := AddressScore("14 Gandhi Street Pune", "12 Gandhi Road Pune")
		assert.Greater(t, with, without)
	})

	t.Run("sparse side is penalized", func(t *testing.T) {
		got := AddressScore("Gandhi", "House 44 Nehru Colony Sector 9 Delhi")
		assert.Less(t, got, 0.60)
	})

	t.Run("unrelated addresses score low", func(t *testing.T) {
		got := AddressScore("12 Gandhi Street Pune", "77 Marine Drive Mumbai")
		assert.Less(t, got, 0.60)
	})

	t.Run("empty side scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, AddressScore("", "12 Gandhi Street"))
	})

	t.Run("never exceeds one", func(t *testing.T) {
		got := AddressScore("12 12 Gandhi Street", "12 12 Gandhi Street")
		assert.LessOrEqual(t, got, 1.0)
	})
}

func TestTokenCoverage(t *testing.T) {
	t.Run("strong raw match waives penalty", func(t *testing.T) {
		assert.Equal(t, 1.0, tokenCoverage(
			[]string{"gandhi"}, []string{"a", "b", "c", "d"}, 0.95))
	})

	t.Run("weak coverage floored", func(t *testing.T) {
		assert.Equal(t, 0.5, tokenCoverage(
			[]string{"x"}, []string{"a", "b", "c", "d"}, 0.4))
	})

	t.Run("partial overlap measured against larger side", func(t *testing.T) {
		assert.InDelta(t, 0.75, tokenCoverage(
			[]string{"a", "b", "c"}, []string{"a", "b", "c", "d"}, 0.4), 1e-9)
	})
}

func TestSharedNumericCount(t *testing.T) {
	assert.Equal(t, 2, sharedNumericCount(
		[]string{"12", "gandhi", "44"}, []string{"44", "12", "road"}))
	assert.Equal(t, 0, sharedNumericCount(
		[]string{"b12", "gandhi"}, []string{"b12", "road"}))
}
