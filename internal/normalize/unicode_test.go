package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnicode(t *testing.T) {
	t.Run("ascii passes through", func(t *testing.T) {
		assert.Equal(t, "Ramesh Kumar", Unicode("Ramesh Kumar"))
	})

	t.Run("accents stripped", func(t *testing.T) {
		assert.Equal(t, "Jose", Unicode("José"))
		assert.Equal(t, "Francois", Unicode("François"))
	})

	t.Run("devanagari names", func(t *testing.T) {
		assert.Equal(t, "ramesha", Unicode("रमेश"))
		assert.Equal(t, "kumara", Unicode("कुमार"))
		assert.Equal(t, "gandhi", Unicode("गांधी"))
	})

	t.Run("devanagari address terms", func(t *testing.T) {
		assert.Equal(t, "makana", Unicode("मकान"))
		assert.Equal(t, "roda", Unicode("रोड"))
	})

	t.Run("devanagari gender terms", func(t *testing.T) {
		assert.Equal(t, "purusha", Unicode("पुरुष"))
		assert.Equal(t, "mahila", Unicode("महिला"))
		assert.Equal(t, "anya", Unicode("अन्य"))
	})

	t.Run("devanagari digits", func(t *testing.T) {
		assert.Equal(t, "12", Unicode("१२"))
	})

	t.Run("mixed script", func(t *testing.T) {
		assert.Equal(t, "makana 12 Gandhi roda", Unicode("मकान १२ Gandhi रोड"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Unicode(""))
	})
}

func TestTransliterateDevanagari(t *testing.T) {
	t.Run("virama suppresses inherent vowel", func(t *testing.T) {
		// न + virama + य gives "ny", not "naya".
		assert.Equal(t, "anya", transliterateDevanagari("अन्य"))
	})

	t.Run("matra replaces inherent vowel", func(t *testing.T) {
		assert.Equal(t, "kumara", transliterateDevanagari("कुमार"))
	})

	t.Run("anusvara becomes n", func(t *testing.T) {
		assert.Equal(t, "gandhi", transliterateDevanagari("गांधी"))
	})

	t.Run("non devanagari untouched", func(t *testing.T) {
		assert.Equal(t, "abc 123", transliterateDevanagari("abc 123"))
	})

	t.Run("nukta consonants", func(t *testing.T) {
		// Precomposed za (U+095B) and its decomposed form ja + nukta
		// transliterate alike.
		assert.Equal(t, "za", transliterateDevanagari("ज़"))
		assert.Equal(t, "ja", transliterateDevanagari("ज़"))
		assert.Equal(t, "fa", transliterateDevanagari("फ़"))
	})
}
