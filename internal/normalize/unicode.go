package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes, removes combining marks (accents) and control
// characters, then recomposes. Devanagari is transliterated before this runs,
// so the mark removal only ever touches Latin diacritics.
var stripMarks = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.In(unicode.C)),
	norm.NFC,
)

// Unicode canonicalizes a raw string for comparison: Devanagari is
// transliterated to a Latin approximation (including native digits), accents
// and control characters are stripped. Non-Latin input is transliterated, not
// deleted, so no semantic token silently disappears.
func Unicode(s string) string {
	if s == "" {
		return ""
	}
	s = transliterateDevanagari(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// transliterateDevanagari renders Devanagari text as Latin. Consonants carry
// an inherent "a" unless followed by a vowel sign (which replaces it) or a
// virama (which suppresses it). Anusvara and candrabindu become "n"; the
// nukta is dropped. Long vowels collapse to their short form so the output
// lines up with common romanizations.
func transliterateDevanagari(s string) string {
	if !strings.ContainsFunc(s, isDevanagari) {
		return s
	}

	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if !isDevanagari(r) {
			b.WriteRune(r)
			continue
		}

		if d, ok := devanagariDigits[r]; ok {
			b.WriteRune(d)
			continue
		}
		if v, ok := devanagariVowels[r]; ok {
			b.WriteString(v)
			continue
		}
		switch r {
		case devanagariAnusvara, devanagariChandra:
			b.WriteString("n")
			continue
		case devanagariVisarga:
			b.WriteString("h")
			continue
		case devanagariVirama, devanagariNukta:
			continue
		}

		c, ok := devanagariConsonants[r]
		if !ok {
			// Unknown sign (rare vedic marks): drop rather than leak raw bytes.
			continue
		}
		b.WriteString(c)

		// Decide the vowel that follows the consonant.
		if i+1 < len(rs) {
			next := rs[i+1]
			if next == devanagariNukta && i+2 < len(rs) {
				i++
				next = rs[i+1]
			}
			if m, ok := devanagariMatras[next]; ok {
				b.WriteString(m)
				i++
				continue
			}
			if next == devanagariVirama {
				i++
				continue
			}
		}
		b.WriteString("a")
	}
	return b.String()
}
