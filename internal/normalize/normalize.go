// Package normalize canonicalizes raw field values into comparable forms.
// Each comparison kind gets its own pipeline: digits only for phones and
// identifiers, ISO dates for date fields, and a lowercased,
// abbreviation-expanded token form for generic text such as names and
// addresses. Every function degrades to an empty result on garbage input;
// nothing here returns an error or panics.
package normalize

import (
	"strings"
	"unicode"
)

// Kind selects the normalization pipeline for a field.
type Kind string

const (
	KindGeneric Kind = "generic"
	KindPhone   Kind = "phone"
	KindID      Kind = "id"
	KindDate    Kind = "date"
)

// Digits maps native-script decimal digits to ASCII and strips every
// non-digit rune. Used for phone and identifier comparison.
func Digits(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := devanagariDigits[r]; ok {
			r = d
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExpandAbbreviations replaces known shorthand token by token. Tokens not in
// the table pass through with punctuation stripped.
func ExpandAbbreviations(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		clean := stripPunct(w)
		if clean == "" {
			continue
		}
		if exp, ok := abbreviations[clean]; ok {
			out = append(out, exp)
			continue
		}
		out = append(out, clean)
	}
	return strings.Join(out, " ")
}

// RemoveStopwords drops address glue words so they don't dilute
// substantive-token overlap.
func RemoveStopwords(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stopwords[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// Full is the pipeline entry point: unicode-normalize, then branch on kind.
func Full(s string, kind Kind) string {
	if s == "" {
		return ""
	}
	s = Unicode(s)
	switch kind {
	case KindPhone, KindID:
		return Digits(s)
	case KindDate:
		return Date(s)
	}

	// generic text (name / address)
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctToSpace(s)
	s = ExpandAbbreviations(s)
	s = RemoveStopwords(s)
	return strings.Join(strings.Fields(s), " ")
}

// punctToSpace replaces separator punctuation with spaces so glued tokens
// like "B-12/3" split into comparable pieces.
func punctToSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', ';', ':', '!', '?', '-', '(', ')', '"', '\'', '/':
			return ' '
		}
		return r
	}, s)
}

// stripPunct removes every rune that is not a letter or digit.
func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
