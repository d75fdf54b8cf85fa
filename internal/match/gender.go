package match

import (
	"strings"

	"idverify/internal/normalize"
)

// genderBuckets maps known gender terms, including Hindi script and
// transliterated forms, to a canonical bucket.
var genderBuckets = map[string]string{
	"m":       "male",
	"male":    "male",
	"man":     "male",
	"boy":     "male",
	"पुरुष":   "male",
	"purush":  "male",
	"purusha": "male",

	"f":      "female",
	"female": "female",
	"woman":  "female",
	"girl":   "female",
	"महिला":  "female",
	"mahila": "female",
	"स्त्री": "female",
	"stri":   "female",

	"o":           "other",
	"other":       "other",
	"others":      "other",
	"nb":          "other",
	"non-binary":  "other",
	"nonbinary":   "other",
	"transgender": "other",
	"अन्य":        "other",
	"anya":        "other",
}

// GenderScore compares two gender values through canonical buckets. Terms
// outside the synonym table fall back to a case-insensitive exact match.
// Scores are binary.
func GenderScore(a, b string) float64 {
	ca, oka := genderBucket(a)
	cb, okb := genderBucket(b)
	if ca == "" || cb == "" {
		return 0
	}
	if oka && okb {
		if ca == cb {
			return 1
		}
		return 0
	}
	if ca == cb {
		return 1
	}
	return 0
}

// genderBucket canonicalizes a raw gender value. The second return reports
// whether the term was found in the synonym table.
func genderBucket(s string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return "", false
	}
	if bucket, ok := genderBuckets[t]; ok {
		return bucket, true
	}
	// Unknown script goes through transliteration before a second lookup.
	u := strings.ToLower(strings.TrimSpace(normalize.Unicode(t)))
	if bucket, ok := genderBuckets[u]; ok {
		return bucket, true
	}
	return u, false
}
