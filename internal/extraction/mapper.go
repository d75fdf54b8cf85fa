// Package extraction maps raw OCR text onto labeled identity fields. It
// consumes text only; running OCR against images is out of scope.
package extraction

import (
	"regexp"
	"strings"
)

// ExpectedFields is the canonical field list a complete document yields, in
// reporting order.
var ExpectedFields = []string{"name", "age", "dob", "gender", "address", "phone", "email"}

// fieldPatterns holds the label patterns per field, tried in order. The
// first match wins so more specific labels come first.
var fieldPatterns = map[string][]*regexp.Regexp{
	"name": {
		regexp.MustCompile(`(?i)Full Name[:\s]*([^\n]+)`),
		regexp.MustCompile(`(?i)First name[:\s]*([^\n]+)`),
		regexp.MustCompile(`(?i)Name[:\s]*([^\n]+)`),
	},
	"age": {
		regexp.MustCompile(`(?i)Age[:\s]*(\d+)`),
	},
	"dob": {
		regexp.MustCompile(`(?i)Date of Birth[:\s]*([\d/.-]+)`),
		regexp.MustCompile(`(?i)DOB[:\s]*([\d/.-]+)`),
		regexp.MustCompile(`(?i)Birth Date[:\s]*([\d/.-]+)`),
	},
	"gender": {
		regexp.MustCompile(`(?i)Gender[:\s]*([^\n]+)`),
		regexp.MustCompile(`(?i)Sex[:\s]*([^\n]+)`),
	},
	"address": {
		regexp.MustCompile(`(?i)Address[:\s]*([^\n]+)`),
		regexp.MustCompile(`(?i)Addr[:\s]*([^\n]+)`),
	},
	"phone": {
		regexp.MustCompile(`(?i)Phone[:\s]*([+\d\s\-()]+)`),
		regexp.MustCompile(`(?i)Mobile[:\s]*([+\d\s\-()]+)`),
		regexp.MustCompile(`(?i)Contact[:\s]*([+\d\s\-()]+)`),
	},
	"email": {
		regexp.MustCompile(`(?i)Email[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
		regexp.MustCompile(`(?i)Email Id[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
	},
}

var phoneSeparators = regexp.MustCompile(`[\s()-]`)

// ExtractFields scans labeled OCR text and returns the fields it can find.
// Fields without a matching label are absent from the result, never empty.
func ExtractFields(rawText string) map[string]string {
	extracted := make(map[string]string)
	for _, field := range ExpectedFields {
		for _, pattern := range fieldPatterns[field] {
			m := pattern.FindStringSubmatch(rawText)
			if m == nil {
				continue
			}
			value := cleanField(field, m[1])
			if value != "" {
				extracted[field] = value
			}
			break
		}
	}
	return extracted
}

// MissingFields reports which expected fields the extraction did not find.
func MissingFields(extracted map[string]string) []string {
	var missing []string
	for _, field := range ExpectedFields {
		if _, ok := extracted[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// cleanField applies per-field cleanup: phones lose separators, emails are
// lowercased, everything is trimmed.
func cleanField(field, raw string) string {
	raw = strings.TrimSpace(raw)
	switch field {
	case "phone":
		return phoneSeparators.ReplaceAllString(raw, "")
	case "email":
		return strings.ToLower(raw)
	}
	return raw
}
