package normalize

import (
	"strings"
	"time"
)

// dateLayouts is the fixed ordered list of accepted date formats.
// Day-first numeric forms come before year-first so ambiguous short dates
// resolve the way the source data writes them. Separators are unified to "-"
// before matching, so 19/04/2001 and 19.04.2001 hit the same layout.
var dateLayouts = []string{
	"2-1-2006",
	"2-1-06",
	"2006-1-2",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts the fixed layout list, then a numeric-token heuristic:
// split on separators, and if exactly three numeric tokens remain, try
// (day,month,year), (month,day,year) and (year,month,day) orderings as
// calendar dates. The boolean is false when nothing parses.
func ParseDate(s string) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	cleaned := cleanDateInput(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}

	// Heuristic: collect pure-numeric parts.
	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '-' || r == ' ' || r == ':'
	})
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, ok := atoiStrict(p)
		if !ok {
			continue
		}
		nums = append(nums, n)
	}
	if len(nums) != 3 {
		return time.Time{}, false
	}
	// dd-mm-yyyy first, then mm-dd-yyyy for day values over twelve,
	// then yyyy-mm-dd.
	candidates := [][3]int{
		{nums[2], nums[1], nums[0]},
		{nums[2], nums[0], nums[1]},
		{nums[0], nums[1], nums[2]},
	}
	for _, c := range candidates {
		year := c[0]
		if year < 100 {
			// Same pivot the two-digit layouts use.
			if year >= 69 {
				year += 1900
			} else {
				year += 2000
			}
		}
		if t, ok := calendarDate(year, c[1], c[2]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date returns the ISO YYYY-MM-DD form of s, or "" when it cannot be parsed.
func Date(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// cleanDateInput unifies separators to "-" and drops punctuation that the
// layouts never contain.
func cleanDateInput(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '.' || r == '/':
			b.WriteRune('-')
		case r == '-' || r == ' ' || r == ':' || r == ',':
			b.WriteRune(r)
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// calendarDate validates the components as a real calendar date.
// time.Date normalizes overflow (Feb 30 -> Mar 2), so round-trip the
// components to reject invalid combinations.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoiStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 99999999 {
			return 0, false
		}
	}
	return n, true
}
