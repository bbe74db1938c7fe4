package util

import (
	"strconv"
	"strings"
)

// ParseAmount coerces formatted monetary text ("1,234.50") to a number.
// Thousands separators are stripped before parsing. Text that does not parse
// yields nil: malformed amounts are routine in free-form exports and must
// not abort a batch.
func ParseAmount(input string) *float64 {
	s := strings.ReplaceAll(input, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return FloatPtr(parsed)
}
