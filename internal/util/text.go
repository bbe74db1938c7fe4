package util

import "unicode"

// Title upper-cases the first letter of every word and lower-cases the rest,
// treating any non-letter as a word boundary. Matches the casing the POS
// export uses for its own attribute values ("solo" -> "Solo",
// "sugar 100%" -> "Sugar 100%").
func Title(input string) string {
	out := make([]rune, 0, len(input))
	prevLetter := false
	for _, r := range input {
		if unicode.IsLetter(r) {
			if prevLetter {
				out = append(out, unicode.ToLower(r))
			} else {
				out = append(out, unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		out = append(out, r)
		prevLetter = false
	}
	return string(out)
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }
