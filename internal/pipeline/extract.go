package pipeline

import (
	"regexp"
	"strconv"

	"possales/internal/util"
)

var (
	sizePattern        = regexp.MustCompile(`(?i)(Solo|Duo|Medio|Familia)`)
	variationPattern   = regexp.MustCompile(`(?i)(Hot|Cold)`)
	friesFamilyPattern = regexp.MustCompile(`(?i)(Fries|Lemonade)`)
	friesFlavorPattern = regexp.MustCompile(`(?i)(Cheese|BBQ|Sour Cream|Plain|Mango)`)
	sugarPattern       = regexp.MustCompile(`(?i)(Sugar 20%|Sugar 50%|Sugar 75%|Sugar 100%)`)
	spicePattern       = regexp.MustCompile(`(?i)(Mild \(1/4\)|Regular \(2/4\)|Spicy \(3/4\))`)
	// The POS writes quantity markers with a lowercase x ("Latte x3").
	qtyPattern = regexp.MustCompile(`x\s*(\d+)`)
)

// Attributes are the modifiers embedded in one product token. A token may
// carry several at once; the searches are independent and a miss leaves the
// field nil. Quantity defaults to 1, never zero or nil.
type Attributes struct {
	Size       *string
	Variation  *string
	Flavor     *string
	SugarLevel *string
	SpiceLevel *string
	Quantity   float64
}

func ExtractAttributes(token string) Attributes {
	attrs := Attributes{Quantity: 1}
	attrs.Size = extractTitled(sizePattern, token)
	attrs.Variation = extractTitled(variationPattern, token)
	// Flavor here only applies to the fries/lemonade lines; pastry flavors
	// are part of the canonical item name instead.
	if friesFamilyPattern.MatchString(token) {
		attrs.Flavor = extractTitled(friesFlavorPattern, token)
	}
	attrs.SugarLevel = extractTitled(sugarPattern, token)
	attrs.SpiceLevel = extractTitled(spicePattern, token)
	if m := qtyPattern.FindStringSubmatch(token); m != nil {
		if qty, err := strconv.ParseFloat(m[1], 64); err == nil && qty > 0 {
			attrs.Quantity = qty
		}
	}
	return attrs
}

func extractTitled(re *regexp.Regexp, token string) *string {
	m := re.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	return util.StringPtr(util.Title(m[1]))
}
