package pipeline

import (
	"regexp"
	"strings"

	"possales/internal/util"
)

// Categories whose tokens are renamed to "<Category> - <Flavor>".
var targetCategoryPattern = regexp.MustCompile(`(?i)(Croissant|Croffle|Cookies|Cookie)`)

// Flavor vocabulary for the target categories. Order matters: longer, more
// specific phrases must precede the shorter phrases they contain so the
// alternation resolves "Chip and Chunk Walnut" before "Chip and Chunk".
var targetFlavors = []string{
	"Chip and Chunk Walnut", "Nutella Pecan Cookie", "Red Velvet Cookie",
	"Smores Cookie", "Almond Nutella", "Biscoff Cookie", "Strawberry Cream",
	"Spam and Egg", "Chip and Chunk", "Biscoff", "Caramel", "Chocolate",
	"Matcha", "Oreo", "Plain", "Smores", "Red Velvet", "Dubai",
}

var (
	targetFlavorPattern = compileAlternation(targetFlavors)
	cookieSuffixPattern = regexp.MustCompile(`(?i)\s*Cookie`)
	qtyMarkerPattern    = regexp.MustCompile(`x\s*\d+`)
	parenSuffixPattern  = regexp.MustCompile(`\s*\(.*\)`)
)

func compileAlternation(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

// NormalizeItemName derives the canonical item name for one product token.
//
// Tokens carrying a target-category keyword become "<Category> - <Flavor>",
// with the flavor spelled as the vocabulary spells it. A target token whose
// flavor is not in the vocabulary keeps the dangling "<Category> - " name on
// purpose, so the gap shows up in review instead of vanishing. Every other
// token is stripped of its quantity marker and parenthesized modifiers;
// source casing is preserved because the lookup tables key on it.
func NormalizeItemName(token string) string {
	if m := targetCategoryPattern.FindStringSubmatch(token); m != nil {
		category := util.Title(m[1])
		if category == "Cookie" {
			category = "Cookies"
		}
		flavor := ""
		if fm := targetFlavorPattern.FindStringSubmatch(token); fm != nil {
			flavor = canonicalFlavor(fm[1])
		}
		return category + " - " + flavor
	}

	name := qtyMarkerPattern.ReplaceAllString(token, "")
	name = parenSuffixPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// canonicalFlavor maps a case-insensitive match back to the vocabulary
// spelling and drops the redundant "Cookie" suffix ("Biscoff Cookie" is the
// Biscoff flavor of the Cookies category).
func canonicalFlavor(matched string) string {
	for _, f := range targetFlavors {
		if strings.EqualFold(f, matched) {
			matched = f
			break
		}
	}
	matched = cookieSuffixPattern.ReplaceAllString(matched, "")
	return strings.TrimSpace(matched)
}

// ApplyCorrections remaps known-inconsistent canonical names by exact match.
func ApplyCorrections(name string, corrections map[string]string) string {
	if fixed, ok := corrections[name]; ok {
		return fixed
	}
	return name
}
