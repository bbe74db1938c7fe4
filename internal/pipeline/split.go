package pipeline

import "strings"

// SplitProducts splits one order's raw product-list text into individual
// product tokens: comma-separated, trimmed, empties dropped. Token order
// follows the source text.
func SplitProducts(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
