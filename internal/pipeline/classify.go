package pipeline

import (
	"possales/internal/menu"
	"possales/internal/util"
)

type Classifier struct {
	tax menu.Taxonomy
}

func NewClassifier(tax menu.Taxonomy) *Classifier {
	return &Classifier{tax: tax}
}

// Classify resolves the two-hop hierarchy for a canonical item name: item to
// sub-category, sub-category to category. Both hops are exact, case-sensitive
// lookups. A miss at either hop leaves that field and its dependents nil;
// unmapped items pass through, they are never guessed.
func (c *Classifier) Classify(item string) (subCategory, category *string) {
	sub, ok := c.tax.SubCategoryByItem[item]
	if !ok {
		return nil, nil
	}
	subCategory = util.StringPtr(sub)
	if cat, ok := c.tax.CategoryBySub[sub]; ok {
		category = util.StringPtr(cat)
	}
	return subCategory, category
}
