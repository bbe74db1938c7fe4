package pipeline

import (
	"testing"

	"possales/internal/menu"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(menu.Default())

	sub, cat := c.Classify("Croissant - Plain")
	if sub == nil || *sub != "Pastries" {
		t.Fatalf("sub-category = %v", sub)
	}
	if cat == nil || *cat != "Desserts" {
		t.Fatalf("category = %v", cat)
	}
}

func TestClassifyUnknownItem(t *testing.T) {
	c := NewClassifier(menu.Default())

	sub, cat := c.Classify("Mystery Special")
	if sub != nil || cat != nil {
		t.Fatalf("unmapped item should classify to nil, got %v / %v", sub, cat)
	}
}

// Lookups are exact: a casing mismatch is a miss, not a fuzzy hit.
func TestClassifyCaseSensitive(t *testing.T) {
	c := NewClassifier(menu.Default())

	sub, cat := c.Classify("croissant - plain")
	if sub != nil || cat != nil {
		t.Fatalf("lowercased item should not classify, got %v / %v", sub, cat)
	}
}
