package pipeline

import "testing"

func TestExtractAttributesQuantity(t *testing.T) {
	if got := ExtractAttributes("Latte").Quantity; got != 1 {
		t.Fatalf("default quantity = %v", got)
	}
	if got := ExtractAttributes("Latte x3").Quantity; got != 3 {
		t.Fatalf("quantity = %v", got)
	}
	if got := ExtractAttributes("Latte x 12").Quantity; got != 12 {
		t.Fatalf("spaced quantity = %v", got)
	}
}

func TestExtractAttributesModifiers(t *testing.T) {
	attrs := ExtractAttributes("Spanish Latte (Cold) Medio Sugar 50% x2")
	if attrs.Size == nil || *attrs.Size != "Medio" {
		t.Fatalf("size = %v", attrs.Size)
	}
	if attrs.Variation == nil || *attrs.Variation != "Cold" {
		t.Fatalf("variation = %v", attrs.Variation)
	}
	if attrs.SugarLevel == nil || *attrs.SugarLevel != "Sugar 50%" {
		t.Fatalf("sugar = %v", attrs.SugarLevel)
	}
	if attrs.Quantity != 2 {
		t.Fatalf("quantity = %v", attrs.Quantity)
	}
	if attrs.Flavor != nil {
		t.Fatalf("flavor should not apply outside fries/lemonade: %v", *attrs.Flavor)
	}
}

func TestExtractAttributesSpice(t *testing.T) {
	attrs := ExtractAttributes("Pad Kra Pao Mild (1/4)")
	if attrs.SpiceLevel == nil || *attrs.SpiceLevel != "Mild (1/4)" {
		t.Fatalf("spice = %v", attrs.SpiceLevel)
	}
}

func TestExtractAttributesFriesFlavor(t *testing.T) {
	attrs := ExtractAttributes("French Fries (Sour Cream)")
	if attrs.Flavor == nil || *attrs.Flavor != "Sour Cream" {
		t.Fatalf("flavor = %v", attrs.Flavor)
	}

	attrs = ExtractAttributes("Fruit Lemonade (mango)")
	if attrs.Flavor == nil || *attrs.Flavor != "Mango" {
		t.Fatalf("flavor = %v", attrs.Flavor)
	}

	if attrs := ExtractAttributes("French Fries"); attrs.Flavor != nil {
		t.Fatalf("flavor = %v", *attrs.Flavor)
	}
}

func TestExtractAttributesNoMatches(t *testing.T) {
	attrs := ExtractAttributes("Americano")
	if attrs.Size != nil || attrs.Variation != nil || attrs.Flavor != nil || attrs.SugarLevel != nil || attrs.SpiceLevel != nil {
		t.Fatalf("expected all nil modifiers: %+v", attrs)
	}
	if attrs.Quantity != 1 {
		t.Fatalf("quantity = %v", attrs.Quantity)
	}
}
