package pipeline

import "testing"

func TestNormalizeItemName(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  string
	}{
		{name: "croissant with flavor", token: "Croissant - Plain x2", want: "Croissant - Plain"},
		{name: "longest flavor wins", token: "Croffle - Chip and Chunk Walnut", want: "Croffle - Chip and Chunk Walnut"},
		{name: "cookie singular becomes plural", token: "Biscoff Cookie", want: "Cookies - Biscoff"},
		{name: "cookie suffix dropped from flavor", token: "Red Velvet Cookie x1", want: "Cookies - Red Velvet"},
		{name: "lowercase target", token: "croffle matcha (Hot)", want: "Croffle - Matcha"},
		{name: "target without known flavor", token: "Croissant x2", want: "Croissant - "},
		{name: "modifiers stripped", token: "French Fries (Sour Cream) x2", want: "French Fries"},
		{name: "quantity marker stripped", token: "Spanish Latte (Cold) x3", want: "Spanish Latte"},
		{name: "source casing preserved", token: "iced tea", want: "iced tea"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeItemName(tc.token); got != tc.want {
				t.Fatalf("NormalizeItemName(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}
}

func TestApplyCorrections(t *testing.T) {
	corrections := map[string]string{"Fruit Lemonade w/Popping Pearls": "Fruit Lemonade w/ Popping Pearls"}

	if got := ApplyCorrections("Fruit Lemonade w/Popping Pearls", corrections); got != "Fruit Lemonade w/ Popping Pearls" {
		t.Fatalf("got %q", got)
	}
	if got := ApplyCorrections("Latte", corrections); got != "Latte" {
		t.Fatalf("unmatched name changed: %q", got)
	}
}
