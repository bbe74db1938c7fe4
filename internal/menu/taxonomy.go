package menu

// Taxonomy is the static classification configuration: canonical item name
// to sub-category, sub-category to top-level category, plus one-off spelling
// corrections applied after normalization. Loaded once, read-only afterwards;
// items absent from the tables stay unclassified, they are never guessed.
type Taxonomy struct {
	SubCategoryByItem map[string]string
	CategoryBySub     map[string]string
	Corrections       map[string]string
}

// Default returns the taxonomy for the current menu.
func Default() Taxonomy {
	return Taxonomy{
		SubCategoryByItem: subCategoryByItem,
		CategoryBySub:     categoryBySub,
		Corrections:       corrections,
	}
}

// Known-inconsistent spellings in the exports, remapped to the form the
// lookup tables use. Extension point for future one-off fixes only.
var corrections = map[string]string{
	"Fruit Lemonade w/Popping Pearls": "Fruit Lemonade w/ Popping Pearls",
}

var subCategoryByItem = map[string]string{
	// Add-Ons
	"Candle - Big":      "Add-Ons (Cake)",
	"Candle":            "Add-Ons (Cake)",
	"Candle - Small":    "Add-Ons (Cake)",
	"Candle + Topper Set": "Add-Ons (Cake)",
	"Candle + Topper Set - Big Candle + Big Bday T.":    "Add-Ons (Cake)",
	"Candle + Topper Set - Small Candle+ Small Bday T.": "Add-Ons (Cake)",
	"Extra Aioli Dip":    "Food Add-Ons",
	"Extra Cheese Sauce": "Food Add-Ons",
	"Extra Egg":          "Food Add-Ons",
	"Extra Rice":         "Food Add-Ons",

	// Food
	"Bacon with Rice and Egg":       "All Day Breakfast",
	"Corned Beef with Rice and Egg": "All Day Breakfast",
	"Spam with Rice and Egg":        "All Day Breakfast",
	"Sunrise Breakfast Plate":       "All Day Breakfast",
	"Cheese Sticks":                 "Appetizers",
	"Chicken Fingers":               "Appetizers",
	"French Fries":                  "Appetizers",
	"French Fries Overload":         "Appetizers",
	"French Fries Platter":          "Appetizers",
	"Mojos":                         "Appetizers",
	"Nachos":                        "Appetizers",
	"Spring Rolls":                  "Appetizers",
	"Carbonara":                     "Pasta",
	"Chicken Aglio Olio":            "Pasta",
	"Chicken Pesto":                 "Pasta",
	"Creamy Lasagna":                "Pasta",
	"Shrimp Aglio Olio":             "Pasta",
	"Spaghetti Meatballs":           "Pasta",
	"Spicy Tuna Pasta":              "Pasta",
	"Chicken Salpicao":              "Rice Meals",
	"Pad Kra Pao":                   "Rice Meals",
	"Spicy Pork Stir Fry":           "Rice Meals",
	"Bacon and Egg Sandwich":        "Sandwiches",
	"Clubhouse":                     "Sandwiches",
	"Crispy Chicken Sandwich":       "Sandwiches",
	"Spam and Egg Sandwich":         "Sandwiches",

	// Beverages
	"Coffee Jelly Blended":             "Blended Coffee",
	"Hazelnut Blended":                 "Blended Coffee",
	"Java Chip Blended":                "Blended Coffee",
	"Mocha Blended":                    "Blended Coffee",
	"White Mocha Blended":              "Blended Coffee",
	"Biscoff Blended":                  "Blended Cream",
	"Biscoff Cream":                    "Blended Cream",
	"Caramel Blended":                  "Blended Cream",
	"Caramel Cream":                    "Blended Cream",
	"Chocolate Chip Cream":             "Blended Cream",
	"Chocolate Cream":                  "Blended Cream",
	"Matcha Cream":                     "Blended Cream",
	"Nutella Blended":                  "Blended Cream",
	"Nutella Cream":                    "Blended Cream",
	"Oreo Cream":                       "Blended Cream",
	"Strawberry Cream":                 "Blended Cream",
	"Vanilla Cream":                    "Blended Cream",
	"White Chocolate Cream":            "Blended Cream",
	"Amantes":                          "Coffee Based",
	"Americano":                        "Coffee Based",
	"Biscoff Latte":                    "Coffee Based",
	"Cappuccino":                       "Coffee Based",
	"Caramel Macchiato":                "Coffee Based",
	"Flavored Latte":                   "Coffee Based",
	"Latte":                            "Coffee Based",
	"Matcha Espresso":                  "Coffee Based",
	"Mocha":                            "Coffee Based",
	"Nutella Latte":                    "Coffee Based",
	"Salted Caramel Latte":             "Coffee Based",
	"Spanish Latte":                    "Coffee Based",
	"Vietnamese":                       "Coffee Based",
	"White Mocha":                      "Coffee Based",
	"White Mocha Hazelnut":             "Coffee Based",
	"Blueberry Yakult":                 "Fruit Based",
	"Fruit Lemonade w/ Popping Pearls": "Fruit Based",
	"Green Apple Fruit Tea":            "Fruit Based",
	"Mango Yakult":                     "Fruit Based",
	"Passion Fruit":                    "Fruit Based",
	"Passion Fruit Cooler":             "Fruit Based",
	"Strawberry Yakult":                "Fruit Based",
	"Chamomile":                        "Hot Tea",
	"Peppermint":                       "Hot Tea",
	"Biscoff Milk":                     "Milk Based",
	"Blueberry Milk":                   "Milk Based",
	"Chocolate":                        "Milk Based",
	"Matcha":                           "Milk Based",
	"Nutella Milk":                     "Milk Based",
	"Oreo Matcha":                      "Milk Based",
	"Oreo Milk":                        "Milk Based",
	"Strawberry Matcha":                "Milk Based",
	"Strawberry Milk":                  "Milk Based",
	"White Chocolate":                  "Milk Based",
	"White Chocolate Chip":             "Pastries",

	// Desserts
	"Biscoff Cheesecake":              "Cheesecakes",
	"Blueberry Cheesecake":            "Cheesecakes",
	"Mango Cheesecake":                "Cheesecakes",
	"New York Cheesecake":             "Cheesecakes",
	"Nutella Cheesecake":              "Cheesecakes",
	"Oreo Cheesecake":                 "Cheesecakes",
	"Strawberry Cheesecake":           "Cheesecakes",
	"Ube Cheesecake":                  "Cheesecakes",
	"Biscoff tiramisu":                "Cheesecakes",
	"Choco Almond":                    "Moist Cakes",
	"Choco Caramel":                   "Moist Cakes",
	"Garnet Velvet":                   "Moist Cakes",
	"Pecan Walnut Carrot":             "Moist Cakes",
	"Signature Chocolate":             "Moist Cakes",
	"Banana Bread":                    "Pastries",
	"Crookie":                         "Pastries",
	"Cookies - Biscoff":               "Pastries",
	"Cookies - Chip and Chunk":        "Pastries",
	"Cookies - Chip and Chunk Walnut": "Pastries",
	"Cookies - Nutella Pecan":         "Pastries",
	"Cookies - Red Velvet":            "Pastries",
	"Cookies - Smores":                "Pastries",
	"Cookies - Dubai":                 "Pastries",
	"Crinkles":                        "Pastries",
	"Croffle - Almond Nutella":        "Pastries",
	"Croffle - Biscoff":               "Pastries",
	"Croffle - Caramel":               "Pastries",
	"Croffle - Chocolate":             "Pastries",
	"Croffle - Matcha":                "Pastries",
	"Croffle - Oreo":                  "Pastries",
	"Croffle - Plain":                 "Pastries",
	"Croffle - Smores":                "Pastries",
	"Croffle - Strawberry Cream":      "Pastries",
	"Croissant - Almond Nutella":      "Pastries",
	"Croissant - Biscoff":             "Pastries",
	"Croissant - Caramel":             "Pastries",
	"Croissant - Chocolate":           "Pastries",
	"Croissant - Oreo":                "Pastries",
	"Croissant - Plain":               "Pastries",
	"Croissant - Spam and Egg":        "Pastries",

	// Others
	"Bottled Water": "Others",
	"Coke in Can":   "Others",
}

var categoryBySub = map[string]string{
	"Add-Ons (Cake)":    "Add-Ons",
	"Food Add-Ons":      "Add-Ons",
	"All Day Breakfast": "Food",
	"Appetizers":        "Food",
	"Pasta":             "Food",
	"Rice Meals":        "Food",
	"Sandwiches":        "Food",
	"Blended Coffee":    "Beverages",
	"Blended Cream":     "Beverages",
	"Coffee Based":      "Beverages",
	"Fruit Based":       "Beverages",
	"Hot Tea":           "Beverages",
	"Milk Based":        "Beverages",
	"Pastries":          "Desserts",
	"Cheesecakes":       "Desserts",
	"Moist Cakes":       "Desserts",
	"Others":            "Others",
}
