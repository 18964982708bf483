// internal/domain/catalog/data.go
package catalog

// defaultProducts is the Freshify product line: cold-pressed juices
// (Juicy Balance) and air-fried croquettes (Fit Bites).
var defaultProducts = []Product{
	{
		ID:          "juice-1",
		Name:        "Tropical Glow",
		Category:    CategoryBeverage,
		Price:       25000,
		Description: "Jus segar dari mangga, nanas, dan jeruk dengan sentuhan madu alami.",
		Nutrition: Nutrition{
			Calories: 120,
			Protein:  2,
			Fat:      0.5,
			Fiber:    3,
			Sugar:    18,
			Vitamins: []string{"Vitamin C", "Vitamin A", "Vitamin B6"},
		},
		Ingredients: []string{"Mangga", "Nanas", "Jeruk", "Madu"},
		Barcode:     "8992761001234",
	},
	{
		ID:          "juice-2",
		Name:        "Green Boost",
		Category:    CategoryBeverage,
		Price:       28000,
		Description: "Kombinasi bayam, seledri, apel hijau dan lemon. Kaya antioksidan.",
		Nutrition: Nutrition{
			Calories: 95,
			Protein:  3,
			Fat:      0.3,
			Fiber:    4,
			Sugar:    12,
			Vitamins: []string{"Vitamin K", "Vitamin C", "Folat", "Zat Besi"},
		},
		Ingredients: []string{"Bayam", "Seledri", "Apel Hijau", "Lemon", "Stevia"},
		Barcode:     "8992761001241",
	},
	{
		ID:          "juice-3",
		Name:        "Berry Shield",
		Category:    CategoryBeverage,
		Price:       30000,
		Description: "Perpaduan strawberry, blueberry, dan raspberry untuk sistem imun.",
		Nutrition: Nutrition{
			Calories: 110,
			Protein:  2,
			Fat:      0.4,
			Fiber:    5,
			Sugar:    15,
			Vitamins: []string{"Vitamin C", "Vitamin K", "Mangan"},
		},
		Ingredients: []string{"Strawberry", "Blueberry", "Raspberry", "Madu"},
		Barcode:     "8992761001258",
	},
	{
		ID:          "food-1",
		Name:        "Kroket Tahu Bayam",
		Category:    CategoryFood,
		Price:       20000,
		Description: "Kroket renyah dengan isian tahu dan bayam, dimasak tanpa minyak.",
		Nutrition: Nutrition{
			Calories: 150,
			Protein:  8,
			Fat:      4,
			Fiber:    4,
			Sugar:    2,
			Vitamins: []string{"Vitamin A", "Vitamin K", "Kalsium", "Zat Besi"},
		},
		Ingredients: []string{"Tahu", "Bayam", "Tepung Oat", "Bawang Putih", "Merica"},
		Barcode:     "8992761002001",
	},
	{
		ID:          "food-2",
		Name:        "Kroket Ayam Oatmeal",
		Category:    CategoryFood,
		Price:       22000,
		Description: "Kroket ayam dengan lapisan oatmeal yang kaya serat.",
		Nutrition: Nutrition{
			Calories: 180,
			Protein:  12,
			Fat:      5,
			Fiber:    3,
			Sugar:    1,
			Vitamins: []string{"Vitamin B6", "Niasin", "Selenium"},
		},
		Ingredients: []string{"Daging Ayam", "Tepung Oat", "Wortel", "Bawang Bombay"},
		Barcode:     "8992761002018",
	},
	{
		ID:          "food-3",
		Name:        "Kroket Ubi Isi Sayur",
		Category:    CategoryFood,
		Price:       18000,
		Description: "Kroket berbasis ubi jalar dengan isian sayuran beragam.",
		Nutrition: Nutrition{
			Calories: 140,
			Protein:  4,
			Fat:      3,
			Fiber:    5,
			Sugar:    6,
			Vitamins: []string{"Vitamin A", "Vitamin C", "Mangan", "Potasium"},
		},
		Ingredients: []string{"Ubi Jalar", "Brokoli", "Jagung", "Wortel", "Tepung Oat"},
		Barcode:     "8992761002025",
	},
}

// Default returns the catalog loaded with the static Freshify product data.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		// Static reference data is validated at startup; a failure here is a
		// programming error in the data set.
		panic(err)
	}
	return c
}
