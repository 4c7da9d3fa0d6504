package statistics

import "strings"

type calorieEntry struct {
	name string
	kcal int
}

// calorieTable maps product names to average kcal per 100g or standard
// portion. It is an ordered list, not a map: substring matching walks the
// entries in order and the first hit wins, which keeps estimates
// deterministic.
var calorieTable = []calorieEntry{
	// Dairy
	{"leche", 60},
	{"yogurt", 60},
	{"queso", 350},
	{"mantequilla", 717},
	{"crema", 345},

	// Fruit
	{"manzana", 52},
	{"plátano", 89},
	{"naranja", 47},
	{"uva", 67},
	{"sandía", 30},
	{"piña", 50},
	{"frutilla", 32},
	{"pera", 57},

	// Vegetables
	{"lechuga", 15},
	{"tomate", 18},
	{"zanahoria", 41},
	{"cebolla", 40},
	{"papa", 77},
	{"brócoli", 34},
	{"espinaca", 23},
	{"pimiento", 31},

	// Meat
	{"pollo", 165},
	{"carne", 250},
	{"pescado", 206},
	{"cerdo", 242},
	{"pavo", 135},

	// Bread and grains
	{"pan", 265},
	{"arroz", 130},
	{"pasta", 131},
	{"avena", 389},
	{"cereal", 375},

	// Other
	{"huevo", 155},
	{"aceite", 884},
	{"azúcar", 387},
	{"sal", 0},
	{"agua", 0},
	{"ginger ale", 124},
	{"agua con gas", 0},
	{"galleta", 450},
}

const defaultCalories = 100

// EstimateCalories returns a heuristic calorie estimate for quantity units of
// a product. The name is matched case-insensitively against the table, first
// exactly and then by substring in either direction; unknown products default
// to 100 kcal per unit.
func EstimateCalories(productName string, quantity int) int {
	if quantity <= 0 {
		quantity = 1
	}

	normalized := strings.ToLower(strings.TrimSpace(productName))

	for _, entry := range calorieTable {
		if entry.name == normalized {
			return entry.kcal * quantity
		}
	}

	for _, entry := range calorieTable {
		if strings.Contains(normalized, entry.name) || strings.Contains(entry.name, normalized) {
			return entry.kcal * quantity
		}
	}

	return defaultCalories * quantity
}
