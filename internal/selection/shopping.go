package selection

import "github.com/plantrx/guide-engine/internal/types"

// baseCategories returns the full shopping list before avoid filtering.
// Items carry their allergen class in parentheses so substring-based
// exclusions like "dairy" or "gluten" can remove them.
func baseCategories(plan types.PlanType) []types.ShoppingCategory {
	categories := []types.ShoppingCategory{
		{
			Name: "Proteins",
			Items: []string{
				"Eggs (free-range)",
				"Chicken thighs",
				"Canned wild salmon",
				"Greek yogurt (dairy)",
				"Cottage cheese (dairy)",
				"Dried lentils",
				"Firm tofu (soy)",
				"Canned chickpeas",
			},
		},
		{
			Name: "Vegetables",
			Items: []string{
				"Spinach or kale",
				"Broccoli",
				"Carrots",
				"Sweet potatoes",
				"Bell peppers",
				"Zucchini",
				"Garlic and onions",
			},
		},
		{
			Name: "Fruits",
			Items: []string{
				"Bananas",
				"Frozen mixed berries",
				"Apples",
				"Lemons",
				"Seasonal fruit of choice",
			},
		},
		{
			Name: "Pantry Staples",
			Items: []string{
				"Rolled oats (gluten)",
				"Brown rice",
				"Quinoa",
				"Extra virgin olive oil",
				"Whole grain bread (gluten)",
				"Almond butter (nuts)",
				"Mixed raw nuts (nuts)",
				"Canned tomatoes",
			},
		},
		{
			Name: "Herbs & Teas",
			Items: []string{
				"Chamomile tea",
				"Green tea",
				"Fresh ginger",
				"Turmeric",
				"Peppermint tea",
			},
		},
	}

	switch plan {
	case types.PlanSkincare:
		categories[4].Items = append(categories[4].Items, "Rooibos tea", "Aloe vera juice")
	case types.PlanRecovery:
		categories[4].Items = append(categories[4].Items, "Tart cherry juice", "Epsom salts (bath aisle)")
	case types.PlanFitness:
		categories[3].Items = append(categories[3].Items, "Electrolyte powder (unsweetened)")
	}
	return categories
}

// BuildShoppingList assembles the categorized grocery list for the plan,
// dropping any item that contains an avoided substring from the answers.
// Category names and order are fixed regardless of filtering.
func BuildShoppingList(plan types.PlanType, profile *types.UserProfile, answers types.Answers) types.ShoppingList {
	avoid := AvoidedFoods(answers)
	for _, pref := range profile.Preferences {
		if containsFold(pref, "vegetarian") || containsFold(pref, "vegan") {
			avoid = append(avoid, "chicken", "salmon")
		}
		if containsFold(pref, "vegan") {
			avoid = append(avoid, "dairy", "eggs")
		}
	}

	categories := baseCategories(plan)
	out := make([]types.ShoppingCategory, 0, len(categories))
	for _, cat := range categories {
		items := make([]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			excluded := false
			for _, a := range avoid {
				if containsFold(item, a) {
					excluded = true
					break
				}
			}
			if !excluded {
				items = append(items, item)
			}
		}
		out = append(out, types.ShoppingCategory{Name: cat.Name, Items: items})
	}
	return types.ShoppingList{Categories: out}
}
