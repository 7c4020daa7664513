package selection

import "github.com/plantrx/guide-engine/internal/types"

// foodRule pairs a goal predicate with the meal plan it selects
type foodRule struct {
	matches func(string) bool
	plan    types.MealPlan
}

// foodRules is evaluated in order; the first matching rule wins
var foodRules = []foodRule{
	{
		matches: keywords("muscle", "strength", "tone"),
		plan: types.MealPlan{
			Focus:     "Protein-forward whole foods to support muscle repair",
			Breakfast: []string{"Scrambled eggs with spinach", "Overnight oats with hemp seeds", "Greek yogurt (dairy) with berries"},
			Lunch:     []string{"Grilled chicken and quinoa bowl", "Lentil and brown rice salad", "Tuna and white bean wrap"},
			Dinner:    []string{"Baked salmon with sweet potato", "Turkey and vegetable stir-fry", "Tempeh with roasted broccoli"},
			Snacks:    []string{"Hard-boiled eggs", "Almond butter on rice cakes", "Cottage cheese (dairy) with pineapple"},
		},
	},
	{
		matches: keywords("weight", "fat", "slim", "lean"),
		plan: types.MealPlan{
			Focus:     "High-volume, fiber-rich meals that keep you satisfied on fewer calories",
			Breakfast: []string{"Vegetable omelet", "Chia pudding with raspberries", "Green smoothie with protein"},
			Lunch:     []string{"Big leafy salad with grilled chicken", "Cauliflower rice burrito bowl", "Miso soup with tofu and greens"},
			Dinner:    []string{"Zucchini noodles with turkey meatballs", "Baked cod with asparagus", "Vegetable curry with chickpeas"},
			Snacks:    []string{"Sliced cucumber with hummus", "Air-popped popcorn", "Apple with a few walnuts"},
		},
	},
	{
		matches: keywords("stress", "anxiety", "calm", "sleep"),
		plan: types.MealPlan{
			Focus:     "Magnesium- and omega-rich foods that steady the nervous system",
			Breakfast: []string{"Oatmeal with banana and walnuts", "Kefir (dairy) smoothie with flaxseed", "Avocado toast on whole grain"},
			Lunch:     []string{"Salmon and leafy green salad", "Pumpkin seed and quinoa bowl", "Turkey and avocado wrap"},
			Dinner:    []string{"Chamomile-poached chicken with greens", "Dark leafy stir-fry with cashews", "Sardines with roasted vegetables"},
			Snacks:    []string{"Dark chocolate (70%+) square", "Brazil nuts", "Tart cherry juice"},
		},
	},
	{
		matches: keywords("energy", "fatigue", "tired", "vitality"),
		plan: types.MealPlan{
			Focus:     "Steady-release carbohydrates and iron-rich foods for all-day energy",
			Breakfast: []string{"Steel-cut oats with dates", "Buckwheat pancakes with berries", "Eggs with sauteed kale"},
			Lunch:     []string{"Lentil soup with whole grain bread", "Beet and spinach salad with chicken", "Brown rice bowl with edamame"},
			Dinner:    []string{"Grass-fed beef with roasted roots", "Black bean chili", "Chicken thighs with wild rice"},
			Snacks:    []string{"Trail mix with pumpkin seeds", "Orange slices", "Energy balls with oats and tahini"},
		},
	},
	{
		matches: keywords("skin", "glow", "complexion", "acne"),
		plan: types.MealPlan{
			Focus:     "Antioxidant- and collagen-supporting foods for skin health",
			Breakfast: []string{"Berry and spinach smoothie", "Papaya with lime and seeds", "Eggs with sliced tomato"},
			Lunch:     []string{"Rainbow salad with salmon", "Carrot ginger soup with lentils", "Sweet potato and kale bowl"},
			Dinner:    []string{"Bone broth braised chicken", "Mackerel with roasted peppers", "Tofu with bok choy and sesame"},
			Snacks:    []string{"Green tea and almonds", "Kiwi fruit", "Sunflower seeds"},
		},
	},
	{
		matches: keywords("immune", "immunity", "cold", "resilience"),
		plan: types.MealPlan{
			Focus:     "Vitamin C, zinc, and fermented foods for immune resilience",
			Breakfast: []string{"Citrus salad with yogurt (dairy)", "Ginger turmeric smoothie", "Miso broth with egg"},
			Lunch:     []string{"Chicken soup with garlic", "Kimchi fried brown rice", "Butternut squash soup"},
			Dinner:    []string{"Garlic roasted chicken with greens", "Shiitake mushroom stir-fry", "Baked trout with fennel"},
			Snacks:    []string{"Sauerkraut on crackers", "Elderberry gummies", "Pumpkin seeds"},
		},
	},
}

// defaultMealPlan is the balanced fallback when no goal keyword matches
var defaultMealPlan = types.MealPlan{
	Focus:     "Balanced whole foods across every food group",
	Breakfast: []string{"Overnight oats with seasonal fruit", "Whole grain toast with avocado", "Greek yogurt (dairy) parfait"},
	Lunch:     []string{"Grain bowl with roasted vegetables", "Hearty vegetable soup with beans", "Chicken and hummus plate"},
	Dinner:    []string{"Baked fish with steamed greens", "Stir-fried tofu with brown rice", "Lean protein with root vegetables"},
	Snacks:    []string{"Fresh fruit", "Mixed nuts", "Veggie sticks with hummus"},
}

// GoalFoods selects the meal plan for the profile's goals. Missing goals
// fall back to the balanced plan; avoided foods from the answers are
// filtered out of every meal list.
func GoalFoods(profile *types.UserProfile, answers types.Answers) types.MealPlan {
	plan := defaultMealPlan
	goal := goalText(profile.AllGoals())
	for _, rule := range foodRules {
		if rule.matches(goal) {
			plan = rule.plan
			break
		}
	}

	avoid := AvoidedFoods(answers)
	plan.Breakfast = filterAvoided(plan.Breakfast, avoid)
	plan.Lunch = filterAvoided(plan.Lunch, avoid)
	plan.Dinner = filterAvoided(plan.Dinner, avoid)
	plan.Snacks = filterAvoided(plan.Snacks, avoid)
	return plan
}

// AvoidedFoods collects the foods the reader wants excluded, from either the
// foods_avoid answer or preference entries of the form "no X" / "avoid X".
func AvoidedFoods(answers types.Answers) []string {
	return answers.List("foods_avoid")
}

// filterAvoided drops any item containing an avoided substring. The original
// slice is preserved; filtering never empties a list below one entry — the
// first surviving item is kept, or the list is returned untouched when the
// filter would remove everything.
func filterAvoided(items, avoid []string) []string {
	if len(avoid) == 0 {
		return items
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		excluded := false
		for _, a := range avoid {
			if containsFold(item, a) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return items
	}
	return out
}
