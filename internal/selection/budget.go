package selection

import "github.com/plantrx/guide-engine/internal/types"

// budgetGuides maps each recognized tier to its fixed tip copy. The low-tier
// copy is relied on verbatim by downstream rendering and tests; keep the
// first tip line stable.
var budgetGuides = map[string]types.BudgetGuide{
	"low": {
		Tier: "low",
		Tips: []string{
			"Buy dried beans, lentils, and whole grains in bulk — they are the cheapest complete staples available.",
			"Choose frozen vegetables and fruit; they match fresh for nutrients at a fraction of the price.",
			"Plan meals around whatever protein is on sale this week.",
			"Cook once, eat twice: double every dinner and take leftovers for lunch.",
			"Grow herbs on a windowsill instead of buying fresh bunches.",
		},
	},
	"moderate": {
		Tier: "moderate",
		Tips: []string{
			"Balance fresh produce for the week's first half with frozen for the second.",
			"Buy one higher-quality protein per week and stretch it across several meals.",
			"Shop seasonal produce for the best price-to-nutrition ratio.",
			"Batch-cook grains and legumes on the weekend to avoid weekday convenience spending.",
		},
	},
	"high": {
		Tier: "high",
		Tips: []string{
			"Prioritize organic for the produce you eat unpeeled.",
			"Add wild-caught fish and pasture-raised eggs as protein anchors.",
			"Consider a local farm box subscription for peak-freshness produce.",
			"Invest in quality cold-pressed oils and raw nuts for healthy fats.",
		},
	},
}

// budgetTierOrder fixes the first-match precedence for tier routing
var budgetTierOrder = []string{"low", "moderate", "high"}

// GetBudgetTips selects budget guidance from the budget answer. Unrecognized
// or missing budget answers default to the moderate tier.
func GetBudgetTips(answers types.Answers) types.BudgetGuide {
	tier := answers.StringOr("budget", "moderate")
	for _, name := range budgetTierOrder {
		if containsFold(tier, name) {
			return budgetGuides[name]
		}
	}
	return budgetGuides["moderate"]
}
