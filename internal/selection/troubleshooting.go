package selection

import "github.com/plantrx/guide-engine/internal/types"

// commonTroubles appear in every guide
var commonTroubles = []types.TroubleshootingEntry{
	{
		Problem: "I keep forgetting parts of the routine",
		Fixes: []string{
			"Anchor each new habit to an existing one (after brushing teeth, drink water)",
			"Put the printed daily schedule somewhere you cannot miss it",
			"Start with only the morning block for the first week",
		},
	},
	{
		Problem: "I lost motivation after the first week",
		Fixes: []string{
			"Re-read your assessment page and the goal you wrote down",
			"Shrink the plan: do the two easiest items daily rather than nothing",
			"Track streaks, not perfection — a missed day resets nothing",
		},
	},
}

// planTroubles appends plan-specific entries
var planTroubles = map[types.PlanType][]types.TroubleshootingEntry{
	types.PlanDiet: {
		{Problem: "Cravings hit hard in the evening", Fixes: []string{"Add protein and fiber at dinner", "Brew a sweet herbal tea like cinnamon rooibos", "Keep trigger foods out of the house for 30 days"}},
		{Problem: "Meal prep takes too long", Fixes: []string{"Batch-cook one grain and one protein twice a week", "Use frozen vegetables without guilt", "Repeat breakfasts — variety matters less than consistency"}},
	},
	types.PlanFitness: {
		{Problem: "Soreness is interfering with sessions", Fixes: []string{"Swap the next session for the active recovery day", "Check protein intake and sleep hours first", "Reduce working sets by one until soreness resolves in 48 hours"}},
		{Problem: "No time for full workouts", Fixes: []string{"Split sessions into two 15-minute blocks", "Keep the warm-up, cut accessory moves first"}},
	},
	types.PlanSkincare: {
		{Problem: "Skin got worse in week one", Fixes: []string{"A short adjustment period is normal; hold steady through week two", "Introduce only one new product at a time", "Stop anything that stings or burns immediately"}},
	},
	types.PlanWellness: {
		{Problem: "My mind races during quiet practices", Fixes: []string{"Shorten sessions to 3 minutes and extend weekly", "Use a counting breath (in 4, hold 4, out 6)", "Move the practice earlier in the day"}},
	},
	types.PlanRecovery: {
		{Problem: "Pain increased after activity", Fixes: []string{"Drop back to the previous week's load", "Pain above 3/10 during movement means stop that movement", "Persistent or sharp pain warrants a professional assessment"}},
	},
}

// BuildTroubleshooting assembles the troubleshooting entries for a plan type
func BuildTroubleshooting(plan types.PlanType) types.TroubleshootingGuide {
	entries := make([]types.TroubleshootingEntry, len(commonTroubles))
	copy(entries, commonTroubles)
	entries = append(entries, planTroubles[plan]...)
	return types.TroubleshootingGuide{Entries: entries}
}
