package selection

import "github.com/plantrx/guide-engine/internal/types"

// commonMetrics are tracked on every plan type
var commonMetrics = []types.TrackingMetric{
	{Name: "Energy level (1-10)", Frequency: "Daily, before bed", Target: "Trending upward by week two"},
	{Name: "Sleep hours", Frequency: "Daily, on waking", Target: "7-9 hours"},
	{Name: "Water intake", Frequency: "Daily", Target: "8 glasses"},
}

// planMetrics appends plan-specific measurements
var planMetrics = map[types.PlanType][]types.TrackingMetric{
	types.PlanDiet: {
		{Name: "Vegetable servings", Frequency: "Daily", Target: "5+ servings"},
		{Name: "Home-cooked meals", Frequency: "Weekly tally", Target: "10+ per week"},
	},
	types.PlanFitness: {
		{Name: "Workout sessions completed", Frequency: "Weekly tally", Target: "All scheduled sessions"},
		{Name: "Resting heart rate", Frequency: "Weekly, on waking", Target: "Stable or decreasing"},
	},
	types.PlanSkincare: {
		{Name: "Skin photo (same light)", Frequency: "Weekly", Target: "Visible improvement by week four"},
		{Name: "Routine adherence", Frequency: "Daily checkbox", Target: "Morning and evening, every day"},
	},
	types.PlanWellness: {
		{Name: "Stress level (1-10)", Frequency: "Daily, midday", Target: "Trending downward"},
		{Name: "Mindful minutes", Frequency: "Daily", Target: "10+ minutes"},
	},
	types.PlanRecovery: {
		{Name: "Soreness level (1-10)", Frequency: "Daily, on waking", Target: "Trending downward"},
		{Name: "Rest days honored", Frequency: "Weekly tally", Target: "Every scheduled rest day"},
	},
}

// BuildTrackingPlan assembles the progress metrics for the plan type.
// Unknown plan types get the common metrics only.
func BuildTrackingPlan(plan types.PlanType) types.TrackingPlan {
	metrics := make([]types.TrackingMetric, len(commonMetrics))
	copy(metrics, commonMetrics)
	metrics = append(metrics, planMetrics[plan]...)
	return types.TrackingPlan{Metrics: metrics}
}
