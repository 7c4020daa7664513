package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantrx/guide-engine/internal/types"
)

// Selectors must return non-empty, well-formed content for a profile with
// every optional field missing and a nil answer bag.
func TestSelectors_AllMissingInputs(t *testing.T) {
	profile := &types.UserProfile{Name: "Sam"}

	for _, plan := range types.AllPlanTypes {
		t.Run(plan.String(), func(t *testing.T) {
			assert.NotEmpty(t, GoalFoods(profile, nil).Breakfast)
			assert.NotEmpty(t, GenerateWorkoutPlan(profile, nil).Protocol)
			assert.NotEmpty(t, GetBudgetTips(nil).Tips)
			assert.NotEmpty(t, BuildShoppingList(plan, profile, nil).Categories)
			assert.NotEmpty(t, BuildSupplementPlan(plan, profile).Supplements)
			assert.NotEmpty(t, BuildDailySchedule(plan, profile, nil).Slots)
			assert.NotEmpty(t, BuildTrackingPlan(plan).Metrics)
			assert.NotEmpty(t, BuildTroubleshooting(plan).Entries)
			assert.NotEmpty(t, AssessmentNotes(profile, nil))
			assert.NotEmpty(t, AdvancedStrategies(plan))
		})
	}
}

func TestBuildSupplementPlan_ConcernAdditions(t *testing.T) {
	profile := &types.UserProfile{Name: "Sam", HealthConcerns: []string{"poor sleep", "joint pain"}}

	plan := BuildSupplementPlan(types.PlanWellness, profile)

	names := make([]string, 0, len(plan.Supplements))
	for _, s := range plan.Supplements {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "L-theanine")
	assert.Contains(t, names, "Glucosamine sulfate")
	assert.NotEmpty(t, plan.Caution)
}

func TestBuildSupplementPlan_BaseStackNotMutated(t *testing.T) {
	profile := &types.UserProfile{Name: "Sam", HealthConcerns: []string{"stress"}}

	before := len(planSupplements[types.PlanWellness])
	_ = BuildSupplementPlan(types.PlanWellness, profile)
	_ = BuildSupplementPlan(types.PlanWellness, profile)

	assert.Len(t, planSupplements[types.PlanWellness], before)
}

func TestBuildDailySchedule_WakeTimeAnswer(t *testing.T) {
	schedule := BuildDailySchedule(types.PlanDiet, &types.UserProfile{Name: "Sam"}, types.Answers{"wake_time": "5:30 AM"})

	require.NotEmpty(t, schedule.Slots)
	assert.Equal(t, "5:30 AM", schedule.Slots[0].Time)
	assert.Equal(t, "Wake + hydrate", schedule.Slots[0].Activity)
}

func TestAssessmentNotes_ReflectsInputs(t *testing.T) {
	profile := &types.UserProfile{
		Name:       "Sam",
		Goals:      []string{"reduce stress", "sleep better"},
		Experience: "beginner",
		Duration:   "14 days",
	}
	answers := types.Answers{"cooking_time": "20 minutes"}

	notes := AssessmentNotes(profile, answers)
	joined := ""
	for _, n := range notes {
		joined += n + "\n"
	}

	assert.Contains(t, joined, "reduce stress")
	assert.Contains(t, joined, "sleep better")
	assert.Contains(t, joined, "beginner")
	assert.Contains(t, joined, "20 minutes")
	assert.Contains(t, joined, "14 days")
}
