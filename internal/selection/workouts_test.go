package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plantrx/guide-engine/internal/types"
)

func TestGenerateWorkoutPlan_StressGoalRoutesToMindfulMovement(t *testing.T) {
	profile := &types.UserProfile{Name: "Sam", Goals: []string{"reduce stress"}}

	plan := GenerateWorkoutPlan(profile, types.Answers{})

	assert.Equal(t, "Mindful Movement Practice", plan.Protocol)
	assert.NotEmpty(t, plan.Days)
}

func TestGenerateWorkoutPlan_DefaultsToBalancedWellness(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.UserProfile
	}{
		{"no goals", &types.UserProfile{Name: "Sam"}},
		{"unmatched goal", &types.UserProfile{Name: "Sam", Goals: []string{"learn to juggle"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := GenerateWorkoutPlan(tt.profile, nil)
			assert.Equal(t, "Balanced Wellness Protocol", plan.Protocol)
			assert.NotEmpty(t, plan.Days)
		})
	}
}

func TestGenerateWorkoutPlan_FirstMatchWins(t *testing.T) {
	// Multi-topic input: muscle rule precedes stress rule in source order.
	profile := &types.UserProfile{Name: "Sam", Goals: []string{"build muscle and reduce stress"}}

	plan := GenerateWorkoutPlan(profile, types.Answers{})

	assert.Equal(t, "Strength Foundations Protocol", plan.Protocol)
}

func TestGenerateWorkoutPlan_AnswersAdjustSummaryOnly(t *testing.T) {
	profile := &types.UserProfile{Name: "Sam", Goals: []string{"more energy"}}
	answers := types.Answers{"workout_minutes": "20", "equipment": "none at home"}

	plan := GenerateWorkoutPlan(profile, answers)

	assert.Equal(t, "Energy Builder Protocol", plan.Protocol)
	assert.Contains(t, plan.Summary, "20 minutes")
	assert.Contains(t, plan.Summary, "body weight only")
}

func TestGenerateWorkoutPlan_EveryProtocolHasDays(t *testing.T) {
	for _, rule := range workoutRules {
		assert.NotEmpty(t, rule.plan.Protocol)
		assert.NotEmpty(t, rule.plan.Days, "protocol %s has no days", rule.plan.Protocol)
	}
	assert.NotEmpty(t, defaultWorkoutPlan.Days)
}
