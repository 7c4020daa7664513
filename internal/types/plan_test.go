package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanType_ValidTypes(t *testing.T) {
	for _, name := range []string{"diet", "fitness", "skincare", "wellness", "recovery"} {
		p, err := ParsePlanType(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.String())
		assert.True(t, p.Valid())
		assert.NotEmpty(t, p.Title())
	}
}

func TestParsePlanType_NormalizesCase(t *testing.T) {
	p, err := ParsePlanType("  Wellness ")
	require.NoError(t, err)
	assert.Equal(t, PlanWellness, p)
}

func TestParsePlanType_Unknown(t *testing.T) {
	_, err := ParsePlanType("keto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keto")
}

func TestParseDurationDays(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{"plain days", "30 days", 30},
		{"hyphenated", "14-day reset", 14},
		{"bare number", "90", 90},
		{"no leading digits", "about a month", DefaultDurationDays},
		{"empty", "", DefaultDurationDays},
		{"zero", "0 days", DefaultDurationDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDurationDays(tt.duration))
		})
	}
}

func TestUserProfile_Defaults(t *testing.T) {
	var p *UserProfile
	assert.Equal(t, "Friend", p.DisplayName())
	assert.Equal(t, "", p.PrimaryGoal())
	assert.Equal(t, DefaultDurationDays, p.DurationDays())
	assert.Equal(t, "30 days", p.DurationLabel())
}

func TestUserProfile_PrimaryGoal(t *testing.T) {
	p := &UserProfile{Goals: []string{"  Reduce Stress ", "sleep better"}}
	assert.Equal(t, "reduce stress", p.PrimaryGoal())
	assert.Equal(t, []string{"reduce stress", "sleep better"}, p.AllGoals())
}
