package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plantrx/guide-engine/internal/types"
)

func TestGetBudgetTips_DefaultsToModerate(t *testing.T) {
	tests := []struct {
		name    string
		answers types.Answers
	}{
		{"nil bag", nil},
		{"empty bag", types.Answers{}},
		{"unrecognized tier", types.Answers{"budget": "infinite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guide := GetBudgetTips(tt.answers)
			assert.Equal(t, "moderate", guide.Tier)
			assert.NotEmpty(t, guide.Tips)
		})
	}
}

func TestGetBudgetTips_LowTierCopy(t *testing.T) {
	guide := GetBudgetTips(types.Answers{"budget": "low"})

	assert.Equal(t, "low", guide.Tier)
	assert.Equal(t, "Buy dried beans, lentils, and whole grains in bulk — they are the cheapest complete staples available.", guide.Tips[0])
}

func TestGetBudgetTips_SubstringRouting(t *testing.T) {
	guide := GetBudgetTips(types.Answers{"budget": "Pretty LOW right now"})
	assert.Equal(t, "low", guide.Tier)

	guide = GetBudgetTips(types.Answers{"budget": "high-ish"})
	assert.Equal(t, "high", guide.Tier)
}
