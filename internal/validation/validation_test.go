package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/types"
)

func TestValidateAnswersJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"empty", "", false},
		{"valid object", `{"budget":"low","foods_avoid":["dairy"]}`, false},
		{"scalar avoid", `{"foods_avoid":"dairy, gluten"}`, false},
		{"null extra value", `{"special_requests":null}`, false},
		{"not an object", `["low"]`, true},
		{"numeric value", `{"budget":42}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswersJSON([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	require.NoError(t, ValidateProfile(&types.UserProfile{Name: "Jordan"}))

	err := ValidateProfile(&types.UserProfile{})
	require.Error(t, err)

	err = ValidateProfile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestCheckPageNumbering(t *testing.T) {
	trace := &layout.Trace{}
	// Build a three-page trace by hand: cover plus two numbered pages.
	for page := 1; page <= 3; page++ {
		trace.Pages = append(trace.Pages, layout.PageTrace{})
	}
	trace.Pages[1].Runs = []layout.TextRun{{Page: 2, Text: "Page 2 of 3"}}
	trace.Pages[2].Runs = []layout.TextRun{{Page: 3, Text: "body only"}}

	violations := CheckPageNumbering(trace)
	require.Len(t, violations, 1)
	assert.Equal(t, 3, violations[0].Page)
	assert.Equal(t, "page-numbering", violations[0].Rule)
}

func TestCheckOverflow(t *testing.T) {
	trace := &layout.Trace{Pages: []layout.PageTrace{{
		Runs: []layout.TextRun{
			{Page: 1, Y: 100, Text: "fine"},
			{Page: 1, Y: layout.PrintableBottom + 5, Text: "overflowing"},
			{Page: 1, Y: layout.FooterBaseline, Text: "footer chrome"},
		},
	}}}

	violations := CheckOverflow(trace)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Detail, "overflowing")
}

func TestCheckTOC(t *testing.T) {
	trace := &layout.Trace{Pages: []layout.PageTrace{
		{},
		{Runs: []layout.TextRun{{Page: 2, Text: "Nutrition Plan"}}},
	}}

	assert.Empty(t, CheckTOC(trace, map[string]int{"Nutrition Plan": 2}))
	violations := CheckTOC(trace, map[string]int{"Exercise Protocol": 2})
	require.Len(t, violations, 1)
	assert.Equal(t, "toc-consistency", violations[0].Rule)
}
