package guide

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/sections"
	"github.com/plantrx/guide-engine/internal/types"
)

// fixedClock pins generation time so runs are comparable
func fixedClock() time.Time {
	return time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
}

func testRequest() Request {
	return Request{
		Plan:    types.PlanDiet,
		Profile: &types.UserProfile{Name: "Jordan", Duration: "14 days"},
		Answers: types.Answers{"budget": "low", "foods_avoid": "dairy"},
	}
}

func TestGenerate_InvalidPlanType(t *testing.T) {
	g := &Generator{Now: fixedClock}

	_, err := g.Generate(context.Background(), Request{Plan: types.PlanType("keto")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keto")
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Generator{Now: fixedClock}).Generate(ctx, testRequest())
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_ProducesPDFBuffer(t *testing.T) {
	g := &Generator{Now: fixedClock}

	res, err := g.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(res.PDF), "%PDF"))
	assert.Greater(t, res.Pages, 5)
	assert.Len(t, res.Sections, len(sections.BodySections()))
}

func TestGenerate_Deterministic(t *testing.T) {
	g := &Generator{Now: fixedClock}

	first, err := g.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	// Rendered text content must match run for run.
	assert.Equal(t, first.Trace.AllText(), second.Trace.AllText())
	assert.Equal(t, first.Pages, second.Pages)
	assert.Equal(t, first.Sections, second.Sections)
}

func TestGenerate_TableOfContentsMatchesActualStartPages(t *testing.T) {
	g := &Generator{Now: fixedClock}

	res, err := g.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	tocText := res.Trace.PageText(2)
	assert.Contains(t, tocText, "Table of Contents")

	for _, section := range res.Sections {
		// The TOC row for each section must name the page its header
		// actually rendered on.
		assert.Contains(t, tocText, fmt.Sprintf("%s .... %d", section.Title, section.Page))

		headerPage := res.Trace.FindPage(section.Title)
		require.NotZero(t, headerPage, "section %s not found in document", section.Title)
		assert.LessOrEqual(t, headerPage, section.Page)

		pageText := res.Trace.PageText(section.Page)
		assert.Contains(t, pageText, section.Title, "section %s does not start on its declared page", section.Title)
	}
}

func TestGenerate_PageNumberingComplete(t *testing.T) {
	g := &Generator{Now: fixedClock}

	res, err := g.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	assert.NotContains(t, res.Trace.PageText(1), "Page 1 of", "cover must stay unnumbered")
	for page := 2; page <= res.Pages; page++ {
		assert.Contains(t, res.Trace.PageText(page), fmt.Sprintf("Page %d of %d", page, res.Pages))
	}
}

func TestGenerate_PaginationInvariant(t *testing.T) {
	g := &Generator{Now: fixedClock}

	// A profile built to maximize content volume.
	req := Request{
		Plan: types.PlanWellness,
		Profile: &types.UserProfile{
			Name:           "Alexandria",
			Goals:          []string{"reduce stress", "sleep better", "more energy"},
			HealthConcerns: []string{"poor sleep", "stress", "joint pain", "digestion"},
			Experience:     "beginner",
			Duration:       "90 days",
		},
		Answers: types.Answers{"budget": "low", "cooking_time": "15 minutes", "workout_minutes": "45"},
	}

	res, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	for page := 1; page <= res.Pages; page++ {
		for _, run := range res.Trace.Pages[page-1].Runs {
			if run.Y == layout.FooterBaseline {
				continue
			}
			assert.LessOrEqual(t, run.Y, layout.PrintableBottom,
				"page %d run %q crosses the printable bottom", page, run.Text)
		}
	}
}

// End-to-end scenario: low-budget diet guide for Jordan, avoiding dairy.
func TestGenerate_DietScenario(t *testing.T) {
	g := &Generator{Now: fixedClock}

	res, err := g.Generate(context.Background(), Request{
		Plan:    types.PlanDiet,
		Profile: &types.UserProfile{Name: "Jordan", Duration: "14 days"},
		Answers: types.Answers{"budget": "low", "foods_avoid": "dairy"},
	})
	require.NoError(t, err)

	var shoppingPage int
	for _, section := range res.Sections {
		if section.Title == "Shopping List" {
			shoppingPage = section.Page
		}
	}
	require.NotZero(t, shoppingPage)

	// The shopping section may span pages; gather its text through the end
	// of the document and cut at the next section header.
	var text strings.Builder
	for page := shoppingPage; page <= res.Pages; page++ {
		pageText := res.Trace.PageText(page)
		if page > shoppingPage && strings.Contains(pageText, "Progress Tracking") {
			break
		}
		text.WriteString(pageText)
	}
	shopping := text.String()

	assert.Contains(t, shopping, "Proteins")
	assert.NotContains(t, strings.ToLower(shopping), "(dairy)")
	assert.Contains(t, shopping, "Shopping on a Low Budget")
	assert.Contains(t, shopping, "Buy dried beans, lentils, and whole grains in bulk")

	// Metadata title names the reader and the plan.
	assert.Contains(t, res.Trace.PageText(1), "Prepared for Jordan")
}

func TestGenerate_EmptyAnswersAndMinimalProfile(t *testing.T) {
	g := &Generator{Now: fixedClock}

	res, err := g.Generate(context.Background(), Request{
		Plan:    types.PlanRecovery,
		Profile: &types.UserProfile{Name: "Sam"},
	})
	require.NoError(t, err)
	assert.Greater(t, res.Pages, 5)
	// Moderate-tier fallback copy must appear when no budget was answered.
	assert.Contains(t, res.Trace.AllText(), "Shopping on a Moderate Budget")
}

func TestGenerate_NilProfile(t *testing.T) {
	pdf, err := Generate(context.Background(), types.PlanWellness, nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}
