package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plantrx/guide-engine/internal/guide"
	"github.com/plantrx/guide-engine/internal/types"
	"github.com/plantrx/guide-engine/internal/validation"
)

func TestPrintGuideSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := &guide.Result{
		PDF:   bytes.Repeat([]byte("x"), 2048),
		Pages: 12,
		Sections: []guide.SectionPage{
			{Title: "Personal Assessment", Page: 3},
			{Title: "Nutrition Plan", Page: 5},
		},
	}
	profile := &types.UserProfile{Name: "Jordan", Duration: "60 days"}

	p.PrintGuideSummary(types.PlanDiet, profile, res)
	output := buf.String()

	assert.Contains(t, output, "GUIDE SUMMARY")
	assert.Contains(t, output, "Natural Diet & Nutrition")
	assert.Contains(t, output, "Jordan")
	assert.Contains(t, output, "60 days")
	assert.Contains(t, output, "Personal Assessment")
	assert.Contains(t, output, "Nutrition Plan")
}

func TestPrintGuideSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGuideSummary(types.PlanDiet, nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintWorkoutPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &types.WorkoutPlan{
		Protocol: "Mindful Movement Practice",
		Summary:  "Gentle daily movement with an emphasis on breath work.",
		Days: []types.WorkoutDay{
			{Day: "Monday", Focus: "Morning yoga flow"},
			{Day: "Tuesday", Focus: "Walking meditation"},
		},
	}

	p.PrintWorkoutPlan(plan)
	output := buf.String()

	assert.Contains(t, output, "SELECTED EXERCISE PROTOCOL")
	assert.Contains(t, output, "Mindful Movement Practice")
	assert.Contains(t, output, "Monday")
	assert.Contains(t, output, "Walking meditation")
}

func TestPrintWorkoutPlan_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWorkoutPlan(nil)

	assert.Empty(t, buf.String())
}

func TestPrintShoppingList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	list := &types.ShoppingList{
		Categories: []types.ShoppingCategory{
			{Name: "Proteins", Items: []string{"Lentils", "Chickpeas", "Wild salmon", "Organic eggs"}},
			{Name: "Vegetables", Items: []string{"Spinach"}},
		},
	}

	p.PrintShoppingList(list)
	output := buf.String()

	assert.Contains(t, output, "SHOPPING LIST")
	assert.Contains(t, output, "5 items in 2 categories")
	assert.Contains(t, output, "Proteins (4)")
	assert.Contains(t, output, "and 1 more")
	assert.Contains(t, output, "Spinach")
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)

	assert.Contains(t, buf.String(), "NO LAYOUT VIOLATIONS FOUND")
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations([]validation.Violation{
		{Rule: "overflow", Page: 4, Detail: "run starts past the printable bottom"},
		{Rule: "page-numbering", Page: 6, Detail: "missing stamp"},
	})
	output := buf.String()

	assert.Contains(t, output, "LAYOUT VIOLATIONS")
	assert.Contains(t, output, "Found 2 violations")
	assert.Contains(t, output, "overflow (page 4)")
	assert.Contains(t, output, "page-numbering (page 6)")
}
