// Package sections contains one renderer per guide section. Each renderer
// starts its own fresh page, draws the titled header, and emits its body
// through the layout engine's text-flow helper, so content that outgrows a
// page breaks cleanly without the renderer knowing where it started.
package sections

import (
	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/types"
)

// Inputs is the read-only context handed to every renderer
type Inputs struct {
	Plan         types.PlanType
	Profile      *types.UserProfile
	Answers      types.Answers
	AsOf         string
	DurationDays int
	// PersonalNote is optional pre-computed intro copy (AI-personalized or
	// fallback); empty means the assessment opens without one.
	PersonalNote string
}

// Renderer is a named body section in the canonical order
type Renderer struct {
	Title  string
	Render func(c *layout.Canvas, in Inputs)
}

// TOCTitle is the fixed title of the table-of-contents page
const TOCTitle = "Table of Contents"

// BodySections returns the canonical section order. The table of contents
// reports these titles with their computed start pages; reordering here
// reorders the whole guide.
func BodySections() []Renderer {
	return []Renderer{
		{Title: "Personal Assessment", Render: renderAssessment},
		{Title: "Daily Schedule", Render: renderSchedule},
		{Title: "Nutrition Plan", Render: renderNutrition},
		{Title: "Exercise Protocol", Render: renderExercise},
		{Title: "Shopping List", Render: renderShopping},
		{Title: "Progress Tracking", Render: renderTracking},
		{Title: "Troubleshooting", Render: renderTroubleshooting},
		{Title: "Advanced Strategies", Render: renderAdvanced},
		{Title: "Closing Notes", Render: renderClosing},
	}
}
