package sections

import (
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderNutrition(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Nutrition Plan")

	meals := selection.GoalFoods(in.Profile, in.Answers)
	supplements := selection.BuildSupplementPlan(in.Plan, in.Profile)

	var sb strings.Builder
	sb.WriteString("*" + meals.Focus + "*\n\n")

	writeMealBlock(&sb, "Breakfast Options", meals.Breakfast)
	writeMealBlock(&sb, "Lunch Options", meals.Lunch)
	writeMealBlock(&sb, "Dinner Options", meals.Dinner)
	writeMealBlock(&sb, "Snack Options", meals.Snacks)

	sb.WriteString("**Supplement Support**\n")
	for _, s := range supplements.Supplements {
		line := "- " + s.Name + ": " + s.Dose + ", " + s.Timing
		if s.Note != "" {
			line += " (" + s.Note + ")"
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n*" + supplements.Caution + "*\n")

	c.AddFormattedContent(sb.String())
}

// writeMealBlock emits one titled list of meal options
func writeMealBlock(sb *strings.Builder, title string, items []string) {
	sb.WriteString("**" + title + "**\n")
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
	sb.WriteString("\n")
}
