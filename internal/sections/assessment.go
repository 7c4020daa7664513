package sections

import (
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderAssessment(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Personal Assessment")

	var sb strings.Builder
	if in.PersonalNote != "" {
		sb.WriteString("*" + in.PersonalNote + "*\n\n")
	}

	sb.WriteString("**Where You Are Starting From**\n")
	for _, note := range selection.AssessmentNotes(in.Profile, in.Answers) {
		sb.WriteString(note + "\n\n")
	}

	sb.WriteString("**How To Use This Guide**\n")
	sb.WriteString("Read the Daily Schedule and Nutrition Plan first; those two sections carry most of the results. ")
	sb.WriteString("The remaining sections are reference material — return to them as questions come up rather than reading front to back.\n")

	c.AddFormattedContent(sb.String())
}
