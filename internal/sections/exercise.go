package sections

import (
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderExercise(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Exercise Protocol")

	plan := selection.GenerateWorkoutPlan(in.Profile, in.Answers)

	var sb strings.Builder
	sb.WriteString("**" + plan.Protocol + "**\n")
	sb.WriteString(plan.Summary + "\n\n")

	for _, day := range plan.Days {
		sb.WriteString("*" + day.Day + " — " + day.Focus + "*\n")
		for _, exercise := range day.Exercises {
			sb.WriteString("- " + exercise + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("**Effort Guide**\n")
	sb.WriteString("Work at an effort where you could still speak in short sentences. ")
	sb.WriteString("Sharp pain means stop; next-day stiffness that fades with movement is normal.\n")

	c.AddFormattedContent(sb.String())
}
