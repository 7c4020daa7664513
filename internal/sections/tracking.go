package sections

import (
	"fmt"
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderTracking(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Progress Tracking")

	tracking := selection.BuildTrackingPlan(in.Plan)

	var sb strings.Builder
	sb.WriteString("What gets measured gets managed. Track only the metrics below — more data does not mean more progress.\n\n")

	sb.WriteString("**Your Metrics**\n")
	for _, metric := range tracking.Metrics {
		sb.WriteString(fmt.Sprintf("- %s — %s. Target: %s\n", metric.Name, metric.Frequency, metric.Target))
	}

	weeks := (in.DurationDays + 6) / 7
	sb.WriteString("\n**Review Points**\n")
	sb.WriteString(fmt.Sprintf("Your %d-day program breaks into %d weekly reviews. At each one, score the week 1-10, note the single biggest obstacle, and adjust one variable only.\n\n", in.DurationDays, weeks))

	sb.WriteString("**What Progress Actually Looks Like**\n")
	sb.WriteString("Expect a motivated first week, a difficult second week, and visible momentum from week three. ")
	sb.WriteString("Judge the program by the trend across weeks, never by any single day.\n")

	c.AddFormattedContent(sb.String())
}
