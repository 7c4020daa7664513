package sections

import (
	"fmt"
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderSchedule(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Daily Schedule")

	schedule := selection.BuildDailySchedule(in.Plan, in.Profile, in.Answers)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Your template for each of the next %d days. Times are anchors, not rules — keep the order and spacing even when the clock shifts.\n\n", in.DurationDays))

	sb.WriteString("**Your Day at a Glance**\n")
	for _, slot := range schedule.Slots {
		line := fmt.Sprintf("- %s: %s", slot.Time, slot.Activity)
		if slot.Detail != "" {
			line += " — " + slot.Detail
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n**Weekly Rhythm**\n")
	sb.WriteString("Six days on the template, one flexible day. Pick the flexible day in advance; an unplanned off-day becomes an off-week.\n")

	c.AddFormattedContent(sb.String())
}
