package sections

import (
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderTroubleshooting(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Troubleshooting")

	guide := selection.BuildTroubleshooting(in.Plan)

	var sb strings.Builder
	sb.WriteString("Every plan meets friction. These are the obstacles readers hit most, with the fixes that actually work.\n\n")

	for _, entry := range guide.Entries {
		sb.WriteString("**" + entry.Problem + "**\n")
		for _, fix := range entry.Fixes {
			sb.WriteString("- " + fix + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("*Still stuck after two weeks of honest effort? The plan is the wrong size, not you — scale every recommendation down by half and rebuild from there.*\n")

	c.AddFormattedContent(sb.String())
}
