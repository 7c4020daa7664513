package sections

import (
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderAdvanced(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Advanced Strategies")

	strategies := selection.AdvancedStrategies(in.Plan)

	var sb strings.Builder
	sb.WriteString("*Earn these: add nothing from this page until the base plan has run smoothly for two consecutive weeks.*\n\n")

	sb.WriteString("**Leveling Up**\n")
	for _, strategy := range strategies {
		sb.WriteString("- " + strategy + "\n")
	}

	sb.WriteString("\n**One at a Time**\n")
	sb.WriteString("Introduce a single strategy per week. Stacking several at once makes it impossible to know what is working — and guarantees something gets dropped.\n")

	c.AddFormattedContent(sb.String())
}
