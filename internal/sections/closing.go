package sections

import (
	"fmt"
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
)

func renderClosing(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Closing Notes")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s, this guide was assembled for you — your goals, your constraints, your starting point. ", in.Profile.DisplayName()))
	sb.WriteString(fmt.Sprintf("The next %d days are built from small, repeatable choices, and every one of them is already written down in these pages.\n\n", in.DurationDays))

	sb.WriteString("**If You Remember Three Things**\n")
	sb.WriteString("- Consistency beats intensity: the smallest daily version of the plan outperforms the perfect occasional one.\n")
	sb.WriteString("- The schedule is the plan: when in doubt, just do the next item on today's list.\n")
	sb.WriteString("- Review weekly, adjust one thing: the plan should fit your life better every week, not the reverse.\n\n")

	sb.WriteString("**A Note on Natural Health**\n")
	sb.WriteString("Natural approaches complement professional care; they do not replace it. ")
	sb.WriteString("Bring this guide to your healthcare provider if you are managing a diagnosed condition or taking prescription medication.\n\n")

	sb.WriteString("*The PlantRx community is rooting for you. Here's to the transformation ahead.*\n")

	c.AddFormattedContent(sb.String())
}
