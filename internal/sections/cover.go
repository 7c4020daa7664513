package sections

import (
	"fmt"

	"github.com/plantrx/guide-engine/internal/layout"
)

// RenderCover draws the unnumbered cover page: plan title, reader name,
// duration, and the as-of date.
func RenderCover(c *layout.Canvas, in Inputs) {
	c.NewUnnumberedPage()

	c.Spacer(10)
	c.Centered("PlantRx", "B", 14, 8)
	c.Centered("Natural Health, Personalized", "I", 10, 6)
	c.Spacer(6)
	c.Centered(in.Plan.Title(), "B", 28, 14)
	c.Centered("Transformation Guide", "", 18, 10)
	c.Spacer(4)
	c.Centered(fmt.Sprintf("Prepared for %s", in.Profile.DisplayName()), "", 14, 8)
	c.Centered(fmt.Sprintf("Program length: %s", in.Profile.DurationLabel()), "I", 12, 7)
	c.Spacer(12)
	c.Centered(in.AsOf, "", 10, 6)
}

// RenderTOCPlaceholder reserves the table-of-contents page. The entries are
// written back into this page after every section has rendered, once the
// real start pages are known.
func RenderTOCPlaceholder(c *layout.Canvas) {
	c.NewPage()
	c.SectionHeader(TOCTitle)
}
