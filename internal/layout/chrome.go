package layout

import "fmt"

// Brand palette. Headers use the PlantRx green; body copy stays near-black.
var (
	headerColor = [3]int{46, 94, 60}
	bodyColor   = [3]int{40, 40, 40}
	mutedColor  = [3]int{120, 120, 120}
)

// SectionHeader draws the fixed-position section title and underline at the
// top of the current page and positions the cursor below it.
func (c *Canvas) SectionHeader(title string) {
	if !c.composable() {
		return
	}
	c.pdf.SetY(marginTop)
	c.setTextColor(headerColor[0], headerColor[1], headerColor[2])
	c.writeLine(title, "B", 16, 9, "L")

	c.pdf.SetDrawColor(headerColor[0], headerColor[1], headerColor[2])
	c.pdf.SetLineWidth(0.5)
	y := c.pdf.GetY()
	c.pdf.Line(marginLeft, y, pageWidth-marginRight, y)

	c.setTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	c.pdf.SetY(y + lineHeight)
}

// drawFooterChrome stamps the standing footer on the current page: plan
// label and as-of date on the left. The right side of the baseline is
// reserved for the page-numbering pass.
func (c *Canvas) drawFooterChrome() {
	keepY := c.pdf.GetY()
	c.setFont("I", 8)
	c.setTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	c.pdf.SetXY(marginLeft, footerBaseline)
	footer := fmt.Sprintf("%s Guide  |  %s", c.meta.PlanLabel, c.meta.AsOf)
	c.pdf.CellFormat(contentWidth/2, lineHeight, c.tr(footer), "", 0, "L", false, 0, "")
	c.trace.record(TextRun{Page: c.pdf.PageNo(), Y: footerBaseline, Size: 8, Style: "I", Text: footer})
	c.setTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	c.pdf.SetY(keepY)
}

// StampPageNumbers is the finalization pass: it walks the buffered page
// range and overlays "Page N of Total" into the reserved footer region on
// every page except the cover. An empty page range is a no-op, and a failure
// on an individual page is logged and skipped — numbering never aborts a
// document whose content is already buffered.
func (c *Canvas) StampPageNumbers() {
	if c.err != nil {
		return
	}
	c.state = stateFinalizing

	total := c.pdf.PageCount()
	if total == 0 {
		return
	}

	c.setFont("I", 8)
	c.setTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	for page := 2; page <= total; page++ {
		c.pdf.SetPage(page)
		c.pdf.SetXY(marginLeft+contentWidth/2, footerBaseline)
		label := fmt.Sprintf("Page %d of %d", page, total)
		c.pdf.CellFormat(contentWidth/2, lineHeight, label, "", 0, "R", false, 0, "")
		if c.pdf.Err() {
			c.logf("layout: page numbering failed on page %d: %v", page, c.pdf.Error())
			c.pdf.ClearError()
			continue
		}
		c.trace.record(TextRun{Page: page, Y: footerBaseline, Size: 8, Style: "I", Text: label})
	}
	c.pdf.SetPage(total)
}

// TOCEntry is one computed table-of-contents row
type TOCEntry struct {
	Title string
	Page  int
}

// WriteTOCEntries fills the reserved table-of-contents page with computed
// section start pages. It relies on random access into the buffered page
// range, so it may run after every section has been rendered. Drawing state
// returns to the last page afterwards.
func (c *Canvas) WriteTOCEntries(tocPage int, entries []TOCEntry) {
	if !c.composable() {
		return
	}
	if tocPage < 1 || tocPage > c.pdf.PageCount() {
		c.logf("layout: table of contents page %d out of range", tocPage)
		return
	}

	last := c.pdf.PageCount()
	c.pdf.SetPage(tocPage)
	c.pdf.SetY(marginTop + 15)

	for _, entry := range entries {
		y := c.pdf.GetY()
		c.setFont("", 12)
		c.pdf.SetX(marginLeft)
		c.pdf.CellFormat(contentWidth-20, lineHeight+2, c.tr(entry.Title), "", 0, "L", false, 0, "")
		c.pdf.CellFormat(20, lineHeight+2, fmt.Sprintf("%d", entry.Page), "", 1, "R", false, 0, "")
		c.trace.record(TextRun{Page: tocPage, Y: y, Size: 12, Style: "", Text: fmt.Sprintf("%s .... %d", entry.Title, entry.Page)})
	}

	c.pdf.SetPage(last)
}
