package layout

import "strings"

// Markup conventions consumed by AddFormattedContent. Section renderers
// build plain text in this convention rather than issuing draw calls
// directly, which keeps typography and pagination behavior identical across
// every section.
//
//	**Header**     bold sub-section header
//	*Subheader*    italic emphasis line
//	- item         bulleted list item
//	[ ] item       checklist item
//	(blank line)   half-line spacing
//	anything else  body paragraph
const (
	boldMarker  = "**"
	italMarker  = "*"
	bulletGlyph = "•"
)

// AddFormattedContent walks content line by line, advancing the vertical
// cursor a fixed line height per rendered line and breaking to a new page
// whenever the cursor would cross the printable bottom. Long lines wrap to
// the content width before pagination is applied, so a single logical line
// can span a page boundary without overlap or truncation.
func (c *Canvas) AddFormattedContent(content string) {
	if !c.composable() {
		return
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			c.Spacer(0.5)

		case isWrapped(trimmed, boldMarker):
			text := strings.TrimSuffix(strings.TrimPrefix(trimmed, boldMarker), boldMarker)
			c.ensureRoom(lineHeight + 3)
			c.Spacer(0.35)
			c.setTextColor(headerColor[0], headerColor[1], headerColor[2])
			c.flowText(text, "B", 12.5)
			c.setTextColor(bodyColor[0], bodyColor[1], bodyColor[2])

		case isWrapped(trimmed, italMarker):
			text := strings.TrimSuffix(strings.TrimPrefix(trimmed, italMarker), italMarker)
			c.flowText(text, "I", 11)

		case strings.HasPrefix(trimmed, "- "):
			c.flowIndented(bulletGlyph+" "+strings.TrimPrefix(trimmed, "- "), "", 10.5)

		case strings.HasPrefix(trimmed, "[ ] "):
			c.flowIndented("[  ] "+strings.TrimPrefix(trimmed, "[ ] "), "", 10.5)

		default:
			c.flowText(trimmed, "", 10.5)
		}
	}
}

// isWrapped reports whether s is enclosed in marker with content between
func isWrapped(s, marker string) bool {
	return len(s) > 2*len(marker) &&
		strings.HasPrefix(s, marker) &&
		strings.HasSuffix(s, marker)
}

// flowText wraps text to the content width and writes each physical line
// with pagination applied per line
func (c *Canvas) flowText(text, style string, size float64) {
	c.setFont(style, size)
	for _, line := range c.pdf.SplitText(text, contentWidth) {
		c.ensureRoom(lineHeight)
		c.writeLine(line, style, size, lineHeight, "L")
	}
}

// flowIndented renders a list item with hanging indentation: wrapped
// continuation lines align under the item text, not the glyph.
func (c *Canvas) flowIndented(text, style string, size float64) {
	const indent = 6.0
	c.setFont(style, size)
	lines := c.pdf.SplitText(text, contentWidth-indent)
	for i, line := range lines {
		c.ensureRoom(lineHeight)
		if !c.composable() {
			return
		}
		y := c.pdf.GetY()
		x := marginLeft
		if i > 0 {
			x += indent
		}
		c.pdf.SetX(x)
		c.pdf.CellFormat(contentWidth-(x-marginLeft), lineHeight, c.tr(line), "", 1, "L", false, 0, "")
		c.trace.record(TextRun{Page: c.pdf.PageNo(), Y: y, Size: size, Style: style, Text: line})
	}
}
