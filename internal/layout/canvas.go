// Package layout provides the shared drawing and pagination primitives every
// section renderer funnels through: a gofpdf-backed canvas with a monotonic
// vertical cursor, automatic page breaks, consistent chrome (section headers,
// footers), and the two-pass page-numbering finalization. A parallel text
// trace records every drawn run so document-level invariants can be checked
// without parsing PDF bytes.
package layout

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry constants, in mm on Letter portrait. lineHeight and
// printableBottom are document-wide invariants: every renderer's content
// flows through them, so changing either reflows the entire guide.
const (
	pageWidth       = 215.9
	pageHeight      = 279.4
	marginLeft      = 15.0
	marginRight     = 15.0
	marginTop       = 20.0
	contentWidth    = pageWidth - marginLeft - marginRight
	lineHeight      = 6.0
	printableBottom = 256.0
	footerBaseline  = 266.0
)

// fontFamily is the single family used throughout the guide
const fontFamily = "Helvetica"

// Exported geometry for packages that check layout invariants against the
// recorded trace.
const (
	LineHeight      = lineHeight
	PrintableBottom = printableBottom
	FooterBaseline  = footerBaseline
)

// Metadata carries the document-level properties embedded at construction
type Metadata struct {
	Title     string
	Author    string
	Subject   string
	Keywords  string
	PlanLabel string
	AsOf      string
	CreatedAt time.Time
}

// state tracks the canvas lifecycle. Transitions only move forward:
// Open -> Composing -> Finalizing -> Closed.
type state int

const (
	stateOpen state = iota
	stateComposing
	stateFinalizing
	stateClosed
)

// Canvas wraps a single in-flight PDF document. A canvas is exclusively
// owned by one generation call; it is not safe for concurrent use.
type Canvas struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	meta  Metadata
	trace *Trace
	state state
	err   error
	logf  func(format string, args ...any)
}

// NewCanvas opens a document with the given metadata. Malformed metadata
// (an empty title or author) is the construction failure mode and the only
// error this package escalates to callers.
func NewCanvas(meta Metadata) (*Canvas, error) {
	if meta.Title == "" {
		return nil, fmt.Errorf("canvas metadata: title is required")
	}
	if meta.Author == "" {
		return nil, fmt.Errorf("canvas metadata: author is required")
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetKeywords(meta.Keywords, true)
	pdf.SetCreator(meta.Author, true)
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
	}
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	// Page breaks are managed by the cursor logic below, never by gofpdf.
	pdf.SetAutoPageBreak(false, 0)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("canvas construction: %w", err)
	}

	return &Canvas{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		meta:  meta,
		trace: &Trace{},
		state: stateOpen,
		logf:  log.Printf,
	}, nil
}

// Trace returns the recorded text runs. Valid at any point; the trace only
// grows while composing.
func (c *Canvas) Trace() *Trace { return c.trace }

// PageCount returns the number of buffered pages so far
func (c *Canvas) PageCount() int { return c.pdf.PageCount() }

// CurrentPage returns the 1-indexed page currently being drawn
func (c *Canvas) CurrentPage() int { return c.pdf.PageNo() }

// Y returns the current vertical cursor position
func (c *Canvas) Y() float64 { return c.pdf.GetY() }

// composable reports whether draw operations are still allowed, recording a
// sticky error on the first violation
func (c *Canvas) composable() bool {
	if c.err != nil {
		return false
	}
	if c.state >= stateFinalizing {
		c.err = fmt.Errorf("layout: draw operation after finalization")
		return false
	}
	return true
}

// NewUnnumberedPage starts a fresh page with no footer chrome. Used for the
// cover, which is deliberately unnumbered.
func (c *Canvas) NewUnnumberedPage() {
	if !c.composable() {
		return
	}
	c.state = stateComposing
	c.pdf.AddPage()
	c.trace.startPage()
	c.pdf.SetY(marginTop)
}

// NewPage starts a fresh content page, draws the standing footer (plan label
// and as-of date; the right segment stays reserved for the numbering pass),
// and resets the cursor to the top margin.
func (c *Canvas) NewPage() {
	if !c.composable() {
		return
	}
	c.state = stateComposing
	c.pdf.AddPage()
	c.trace.startPage()
	c.drawFooterChrome()
	c.pdf.SetY(marginTop)
}

// ensureRoom starts a new content page when h more millimeters would cross
// the printable bottom. This is the pagination invariant: the cursor only
// ever moves down, and overflow always breaks to a fresh page.
func (c *Canvas) ensureRoom(h float64) {
	if c.pdf.GetY()+h > printableBottom {
		c.NewPage()
	}
}

// setFont applies family-consistent font state
func (c *Canvas) setFont(style string, size float64) {
	c.pdf.SetFont(fontFamily, style, size)
}

// writeLine draws one line of text at the current cursor in the given style,
// advancing the cursor by advance millimeters. All body drawing funnels
// through here so the trace stays complete.
func (c *Canvas) writeLine(text, style string, size, advance float64, align string) {
	if !c.composable() {
		return
	}
	c.setFont(style, size)
	y := c.pdf.GetY()
	c.pdf.SetX(marginLeft)
	c.pdf.CellFormat(contentWidth, advance, c.tr(text), "", 1, align, false, 0, "")
	c.trace.record(TextRun{Page: c.pdf.PageNo(), Y: y, Size: size, Style: style, Text: text})
}

// Centered draws a horizontally centered line, used by the cover renderer
func (c *Canvas) Centered(text, style string, size, advance float64) {
	c.ensureRoom(advance)
	c.writeLine(text, style, size, advance, "C")
}

// Spacer advances the cursor by n line heights without drawing
func (c *Canvas) Spacer(n float64) {
	if !c.composable() {
		return
	}
	c.pdf.SetY(c.pdf.GetY() + n*lineHeight)
}

// setTextColor switches the drawing color for subsequent text
func (c *Canvas) setTextColor(r, g, b int) {
	c.pdf.SetTextColor(r, g, b)
}

// Close finalizes the document and resolves the byte buffer. The canvas is
// unusable afterwards; Closed is terminal.
func (c *Canvas) Close() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.state = stateClosed
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("canvas close: %w", err)
	}
	return buf.Bytes(), nil
}
