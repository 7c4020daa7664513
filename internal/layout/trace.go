package layout

import "strings"

// TextRun is one drawn line of text with its page and position. Runs are
// recorded in draw order, which for body content equals top-to-bottom order
// within a page.
type TextRun struct {
	Page  int
	Y     float64
	Size  float64
	Style string
	Text  string
}

// PageTrace holds the runs of a single page
type PageTrace struct {
	Runs []TextRun
}

// Trace is the recorded text content of a document, indexable by page. It
// exists so determinism, pagination, and numbering invariants can be checked
// without a PDF parser.
type Trace struct {
	Pages []PageTrace
}

// startPage begins recording a new page
func (t *Trace) startPage() {
	t.Pages = append(t.Pages, PageTrace{})
}

// record appends a run to its page. Runs stamped onto earlier pages during
// finalization land on the page they name, not the last page.
func (t *Trace) record(run TextRun) {
	for run.Page > len(t.Pages) {
		t.Pages = append(t.Pages, PageTrace{})
	}
	if run.Page < 1 {
		return
	}
	idx := run.Page - 1
	t.Pages[idx].Runs = append(t.Pages[idx].Runs, run)
}

// PageCount returns the number of recorded pages
func (t *Trace) PageCount() int { return len(t.Pages) }

// PageText returns the concatenated text of a 1-indexed page, one run per
// line. Out-of-range pages return "".
func (t *Trace) PageText(page int) string {
	if page < 1 || page > len(t.Pages) {
		return ""
	}
	var sb strings.Builder
	for _, run := range t.Pages[page-1].Runs {
		sb.WriteString(run.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AllText returns the full document text in page order
func (t *Trace) AllText() string {
	var sb strings.Builder
	for i := range t.Pages {
		sb.WriteString(t.PageText(i + 1))
	}
	return sb.String()
}

// Contains reports whether any run in the document contains substr
func (t *Trace) Contains(substr string) bool {
	return strings.Contains(t.AllText(), substr)
}

// FindPage returns the first 1-indexed page whose text contains substr, or 0
func (t *Trace) FindPage(substr string) int {
	for i := range t.Pages {
		if strings.Contains(t.PageText(i+1), substr) {
			return i + 1
		}
	}
	return 0
}

// MaxY returns the largest cursor position drawn on a 1-indexed page
func (t *Trace) MaxY(page int) float64 {
	if page < 1 || page > len(t.Pages) {
		return 0
	}
	var max float64
	for _, run := range t.Pages[page-1].Runs {
		if run.Y > max {
			max = run.Y
		}
	}
	return max
}
