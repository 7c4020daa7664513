package validation

import (
	"fmt"
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
)

// CheckOverflow scans a trace for runs drawn past the printable bottom.
// Footer chrome lives below the printable area on purpose and is ignored.
func CheckOverflow(trace *layout.Trace) []Violation {
	var violations []Violation
	for page := 1; page <= trace.PageCount(); page++ {
		for _, run := range trace.Pages[page-1].Runs {
			if run.Y == layout.FooterBaseline {
				continue
			}
			if run.Y > layout.PrintableBottom {
				violations = append(violations, Violation{
					Rule:   "overflow",
					Page:   page,
					Detail: fmt.Sprintf("run %q starts at %.1fmm, past the printable bottom (%.1fmm)", truncate(run.Text, 40), run.Y, layout.PrintableBottom),
				})
			}
		}
	}
	return violations
}

// CheckPageNumbering verifies every page except the cover carries its
// "Page N of Total" stamp after finalization.
func CheckPageNumbering(trace *layout.Trace) []Violation {
	total := trace.PageCount()
	var violations []Violation
	for page := 2; page <= total; page++ {
		want := fmt.Sprintf("Page %d of %d", page, total)
		if !strings.Contains(trace.PageText(page), want) {
			violations = append(violations, Violation{
				Rule:   "page-numbering",
				Page:   page,
				Detail: fmt.Sprintf("missing %q", want),
			})
		}
	}
	if total > 0 && strings.Contains(trace.PageText(1), "Page 1 of") {
		violations = append(violations, Violation{
			Rule:   "page-numbering",
			Page:   1,
			Detail: "cover page must stay unnumbered",
		})
	}
	return violations
}

// CheckTOC verifies each declared section start page actually contains that
// section's header text.
func CheckTOC(trace *layout.Trace, declared map[string]int) []Violation {
	var violations []Violation
	for title, page := range declared {
		if !strings.Contains(trace.PageText(page), title) {
			violations = append(violations, Violation{
				Rule:    "toc-consistency",
				Section: title,
				Page:    page,
				Detail:  fmt.Sprintf("table of contents declares page %d but the header is not there", page),
			})
		}
	}
	return violations
}

// truncate shortens s for violation messages
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
