package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposingCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := NewCanvas(testMetadata())
	require.NoError(t, err)
	c.NewPage()
	return c
}

func TestAddFormattedContent_Classification(t *testing.T) {
	c := newComposingCanvas(t)

	c.AddFormattedContent("**Morning Routine**\n*Start slow*\n- drink water\n[ ] stretch for five minutes\nA plain paragraph line.")

	runs := c.Trace().Pages[0].Runs
	require.GreaterOrEqual(t, len(runs), 6) // footer chrome + 5 content runs

	byText := map[string]TextRun{}
	for _, run := range runs {
		byText[run.Text] = run
	}

	header, ok := byText["Morning Routine"]
	require.True(t, ok)
	assert.Equal(t, "B", header.Style)

	sub, ok := byText["Start slow"]
	require.True(t, ok)
	assert.Equal(t, "I", sub.Style)

	_, ok = byText["• drink water"]
	assert.True(t, ok, "bullet glyph missing")

	_, ok = byText["[  ] stretch for five minutes"]
	assert.True(t, ok, "checklist item missing")

	para, ok := byText["A plain paragraph line."]
	require.True(t, ok)
	assert.Equal(t, "", para.Style)
}

func TestAddFormattedContent_AutoPageBreak(t *testing.T) {
	c := newComposingCanvas(t)

	var sb strings.Builder
	for i := 0; i < 120; i++ {
		sb.WriteString("Line of body content that advances the cursor.\n")
	}
	c.AddFormattedContent(sb.String())

	trace := c.Trace()
	require.Greater(t, trace.PageCount(), 1, "120 lines must overflow a single page")

	// Pagination invariant: no run may start beyond the printable bottom.
	for page := 1; page <= trace.PageCount(); page++ {
		for _, run := range trace.Pages[page-1].Runs {
			if run.Y == FooterBaseline {
				continue // footer chrome lives below the printable area by design
			}
			assert.LessOrEqual(t, run.Y, PrintableBottom, "page %d run %q overflows", page, run.Text)
		}
	}
}

func TestAddFormattedContent_LongLineWraps(t *testing.T) {
	c := newComposingCanvas(t)

	long := strings.Repeat("sustainably sourced ingredients ", 30)
	c.AddFormattedContent(long)

	runs := c.Trace().Pages[0].Runs
	var contentRuns int
	for _, run := range runs {
		if run.Y != FooterBaseline {
			contentRuns++
		}
	}
	assert.Greater(t, contentRuns, 1, "long line did not wrap")
}

func TestAddFormattedContent_BlankLinesOnlyAdvanceCursor(t *testing.T) {
	c := newComposingCanvas(t)
	before := c.Y()

	c.AddFormattedContent("\n\n")

	assert.Greater(t, c.Y(), before)
	var contentRuns int
	for _, run := range c.Trace().Pages[0].Runs {
		if run.Y != FooterBaseline {
			contentRuns++
		}
	}
	assert.Zero(t, contentRuns)
}

func TestSectionHeader_DrawsTitleAtTop(t *testing.T) {
	c := newComposingCanvas(t)

	c.SectionHeader("Nutrition Plan")

	runs := c.Trace().Pages[0].Runs
	var found bool
	for _, run := range runs {
		if run.Text == "Nutrition Plan" {
			found = true
			assert.Equal(t, "B", run.Style)
			assert.InDelta(t, 20.0, run.Y, 0.01)
		}
	}
	assert.True(t, found)
}
