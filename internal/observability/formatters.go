// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/plantrx/guide-engine/internal/guide"
	"github.com/plantrx/guide-engine/internal/types"
	"github.com/plantrx/guide-engine/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGuideSummary outputs the assembled document's shape: plan, page
// count, and where each section landed.
func (p *Printer) PrintGuideSummary(plan types.PlanType, profile *types.UserProfile, res *guide.Result) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Plan:     %s\n", plan.Title()))
	sb.WriteString(fmt.Sprintf("For:      %s\n", profile.DisplayName()))
	sb.WriteString(fmt.Sprintf("Length:   %s\n", profile.DurationLabel()))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", res.Pages))
	sb.WriteString(fmt.Sprintf("Size:     %.1f KB\n", float64(len(res.PDF))/1024))
	sb.WriteString("\n")

	if len(res.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range res.Sections {
			sb.WriteString(fmt.Sprintf("  p.%-3d %s\n", section.Page, section.Title))
		}
	}

	p.printBox("GUIDE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWorkoutPlan outputs the selected exercise protocol.
func (p *Printer) PrintWorkoutPlan(plan *types.WorkoutPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Protocol: %s\n", plan.Protocol))

	summary := plan.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))

	if len(plan.Days) > 0 {
		sb.WriteString("\nDays:\n")
		count := min(len(plan.Days), maxItemsToShow)
		for i := 0; i < count; i++ {
			day := plan.Days[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", day.Day, day.Focus))
		}
		if len(plan.Days) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(plan.Days)-maxItemsToShow))
		}
	}

	p.printBox("SELECTED EXERCISE PROTOCOL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShoppingList outputs the categorized grocery recommendations.
func (p *Printer) PrintShoppingList(list *types.ShoppingList) {
	if list == nil || len(list.Categories) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for _, category := range list.Categories {
		total += len(category.Items)
	}
	sb.WriteString(fmt.Sprintf("%d items in %d categories:\n\n", total, len(list.Categories)))

	for i, category := range list.Categories {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", category.Name, len(category.Items)))
		count := min(len(category.Items), 3)
		for j := 0; j < count; j++ {
			item := category.Items[j]
			if len(item) > 45 {
				item = item[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(category.Items) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(category.Items)-3))
		}
		if i < len(list.Categories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SHOPPING LIST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any layout check violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []validation.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO LAYOUT VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		detail := v.Detail
		if len(detail) > 45 {
			detail = detail[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (page %d)\n", v.Rule, v.Page))
		sb.WriteString(fmt.Sprintf("  %s\n", detail))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LAYOUT VIOLATIONS", sb.String())
}
