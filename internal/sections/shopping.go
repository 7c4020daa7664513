package sections

import (
	"strings"

	"github.com/plantrx/guide-engine/internal/layout"
	"github.com/plantrx/guide-engine/internal/selection"
)

func renderShopping(c *layout.Canvas, in Inputs) {
	c.NewPage()
	c.SectionHeader("Shopping List")

	list := selection.BuildShoppingList(in.Plan, in.Profile, in.Answers)
	budget := selection.GetBudgetTips(in.Answers)

	var sb strings.Builder
	sb.WriteString("One trip covers a full week of the nutrition plan. Items already excluded for your stated restrictions.\n\n")

	for _, category := range list.Categories {
		sb.WriteString("**" + category.Name + "**\n")
		for _, item := range category.Items {
			sb.WriteString("[ ] " + item + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("**Shopping on a " + capitalize(budget.Tier) + " Budget**\n")
	for _, tip := range budget.Tips {
		sb.WriteString("- " + tip + "\n")
	}

	c.AddFormattedContent(sb.String())
}

// capitalize upper-cases the first letter of an ASCII word
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
