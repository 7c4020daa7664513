package selection

import (
	"fmt"
	"strings"

	"github.com/plantrx/guide-engine/internal/types"
)

// AssessmentNotes builds the personal assessment paragraphs from the profile
// and answers. Every branch degrades to neutral copy when data is missing,
// so the section is never empty.
func AssessmentNotes(profile *types.UserProfile, answers types.Answers) []string {
	notes := make([]string, 0, 6)

	if goal := profile.PrimaryGoal(); goal != "" {
		notes = append(notes, fmt.Sprintf("Your primary goal is to %s. Every section of this guide was selected with that in mind.", goal))
	} else {
		notes = append(notes, "You have not named a single primary goal, so this guide takes a balanced approach across nutrition, movement, and rest.")
	}

	if len(profile.Goals) > 1 {
		notes = append(notes, fmt.Sprintf("Secondary goals noted: %s. These influence the supporting recommendations but the plan stays focused on your first priority.", strings.Join(profile.Goals[1:], ", ")))
	}

	if len(profile.HealthConcerns) > 0 {
		notes = append(notes, fmt.Sprintf("Health considerations on record: %s. Targeted support for these appears in the supplement and troubleshooting sections.", strings.Join(profile.HealthConcerns, ", ")))
	}

	switch {
	case containsFold(profile.Experience, "begin"):
		notes = append(notes, "As a beginner, your first two weeks prioritize consistency over intensity. Doing less, daily, beats doing everything occasionally.")
	case containsFold(profile.Experience, "advanced"):
		notes = append(notes, "With your experience level, the baseline recommendations will feel easy — use the Advanced Strategies section to raise the ceiling.")
	default:
		notes = append(notes, "The plan assumes a moderate starting point; scale any recommendation up or down so it feels sustainable.")
	}

	if cook := answers.String("cooking_time"); cook != "" {
		notes = append(notes, fmt.Sprintf("You indicated about %s available for cooking, and the meal suggestions respect that constraint.", cook))
	}

	notes = append(notes, fmt.Sprintf("This is a %s program. Results compound: the final week should look noticeably different from the first.", profile.DurationLabel()))
	return notes
}

// AdvancedStrategies returns the deeper-practice recommendations for readers
// who have the basics locked in
func AdvancedStrategies(plan types.PlanType) []string {
	common := []string{
		"Run a weekly review: ten minutes every Sunday scoring the week and adjusting one variable.",
		"Teach the plan to someone else — explaining it locks the habits in.",
	}

	byPlan := map[types.PlanType][]string{
		types.PlanDiet:     {"Try a 12-hour overnight eating window before experimenting with longer fasts.", "Add one new vegetable or fermented food each week.", "Learn to read labels: ignore front-of-pack claims, read the ingredient list."},
		types.PlanFitness:  {"Add one weekly session at a genuinely challenging intensity once the base week feels routine.", "Film one movement per week and compare form month to month.", "Periodize: every fourth week, cut volume in half and let adaptation catch up."},
		types.PlanSkincare: {"Introduce a weekly gentle exfoliation once the base routine is stable for a month.", "Track ingredient responses in a note — your skin's patterns beat any general advice."},
		types.PlanWellness: {"Extend one mindful session per week to twenty minutes.", "Add a weekly digital sabbath: half a day, no feeds.", "Keep a three-line evening journal: one win, one lesson, one intention."},
		types.PlanRecovery: {"Layer in contrast therapy (warm shower ending cool) once baseline soreness resolves.", "Schedule a monthly massage or self-myofascial session.", "Reintroduce load in 10% weekly increments, never skipping a step."},
	}

	return append(common, byPlan[plan]...)
}
