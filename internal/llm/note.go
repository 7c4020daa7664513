package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/plantrx/guide-engine/internal/types"
)

// maxNoteLength caps generated notes so they cannot blow up the cover copy
const maxNoteLength = 600

// PersonalNote composes a short encouraging intro note for the guide cover.
// With a nil client, or on any generation failure, it falls back to static
// copy so note generation can never block a guide.
func PersonalNote(ctx context.Context, client Client, plan types.PlanType, profile *types.UserProfile) string {
	fallback := staticNote(plan, profile)
	if client == nil {
		return fallback
	}

	note, err := client.GenerateContent(ctx, notePrompt(plan, profile))
	if err != nil {
		log.Printf("personal note generation failed, using static copy: %v", err)
		return fallback
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return fallback
	}
	if len(note) > maxNoteLength {
		note = note[:maxNoteLength]
		if idx := strings.LastIndex(note, "."); idx > 0 {
			note = note[:idx+1]
		}
	}
	return note
}

// notePrompt builds the generation prompt from the profile facts
func notePrompt(plan types.PlanType, profile *types.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("Write a warm, encouraging 2-3 sentence welcome note for the cover of a personalized natural health guide. ")
	sb.WriteString("Plain text only, no markdown, no emojis, no sign-off.\n\n")
	sb.WriteString(fmt.Sprintf("Program: %s\n", plan.Title()))
	sb.WriteString(fmt.Sprintf("Reader: %s\n", profile.DisplayName()))
	sb.WriteString(fmt.Sprintf("Program length: %s\n", profile.DurationLabel()))
	if goal := profile.PrimaryGoal(); goal != "" {
		sb.WriteString(fmt.Sprintf("Primary goal: %s\n", goal))
	}
	return sb.String()
}

// staticNote is the deterministic fallback used without an API key
func staticNote(plan types.PlanType, profile *types.UserProfile) string {
	return fmt.Sprintf(
		"Welcome, %s. This %s program was put together around your answers, one practical step at a time. Small consistent changes beat dramatic overhauls, so settle in and work at your own pace.",
		profile.DisplayName(), plan.Title())
}
