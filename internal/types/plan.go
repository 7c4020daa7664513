// Package types provides type definitions for structured data used throughout the guide engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// PlanType identifies one of the five guide categories
type PlanType string

// Plan type constants define the closed set of guide categories
const (
	// PlanDiet is the nutrition-focused guide
	PlanDiet PlanType = "diet"
	// PlanFitness is the exercise-focused guide
	PlanFitness PlanType = "fitness"
	// PlanSkincare is the skin-health guide
	PlanSkincare PlanType = "skincare"
	// PlanWellness is the general wellbeing guide
	PlanWellness PlanType = "wellness"
	// PlanRecovery is the rest-and-recovery guide
	PlanRecovery PlanType = "recovery"
)

// AllPlanTypes lists every valid plan type in canonical order
var AllPlanTypes = []PlanType{PlanDiet, PlanFitness, PlanSkincare, PlanWellness, PlanRecovery}

// planTitles maps plan types to their human-readable guide titles
var planTitles = map[PlanType]string{
	PlanDiet:     "Natural Diet & Nutrition",
	PlanFitness:  "Natural Fitness & Movement",
	PlanSkincare: "Natural Skincare & Beauty",
	PlanWellness: "Holistic Wellness",
	PlanRecovery: "Rest & Recovery",
}

// ParsePlanType converts a string into a PlanType.
// Returns an error for anything outside the closed set.
func ParsePlanType(s string) (PlanType, error) {
	p := PlanType(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown plan type: %q (expected one of diet, fitness, skincare, wellness, recovery)", s)
	}
	return p, nil
}

// Valid reports whether the plan type is one of the five supported categories
func (p PlanType) Valid() bool {
	_, ok := planTitles[p]
	return ok
}

// Title returns the human-readable guide title for the plan type
func (p PlanType) Title() string {
	if title, ok := planTitles[p]; ok {
		return title
	}
	return "Holistic Wellness"
}

// String returns the plan type identifier
func (p PlanType) String() string {
	return string(p)
}

// DefaultDurationDays is used when a profile duration cannot be parsed
const DefaultDurationDays = 30

// ParseDurationDays extracts the leading integer from a free-text duration
// such as "30 days" or "14-day reset". Returns DefaultDurationDays when no
// leading number is present or the value is not positive.
func ParseDurationDays(duration string) int {
	s := strings.TrimSpace(duration)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return DefaultDurationDays
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return DefaultDurationDays
	}
	return n
}
