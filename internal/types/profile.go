package types

import "strings"

// UserProfile represents the questionnaire owner whose guide is being generated.
// All fields except Name are optional free-text bands supplied wholesale by the
// caller; the profile is never mutated during generation.
type UserProfile struct {
	Name           string   `json:"name" validate:"required,min=1,max=120"`
	Age            string   `json:"age,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Lifestyle      string   `json:"lifestyle,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	Goals          []string `json:"goals,omitempty"`
	HealthConcerns []string `json:"health_concerns,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
}

// PrimaryGoal returns the first stated goal, lowercased for keyword routing.
// Returns "" when the profile has no goals.
func (p *UserProfile) PrimaryGoal() string {
	if p == nil || len(p.Goals) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(p.Goals[0]))
}

// AllGoals returns every stated goal lowercased, for selectors that scan
// beyond the primary goal.
func (p *UserProfile) AllGoals() []string {
	if p == nil {
		return nil
	}
	goals := make([]string, 0, len(p.Goals))
	for _, g := range p.Goals {
		goals = append(goals, strings.ToLower(strings.TrimSpace(g)))
	}
	return goals
}

// DurationDays returns the parsed plan length in days
func (p *UserProfile) DurationDays() int {
	if p == nil {
		return DefaultDurationDays
	}
	return ParseDurationDays(p.Duration)
}

// DurationLabel returns the free-text duration, defaulting to "30 days"
func (p *UserProfile) DurationLabel() string {
	if p == nil || strings.TrimSpace(p.Duration) == "" {
		return "30 days"
	}
	return strings.TrimSpace(p.Duration)
}

// DisplayName returns the profile name, defaulting to "Friend" so rendering
// never produces an empty possessive in titles.
func (p *UserProfile) DisplayName() string {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return "Friend"
	}
	return strings.TrimSpace(p.Name)
}
