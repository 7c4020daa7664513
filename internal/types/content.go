package types

// MealPlan represents the food recommendations selected for a profile
type MealPlan struct {
	Focus     string   `json:"focus"`
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// WorkoutDay represents one day of an exercise protocol
type WorkoutDay struct {
	Day       string   `json:"day"`
	Focus     string   `json:"focus"`
	Exercises []string `json:"exercises"`
}

// WorkoutPlan represents a named exercise protocol
type WorkoutPlan struct {
	Protocol string       `json:"protocol"`
	Summary  string       `json:"summary"`
	Days     []WorkoutDay `json:"days"`
}

// ShoppingCategory is one named group of shopping list items
type ShoppingCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// ShoppingList represents the categorized grocery recommendations
type ShoppingList struct {
	Categories []ShoppingCategory `json:"categories"`
}

// Category returns the named category, or nil if absent
func (l *ShoppingList) Category(name string) *ShoppingCategory {
	if l == nil {
		return nil
	}
	for i := range l.Categories {
		if l.Categories[i].Name == name {
			return &l.Categories[i]
		}
	}
	return nil
}

// Supplement represents one recommended supplement with dosing guidance
type Supplement struct {
	Name   string `json:"name"`
	Dose   string `json:"dose"`
	Timing string `json:"timing"`
	Note   string `json:"note,omitempty"`
}

// SupplementPlan represents the supplement recommendations for a plan
type SupplementPlan struct {
	Supplements []Supplement `json:"supplements"`
	Caution     string       `json:"caution"`
}

// ScheduleSlot is one timed entry in the daily schedule
type ScheduleSlot struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Detail   string `json:"detail,omitempty"`
}

// DailySchedule represents the recommended daily routine
type DailySchedule struct {
	Slots []ScheduleSlot `json:"slots"`
}

// TrackingMetric is one progress measurement the reader should record
type TrackingMetric struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	Target    string `json:"target"`
}

// TrackingPlan represents the progress-tracking recommendations
type TrackingPlan struct {
	Metrics []TrackingMetric `json:"metrics"`
}

// TroubleshootingEntry pairs a common problem with its fixes
type TroubleshootingEntry struct {
	Problem string   `json:"problem"`
	Fixes   []string `json:"fixes"`
}

// TroubleshootingGuide represents the troubleshooting section content
type TroubleshootingGuide struct {
	Entries []TroubleshootingEntry `json:"entries"`
}

// BudgetGuide represents budget-tier shopping guidance
type BudgetGuide struct {
	Tier string   `json:"tier"`
	Tips []string `json:"tips"`
}
