package selection

import (
	"fmt"

	"github.com/plantrx/guide-engine/internal/types"
)

// workoutRule pairs a goal predicate with the protocol it selects
type workoutRule struct {
	matches func(string) bool
	plan    types.WorkoutPlan
}

// workoutRules is evaluated in order; the first matching rule wins.
// The stress/calm branch deliberately precedes the generic wellness
// default so "reduce stress" routes to Mindful Movement Practice.
var workoutRules = []workoutRule{
	{
		matches: keywords("muscle", "strength", "tone", "build"),
		plan: types.WorkoutPlan{
			Protocol: "Strength Foundations Protocol",
			Summary:  "Three full-body resistance sessions per week with progressive overload and two active recovery days.",
			Days: []types.WorkoutDay{
				{Day: "Monday", Focus: "Lower body strength", Exercises: []string{"Goblet squats 3x10", "Romanian deadlifts 3x8", "Walking lunges 3x12", "Calf raises 3x15"}},
				{Day: "Wednesday", Focus: "Upper body push/pull", Exercises: []string{"Push-ups 3x10", "Bent-over rows 3x10", "Overhead press 3x8", "Plank 3x45s"}},
				{Day: "Friday", Focus: "Full body power", Exercises: []string{"Kettlebell swings 3x15", "Step-ups 3x10 each leg", "Renegade rows 3x8", "Farmer carries 3x40m"}},
				{Day: "Saturday", Focus: "Active recovery", Exercises: []string{"30-minute easy walk", "10 minutes of mobility work"}},
			},
		},
	},
	{
		matches: keywords("weight", "fat", "slim", "lean"),
		plan: types.WorkoutPlan{
			Protocol: "Metabolic Conditioning Protocol",
			Summary:  "Alternating interval and steady-state sessions to raise daily energy expenditure without burnout.",
			Days: []types.WorkoutDay{
				{Day: "Monday", Focus: "Intervals", Exercises: []string{"5-minute warm-up walk", "8 rounds: 30s brisk / 90s easy", "5-minute cool-down"}},
				{Day: "Tuesday", Focus: "Strength circuit", Exercises: []string{"Bodyweight squats 3x15", "Incline push-ups 3x10", "Glute bridges 3x15", "Mountain climbers 3x20"}},
				{Day: "Thursday", Focus: "Steady state", Exercises: []string{"40-minute brisk walk or cycle at conversational pace"}},
				{Day: "Saturday", Focus: "Intervals + core", Exercises: []string{"6 rounds: 45s hard / 75s easy", "Dead bugs 3x10", "Side planks 3x30s"}},
			},
		},
	},
	{
		matches: keywords("stress", "anxiety", "calm", "sleep", "relax", "wellness"),
		plan: types.WorkoutPlan{
			Protocol: "Mindful Movement Practice",
			Summary:  "Daily low-intensity movement paired with breathwork to downshift the nervous system.",
			Days: []types.WorkoutDay{
				{Day: "Monday", Focus: "Gentle yoga flow", Exercises: []string{"20-minute sun salutation sequence", "5 minutes of box breathing"}},
				{Day: "Tuesday", Focus: "Nature walk", Exercises: []string{"30-minute unhurried outdoor walk, phone away"}},
				{Day: "Wednesday", Focus: "Tai chi basics", Exercises: []string{"15 minutes of standing flow", "Body scan meditation 10 minutes"}},
				{Day: "Thursday", Focus: "Restorative stretch", Exercises: []string{"Hip and shoulder openers 20 minutes", "Legs-up-the-wall 5 minutes"}},
				{Day: "Friday", Focus: "Mindful strength", Exercises: []string{"Slow bodyweight squats 2x10", "Wall push-ups 2x10", "Balance holds 2x30s each side"}},
				{Day: "Weekend", Focus: "Choice movement", Exercises: []string{"Any enjoyable gentle activity 30+ minutes"}},
			},
		},
	},
	{
		matches: keywords("energy", "fatigue", "tired", "vitality"),
		plan: types.WorkoutPlan{
			Protocol: "Energy Builder Protocol",
			Summary:  "Short, frequent movement snacks that lift energy without draining reserves.",
			Days: []types.WorkoutDay{
				{Day: "Daily", Focus: "Morning activation", Exercises: []string{"5-minute wake-up stretch", "20 bodyweight squats", "1-minute brisk march"}},
				{Day: "Mon/Wed/Fri", Focus: "Light circuit", Exercises: []string{"2 rounds: 10 squats, 8 incline push-ups, 10 rows", "10-minute walk after lunch"}},
				{Day: "Tue/Thu", Focus: "Mobility", Exercises: []string{"15-minute full-body mobility flow", "Evening wind-down stretch"}},
			},
		},
	},
	{
		matches: keywords("recover", "injury", "rehab", "rest"),
		plan: types.WorkoutPlan{
			Protocol: "Gentle Recovery Protocol",
			Summary:  "Low-load circulation work that supports tissue repair while protecting healing areas.",
			Days: []types.WorkoutDay{
				{Day: "Daily", Focus: "Circulation", Exercises: []string{"10-minute easy walk, twice daily", "Ankle and wrist circles 2x10"}},
				{Day: "Mon/Thu", Focus: "Range of motion", Exercises: []string{"Pain-free joint circles 2x8 per joint", "Supported hip hinges 2x8"}},
				{Day: "Sat", Focus: "Gentle water work", Exercises: []string{"20 minutes of easy swimming or water walking if available"}},
			},
		},
	},
}

// defaultWorkoutPlan is the fallback protocol when no goal keyword matches
var defaultWorkoutPlan = types.WorkoutPlan{
	Protocol: "Balanced Wellness Protocol",
	Summary:  "A balanced week mixing light strength, easy cardio, and mobility for general health.",
	Days: []types.WorkoutDay{
		{Day: "Monday", Focus: "Light strength", Exercises: []string{"Bodyweight squats 2x12", "Incline push-ups 2x10", "Bird dogs 2x8"}},
		{Day: "Wednesday", Focus: "Easy cardio", Exercises: []string{"30-minute walk, cycle, or swim at easy effort"}},
		{Day: "Friday", Focus: "Mobility", Exercises: []string{"20-minute full-body stretch", "5 minutes of deep breathing"}},
		{Day: "Weekend", Focus: "Choice activity", Exercises: []string{"Any enjoyable movement 30+ minutes"}},
	},
}

// GenerateWorkoutPlan selects the exercise protocol for the profile's goals.
// Equipment and time answers adjust the summary line only; the protocol
// choice is purely goal-driven.
func GenerateWorkoutPlan(profile *types.UserProfile, answers types.Answers) types.WorkoutPlan {
	plan := defaultWorkoutPlan
	goal := goalText(profile.AllGoals())
	for _, rule := range workoutRules {
		if rule.matches(goal) {
			plan = rule.plan
			break
		}
	}

	if minutes := answers.String("workout_minutes"); minutes != "" {
		plan.Summary = fmt.Sprintf("%s Sessions are scoped to about %s minutes.", plan.Summary, minutes)
	}
	if equipment := answers.String("equipment"); containsFold(equipment, "none") {
		plan.Summary += " All movements use body weight only."
	}
	return plan
}
