package selection

import "github.com/plantrx/guide-engine/internal/types"

// planMidday maps plan types to their signature midday activity
var planMidday = map[types.PlanType]types.ScheduleSlot{
	types.PlanDiet:     {Time: "12:30 PM", Activity: "Balanced lunch", Detail: "Half plate vegetables, quarter protein, quarter whole grains"},
	types.PlanFitness:  {Time: "12:30 PM", Activity: "Lunch + movement snack", Detail: "10-minute walk after eating"},
	types.PlanSkincare: {Time: "12:30 PM", Activity: "Antioxidant-rich lunch", Detail: "Include one brightly colored vegetable"},
	types.PlanWellness: {Time: "12:30 PM", Activity: "Unplugged lunch", Detail: "Eat away from screens, chew slowly"},
	types.PlanRecovery: {Time: "12:30 PM", Activity: "Anti-inflammatory lunch", Detail: "Add turmeric, ginger, or leafy greens"},
}

// BuildDailySchedule assembles the recommended daily routine. The wake time
// answer shifts the first slot's label only; all other slots keep fixed
// clock times for a consistent printed schedule.
func BuildDailySchedule(plan types.PlanType, profile *types.UserProfile, answers types.Answers) types.DailySchedule {
	wake := answers.StringOr("wake_time", "7:00 AM")

	slots := []types.ScheduleSlot{
		{Time: wake, Activity: "Wake + hydrate", Detail: "One large glass of water before anything else"},
		{Time: "7:30 AM", Activity: "Morning movement", Detail: "5-10 minutes of stretching or a short walk"},
		{Time: "8:00 AM", Activity: "Breakfast", Detail: "From your nutrition plan"},
		{Time: "10:30 AM", Activity: "Hydration check", Detail: "Second glass of water, herbal tea counts"},
	}
	if midday, ok := planMidday[plan]; ok {
		slots = append(slots, midday)
	} else {
		slots = append(slots, planMidday[types.PlanWellness])
	}
	slots = append(slots,
		types.ScheduleSlot{Time: "3:00 PM", Activity: "Afternoon reset", Detail: "2 minutes of slow breathing, light snack if hungry"},
		types.ScheduleSlot{Time: "6:30 PM", Activity: "Dinner", Detail: "From your nutrition plan, finish 3 hours before bed"},
		types.ScheduleSlot{Time: "9:00 PM", Activity: "Wind down", Detail: "Screens off, dim lights, evening tea"},
		types.ScheduleSlot{Time: "10:00 PM", Activity: "Sleep", Detail: "Aim for 7-9 hours"},
	)

	if containsFold(profile.Lifestyle, "shift") {
		// Shift workers anchor to relative times instead of clock times.
		for i := range slots {
			if i == 0 {
				slots[i].Time = "On waking"
				continue
			}
			slots[i].Time = "Hour " + []string{"0", "1", "1", "3", "5", "8", "11", "14", "15"}[min(i, 8)]
		}
	}

	return types.DailySchedule{Slots: slots}
}
