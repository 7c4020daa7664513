package selection

import "github.com/plantrx/guide-engine/internal/types"

// supplementCaution is printed with every supplement plan
const supplementCaution = "Always review new supplements with your healthcare provider, especially alongside prescription medication or during pregnancy."

// planSupplements maps each plan type to its base supplement stack
var planSupplements = map[types.PlanType][]types.Supplement{
	types.PlanDiet: {
		{Name: "Omega-3 fish oil", Dose: "1000 mg EPA/DHA", Timing: "With breakfast", Note: "Algae oil works for plant-based readers"},
		{Name: "Vitamin D3", Dose: "1000-2000 IU", Timing: "With a fat-containing meal"},
		{Name: "Probiotic blend", Dose: "10+ billion CFU", Timing: "Before bed"},
	},
	types.PlanFitness: {
		{Name: "Magnesium glycinate", Dose: "300 mg", Timing: "Evening", Note: "Supports muscle recovery and sleep"},
		{Name: "Vitamin D3", Dose: "1000-2000 IU", Timing: "With a fat-containing meal"},
		{Name: "Creatine monohydrate", Dose: "3-5 g", Timing: "Any time, daily"},
	},
	types.PlanSkincare: {
		{Name: "Collagen peptides", Dose: "10 g", Timing: "Morning, in coffee or smoothie"},
		{Name: "Zinc", Dose: "15 mg", Timing: "With food", Note: "Do not exceed 40 mg daily"},
		{Name: "Vitamin C", Dose: "500 mg", Timing: "With breakfast"},
	},
	types.PlanWellness: {
		{Name: "Ashwagandha", Dose: "300-600 mg", Timing: "Evening", Note: "Adaptogen; skip if pregnant"},
		{Name: "Magnesium glycinate", Dose: "300 mg", Timing: "Evening"},
		{Name: "B-complex", Dose: "One capsule", Timing: "With breakfast"},
	},
	types.PlanRecovery: {
		{Name: "Tart cherry extract", Dose: "480 mg", Timing: "Before bed", Note: "Supports sleep and soreness"},
		{Name: "Curcumin with piperine", Dose: "500 mg", Timing: "With food"},
		{Name: "Magnesium glycinate", Dose: "300 mg", Timing: "Evening"},
	},
}

// concernAdditions appends targeted supplements for stated health concerns.
// Evaluated in order; each matching concern appends once.
var concernAdditions = []struct {
	matches    func(string) bool
	supplement types.Supplement
}{
	{keywords("sleep", "insomnia"), types.Supplement{Name: "L-theanine", Dose: "200 mg", Timing: "30 minutes before bed"}},
	{keywords("stress", "anxiety"), types.Supplement{Name: "Lemon balm extract", Dose: "300 mg", Timing: "As needed, up to twice daily"}},
	{keywords("joint", "knee", "arthritis"), types.Supplement{Name: "Glucosamine sulfate", Dose: "1500 mg", Timing: "With breakfast"}},
	{keywords("digest", "bloat", "gut"), types.Supplement{Name: "Digestive enzyme blend", Dose: "One capsule", Timing: "With main meals"}},
}

// BuildSupplementPlan selects the supplement stack for the plan type and
// appends targeted additions for any stated health concerns. Unknown plan
// types fall back to the wellness stack.
func BuildSupplementPlan(plan types.PlanType, profile *types.UserProfile) types.SupplementPlan {
	base, ok := planSupplements[plan]
	if !ok {
		base = planSupplements[types.PlanWellness]
	}
	supplements := make([]types.Supplement, len(base))
	copy(supplements, base)

	concerns := goalText(profile.HealthConcerns)
	for _, add := range concernAdditions {
		if add.matches(concerns) {
			supplements = append(supplements, add.supplement)
		}
	}

	return types.SupplementPlan{Supplements: supplements, Caution: supplementCaution}
}
