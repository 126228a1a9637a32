package models

type PlateSize string

const (
	PlateLight   PlateSize = "Light"
	PlateRegular PlateSize = "Regular"
	PlateHearty  PlateSize = "Hearty"
)

type DietaryMode string

const (
	DietNone     DietaryMode = "None"
	DietBalanced DietaryMode = "Balanced"
	DietLowCarb  DietaryMode = "Low-Carb"
)

// Restrictive reports whether the mode tightens carb and treat penalties.
func (m DietaryMode) Restrictive() bool {
	return m != DietNone
}

type TargetKind string

const (
	TargetBand    TargetKind = "band"
	TargetAtLeast TargetKind = "min"
	TargetAtMost  TargetKind = "max"
)

// Target is the range a nutrient total is judged against. Which of Min,
// Max and Ideal are meaningful depends on Kind.
type Target struct {
	Kind  TargetKind `json:"kind"`
	Min   float64    `json:"min,omitempty"`
	Max   float64    `json:"max,omitempty"`
	Ideal float64    `json:"target,omitempty"`
}

func Band(min, max, ideal float64) Target {
	return Target{Kind: TargetBand, Min: min, Max: max, Ideal: ideal}
}

func AtLeast(min float64) Target {
	return Target{Kind: TargetAtLeast, Min: min}
}

func AtMost(max float64) Target {
	return Target{Kind: TargetAtMost, Max: max}
}

type MealGoals struct {
	Calories Target `json:"calories_kcal"`
	Protein  Target `json:"protein_g"`
	Carbs    Target `json:"carbs_g"`
	Fat      Target `json:"fat_g"`
	Fiber    Target `json:"fiber_g"`
	Sodium   Target `json:"sodium_mg"`
}
