package nutrition

import (
	"errors"
	"fmt"
	"math"

	"mcp-nutriserve/internal/models"
)

var ErrUnknownPlateSize = errors.New("unknown plate size")

const (
	kcalPerGramCarbs   = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// MacroSplit is the share of a meal's calories assigned to each macro.
type MacroSplit struct {
	Carbs   float64
	Protein float64
	Fat     float64
}

var baseMealGoals = map[models.PlateSize]models.MealGoals{
	models.PlateLight: {
		Calories: models.Band(350, 550, 450),
		Protein:  models.AtLeast(20),
		Carbs:    models.AtMost(55),
		Fat:      models.AtMost(15),
		Fiber:    models.AtLeast(8),
		Sodium:   models.AtMost(600),
	},
	models.PlateRegular: {
		Calories: models.Band(550, 750, 650),
		Protein:  models.AtLeast(30),
		Carbs:    models.AtMost(80),
		Fat:      models.AtMost(22),
		Fiber:    models.AtLeast(10),
		Sodium:   models.AtMost(800),
	},
	models.PlateHearty: {
		Calories: models.Band(750, 1000, 875),
		Protein:  models.AtLeast(40),
		Carbs:    models.AtMost(110),
		Fat:      models.AtMost(30),
		Fiber:    models.AtLeast(12),
		Sodium:   models.AtMost(1000),
	},
}

var macroSplits = map[models.DietaryMode]MacroSplit{
	models.DietNone:     {Carbs: 0.50, Protein: 0.20, Fat: 0.30},
	models.DietBalanced: {Carbs: 0.45, Protein: 0.25, Fat: 0.30},
	models.DietLowCarb:  {Carbs: 0.25, Protein: 0.35, Fat: 0.40},
}

// SplitFor returns the macro split for mode, falling back to DietNone.
func SplitFor(mode models.DietaryMode) MacroSplit {
	if split, ok := macroSplits[mode]; ok {
		return split
	}
	return macroSplits[models.DietNone]
}

// GetMealGoals derives the nutrient targets for a meal. Carbs, protein and
// fat come from the calorie target and the dietary mode; calories, fiber
// and sodium come straight from the size table.
func GetMealGoals(size models.PlateSize, mode models.DietaryMode) (models.MealGoals, error) {
	goals, ok := baseMealGoals[size]
	if !ok {
		return models.MealGoals{}, fmt.Errorf("%w: %q", ErrUnknownPlateSize, size)
	}
	target := goals.Calories.Ideal
	split := SplitFor(mode)

	goals.Carbs = models.AtMost(target * split.Carbs / kcalPerGramCarbs)
	goals.Protein = models.AtLeast(target * split.Protein / kcalPerGramProtein)
	goals.Fat = models.AtMost(target * split.Fat / kcalPerGramFat)
	return goals, nil
}

// ValidateTables checks the fixed goal tables for authoring mistakes.
func ValidateTables() error {
	for _, size := range []models.PlateSize{models.PlateLight, models.PlateRegular, models.PlateHearty} {
		goals, ok := baseMealGoals[size]
		if !ok {
			return fmt.Errorf("%w: %q missing from base goals", ErrUnknownPlateSize, size)
		}
		cal := goals.Calories
		if cal.Kind != models.TargetBand || cal.Min > cal.Ideal || cal.Ideal > cal.Max || cal.Min <= 0 {
			return fmt.Errorf("invalid calorie band for %s: %+v", size, cal)
		}
		if goals.Fiber.Kind != models.TargetAtLeast || goals.Sodium.Kind != models.TargetAtMost {
			return fmt.Errorf("invalid fiber or sodium target for %s", size)
		}
	}
	for mode, split := range macroSplits {
		sum := split.Carbs + split.Protein + split.Fat
		if math.Abs(sum-1) > 1e-9 {
			return fmt.Errorf("macro split for %s sums to %v", mode, sum)
		}
		if split.Carbs <= 0 || split.Protein <= 0 || split.Fat <= 0 {
			return fmt.Errorf("macro split for %s has a non-positive share", mode)
		}
	}
	return nil
}
