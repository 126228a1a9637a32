// Package nutrition is the scoring engine: nutrient totals, meal goals,
// status classification, the glycemic forecast and plate scoring. Every
// function is pure over its arguments and the fixed goal tables.
package nutrition

import "mcp-nutriserve/internal/models"

// MinServingGrams is the smallest resolved mass that still counts.
const MinServingGrams = 0.1

// FoodLookup resolves a food id against read-only reference data.
type FoodLookup interface {
	Food(id string) (models.FoodItem, bool)
}

// ResolveGrams returns the mass of a plate item, preferring an explicit
// weight and falling back to volume times the food's density.
func ResolveGrams(item models.PlateItem, food models.FoodItem) (float64, bool) {
	var grams float64
	switch {
	case item.Grams > 0:
		grams = item.Grams
	case item.VolumeML > 0 && food.DensityGPerML > 0:
		grams = item.VolumeML * food.DensityGPerML
	default:
		return 0, false
	}
	if grams < MinServingGrams {
		return 0, false
	}
	return grams, true
}

// CalculateTotalNutrients sums the nutrients of every resolvable item.
// Unknown foods and items without a usable portion contribute nothing.
func CalculateTotalNutrients(items []models.PlateItem, foods FoodLookup) models.Nutrients {
	var totals models.Nutrients
	if foods == nil {
		return totals
	}
	for _, item := range items {
		food, ok := foods.Food(item.ID)
		if !ok {
			continue
		}
		grams, ok := ResolveGrams(item, food)
		if !ok {
			continue
		}
		contribution := food.NutrientsPer100g.Scale(grams / 100).ClampNonNegative()
		totals = totals.Add(contribution)
	}
	return totals
}
