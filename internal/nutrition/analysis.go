package nutrition

import "mcp-nutriserve/internal/models"

const (
	PlateCapacityML     = 1000
	defaultItemVolumeML = 50
)

// PlateAnalysis is everything the dashboard shows about a plate in progress.
type PlateAnalysis struct {
	Totals     models.Nutrients       `json:"totals"`
	Goals      models.MealGoals       `json:"goals"`
	Meters     []Meter                `json:"meters"`
	Curve      []models.GlycemicPoint `json:"curve,omitempty"`
	PeakRise   float64                `json:"peak_rise"`
	CurveLevel CurveLevel             `json:"curve_level"`
	FillML     float64                `json:"fill_ml"`
	FillPct    float64                `json:"fill_pct"`
}

func AnalyzePlate(order models.Order, items []models.PlateItem, foods FoodLookup) (PlateAnalysis, error) {
	goals, err := GetMealGoals(order.PlateSize, order.DietaryMode)
	if err != nil {
		return PlateAnalysis{}, err
	}
	totals := CalculateTotalNutrients(items, foods)
	curve := GlycemicCurve(totals.CarbsG, totals.FiberG, totals.FatG)
	peak := PeakRise(curve)
	fill := PlateFillML(items, foods)

	return PlateAnalysis{
		Totals: totals,
		Goals:  goals,
		Meters: []Meter{
			NewMeter("Calories", "kcal", totals.CaloriesKcal, goals.Calories),
			NewMeter("Protein", "g", totals.ProteinG, goals.Protein),
			NewMeter("Carbs", "g", totals.CarbsG, goals.Carbs),
			NewMeter("Fat", "g", totals.FatG, goals.Fat),
			NewMeter("Fiber", "g", totals.FiberG, goals.Fiber),
			NewMeter("Sodium", "mg", totals.SodiumMg, goals.Sodium),
		},
		Curve:      curve,
		PeakRise:   peak,
		CurveLevel: ClassifyCurve(peak),
		FillML:     fill,
		FillPct:    progress(fill, PlateCapacityML),
	}, nil
}

// PlateFillML estimates how much of the plate the items cover, in ml.
func PlateFillML(items []models.PlateItem, foods FoodLookup) float64 {
	var total float64
	for _, item := range items {
		var food models.FoodItem
		if foods != nil {
			food, _ = foods.Food(item.ID)
		}
		total += itemVolumeML(item, food)
	}
	return total
}

func itemVolumeML(item models.PlateItem, food models.FoodItem) float64 {
	if item.VolumeML > 0 {
		return item.VolumeML
	}
	if item.Grams > 0 && food.DensityGPerML > 0 {
		return item.Grams / food.DensityGPerML
	}
	return defaultItemVolumeML
}
