package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-nutriserve/internal/models"
)

var scoreFoods = testFoods{
	"balanced": {
		ID: "balanced", Label: "Balanced Thali",
		NutrientsPer100g: models.Nutrients{CaloriesKcal: 200, ProteinG: 12, CarbsG: 25, FiberG: 4, FatG: 6, SodiumMg: 250},
	},
	"carby": {
		ID: "carby", Label: "Carby Bowl",
		NutrientsPer100g: models.Nutrients{CaloriesKcal: 650, ProteinG: 60, CarbsG: 60.625, FiberG: 12, FatG: 20, SodiumMg: 500},
	},
	"feast": {
		ID: "feast", Label: "Feast",
		NutrientsPer100g: models.Nutrients{CaloriesKcal: 800, ProteinG: 45, CarbsG: 100, FiberG: 12, FatG: 20, SodiumMg: 500},
	},
	"jalebi": {
		ID: "jalebi", Label: "Jalebi",
		NutrientsPer100g: models.Nutrients{CaloriesKcal: 0, SodiumMg: 0},
		IsTreat:          true,
	},
	"junk": {
		ID: "junk", Label: "Junk",
		NutrientsPer100g: models.Nutrients{CaloriesKcal: 100, CarbsG: 200, FatG: 50, SodiumMg: 5000},
		IsTreat:          true,
	},
	"chana_masala": {
		ID: "chana_masala", Label: "Chana Masala",
		NutrientsPer100g: models.Nutrients{CaloriesKcal: 140, ProteinG: 7, CarbsG: 18, FiberG: 6, FatG: 4.5, SodiumMg: 220},
	},
}

func testCustomer(mode models.DietaryMode, required ...string) models.Customer {
	return models.Customer{
		ID:   "tester",
		Name: "Tester",
		Order: models.Order{
			PlateSize:     models.PlateRegular,
			DietaryMode:   mode,
			RequiredItems: required,
		},
		Dialogue: models.Dialogue{
			Positive: "Perfect!",
			Neutral:  "Pretty good.",
			Negative: "Not for me.",
		},
	}
}

func TestCalculateScoreEmptyPlate(t *testing.T) {
	result, err := CalculateScore(testCustomer(models.DietNone, "chana_masala"), nil, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "You served me an empty plate!", result.Feedback)
	assert.Equal(t, models.ReactionSad, result.Reaction)
}

func TestCalculateScoreMissingRequiredItem(t *testing.T) {
	plate := []models.PlateItem{{ID: "balanced", Grams: 300}, {ID: "jalebi", Grams: 50}}
	result, err := CalculateScore(testCustomer(models.DietBalanced, "chana_masala"), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, models.ReactionSad, result.Reaction)
	assert.Equal(t, "Pretty good. But I was really hoping for some Chana Masala.", result.Feedback)
	assert.Empty(t, result.Penalties)
}

func TestCalculateScoreMissingItemsJoined(t *testing.T) {
	plate := []models.PlateItem{{ID: "balanced", Grams: 300}}
	result, err := CalculateScore(testCustomer(models.DietNone, "chana_masala", "samosa"), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, "Pretty good. But I was really hoping for some Chana Masala and a specific dish.", result.Feedback)
}

func TestCalculateScoreRequiredItemPresentRegardlessOfPortion(t *testing.T) {
	plate := []models.PlateItem{{ID: "balanced", Grams: 300}, {ID: "chana_masala"}}
	result, err := CalculateScore(testCustomer(models.DietNone, "chana_masala"), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
}

func TestCalculateScorePerfectPlate(t *testing.T) {
	plate := []models.PlateItem{{ID: "balanced", Grams: 300}}
	result, err := CalculateScore(testCustomer(models.DietNone), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, models.ReactionHappy, result.Reaction)
	assert.Equal(t, "Perfect!", result.Feedback)
	assert.Empty(t, result.Penalties)
}

func TestCalculateScoreCarbsOverUnderLowCarb(t *testing.T) {
	plate := []models.PlateItem{{ID: "carby", Grams: 100}}
	result, err := CalculateScore(testCustomer(models.DietLowCarb), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 80, result.Score)
	assert.Equal(t, models.ReactionNeutral, result.Reaction)
	assert.Equal(t, "Pretty good. Though, it was too high in carbs.", result.Feedback)
	require.Len(t, result.Penalties, 1)
	assert.Equal(t, models.Penalty{Nutrient: "carbs_g", Points: 20, Reason: ReasonCarbsHigh}, result.Penalties[0])
}

func TestCalculateScoreHeavyCarbyTreat(t *testing.T) {
	plate := []models.PlateItem{{ID: "feast", Grams: 100}, {ID: "jalebi", Grams: 20}}
	result, err := CalculateScore(testCustomer(models.DietBalanced), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 30, result.Score)
	assert.Equal(t, models.ReactionSad, result.Reaction)
	assert.Equal(t, "Not for me. Specifically, it was a bit too heavy. and it was too high in carbs. and that treat might be too sugary for me.", result.Feedback)
}

func TestCalculateScoreTreatIgnoredWithoutDiet(t *testing.T) {
	plate := []models.PlateItem{{ID: "feast", Grams: 100}, {ID: "jalebi", Grams: 20}}
	result, err := CalculateScore(testCustomer(models.DietNone), plate, scoreFoods)
	require.NoError(t, err)

	// heavy -25, carbs -15 without a restrictive diet
	assert.Equal(t, 60, result.Score)
	assert.Equal(t, models.ReactionNeutral, result.Reaction)
	assert.Equal(t, "Pretty good. Though, it was a bit too heavy.", result.Feedback)
	assert.Len(t, result.Penalties, 2)
}

func TestCalculateScoreFloorsAtZero(t *testing.T) {
	plate := []models.PlateItem{{ID: "junk", Grams: 100}}
	result, err := CalculateScore(testCustomer(models.DietBalanced), plate, scoreFoods)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, models.ReactionSad, result.Reaction)
	nutrients := make([]string, 0, len(result.Penalties))
	for _, p := range result.Penalties {
		nutrients = append(nutrients, p.Nutrient)
	}
	assert.Equal(t, []string{"calories_kcal", "carbs_g", "protein_g", "fat_g", "fiber_g", "sodium_mg", "treat"}, nutrients)
}

func TestCalculateScoreLightPlate(t *testing.T) {
	plate := []models.PlateItem{{ID: "balanced", Grams: 100}}
	result, err := CalculateScore(testCustomer(models.DietNone), plate, scoreFoods)
	require.NoError(t, err)

	// light -20, protein 12 < 32.5 -15, fiber 4 < 10 -10
	assert.Equal(t, 55, result.Score)
	assert.Equal(t, "Not for me. Specifically, it was a bit too light for me. and I wish it had more protein. and some more fiber would be great.", result.Feedback)
}

func TestCalculateScoreDeterministic(t *testing.T) {
	plate := []models.PlateItem{{ID: "feast", Grams: 100}, {ID: "jalebi", Grams: 20}}
	first, err := CalculateScore(testCustomer(models.DietBalanced), plate, scoreFoods)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CalculateScore(testCustomer(models.DietBalanced), plate, scoreFoods)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCalculateScoreUnknownPlateSize(t *testing.T) {
	customer := testCustomer(models.DietNone)
	customer.Order.PlateSize = "Gigantic"
	_, err := CalculateScore(customer, []models.PlateItem{{ID: "balanced", Grams: 300}}, scoreFoods)
	assert.ErrorIs(t, err, ErrUnknownPlateSize)
}

func TestAnalyzePlate(t *testing.T) {
	order := testCustomer(models.DietNone).Order
	analysis, err := AnalyzePlate(order, []models.PlateItem{
		{ID: "balanced", Grams: 300},
		{ID: "chana_masala", VolumeML: 150},
	}, scoreFoods)
	require.NoError(t, err)

	require.Len(t, analysis.Meters, 6)
	assert.Equal(t, "Calories", analysis.Meters[0].Name)
	assert.Len(t, analysis.Curve, 181)
	assert.Equal(t, ClassifyCurve(analysis.PeakRise), analysis.CurveLevel)
	// 150 ml of chana plus the 50 ml default for an item without density
	assert.InDelta(t, 200, analysis.FillML, 1e-9)
	assert.InDelta(t, 20, analysis.FillPct, 1e-9)
}
