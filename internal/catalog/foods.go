package catalog

import "mcp-nutriserve/internal/models"

var (
	bowlML     = []float64{100, 150, 250}
	bowlLabels = []string{"Small Katori", "Katori", "Large Bowl"}
	glassML    = []float64{150, 250, 350}
	glassLabel = []string{"Small Glass", "Glass", "Large Glass"}
)

func defaultFoodGroups() []models.FoodGroup {
	return []models.FoodGroup{
		{
			Name: "Main Dishes",
			Items: []models.FoodItem{
				{
					ID: "chana_masala", Label: "Chana Masala",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 140, ProteinG: 7, CarbsG: 18, FiberG: 6, FatG: 4.5, SodiumMg: 220},
					DensityGPerML:    1.05, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "bhindi_masala", Label: "Bhindi Masala",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 95, ProteinG: 2.5, CarbsG: 9, FiberG: 4, FatG: 5.5, SodiumMg: 240},
					DensityGPerML:    0.9, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "palak_dal", Label: "Palak Dal",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 110, ProteinG: 7, CarbsG: 14, FiberG: 4.5, FatG: 3, SodiumMg: 230},
					DensityGPerML:    1.0, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "aloo_gobi", Label: "Aloo Gobi",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 95, ProteinG: 2.5, CarbsG: 12, FiberG: 3, FatG: 4.5, SodiumMg: 260},
					DensityGPerML:    0.8, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "dal_makhani", Label: "Dal Makhani",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 180, ProteinG: 7, CarbsG: 16, FiberG: 5, FatG: 10, SodiumMg: 350},
					DensityGPerML:    1.05, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
					IsTreat: true,
				},
			},
		},
		{
			Name: "Protein",
			Items: []models.FoodItem{
				{
					ID: "tandoori_chicken", Label: "Tandoori Chicken",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 165, ProteinG: 25, CarbsG: 3, FiberG: 0.5, FatG: 6, SodiumMg: 300},
					PortionG:         []float64{100, 150, 200}, PortionLabels: []string{"1 Leg", "1 Leg + Thigh", "Half Plate"},
				},
				{
					ID: "paneer_tikka", Label: "Paneer Tikka",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 265, ProteinG: 18, CarbsG: 6, FiberG: 1, FatG: 19, SodiumMg: 420},
					PortionG:         []float64{60, 120, 180}, PortionLabels: []string{"2 Pieces", "4 Pieces", "6 Pieces"},
				},
				{
					ID: "boiled_egg", Label: "Boiled Egg",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 155, ProteinG: 13, CarbsG: 1.1, FiberG: 0, FatG: 11, SodiumMg: 124},
					PortionG:         []float64{50, 100}, PortionLabels: []string{"1 Egg", "2 Eggs"},
				},
			},
		},
		{
			Name: "Grains",
			Items: []models.FoodItem{
				{
					ID: "roti", Label: "Roti",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 265, ProteinG: 9, CarbsG: 50, FiberG: 7, FatG: 3.5, SodiumMg: 300},
					PortionG:         []float64{40, 80, 120}, PortionLabels: []string{"1 Roti", "2 Rotis", "3 Rotis"},
				},
				{
					ID: "brown_rice", Label: "Brown Rice",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 112, ProteinG: 2.6, CarbsG: 23, FiberG: 1.8, FatG: 0.9, SodiumMg: 5},
					DensityGPerML:    0.8, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "white_rice", Label: "White Rice",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 130, ProteinG: 2.7, CarbsG: 28, FiberG: 0.4, FatG: 0.3, SodiumMg: 1},
					DensityGPerML:    0.85, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "veg_biryani", Label: "Vegetable Biryani",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 150, ProteinG: 3.5, CarbsG: 24, FiberG: 2, FatG: 4.5, SodiumMg: 380},
					DensityGPerML:    0.75, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "poha", Label: "Poha",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 130, ProteinG: 2.5, CarbsG: 25, FiberG: 1.5, FatG: 2.5, SodiumMg: 210},
					DensityGPerML:    0.5, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
			},
		},
		{
			Name: "Sides",
			Items: []models.FoodItem{
				{
					ID: "cucumber_raita", Label: "Cucumber Raita",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 60, ProteinG: 3, CarbsG: 5, FiberG: 0.5, FatG: 3, SodiumMg: 150},
					DensityGPerML:    1.03, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "kachumber_salad", Label: "Kachumber Salad",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 25, ProteinG: 1, CarbsG: 5, FiberG: 1.8, FatG: 0.2, SodiumMg: 120},
					DensityGPerML:    0.6, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
				{
					ID: "sprout_salad", Label: "Sprout Salad",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 90, ProteinG: 7, CarbsG: 13, FiberG: 4, FatG: 0.6, SodiumMg: 80},
					DensityGPerML:    0.6, VolumeOptionsML: bowlML, VolumeLabels: bowlLabels,
				},
			},
		},
		{
			Name: "Drinks & Sweets",
			Items: []models.FoodItem{
				{
					ID: "masala_chai", Label: "Masala Chai",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 55, ProteinG: 1.8, CarbsG: 8, FiberG: 0, FatG: 1.8, SodiumMg: 25},
					DensityGPerML:    1.02, VolumeOptionsML: []float64{100, 150, 200}, VolumeLabels: []string{"Cutting", "Cup", "Mug"},
				},
				{
					ID: "mango_lassi", Label: "Mango Lassi",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 95, ProteinG: 3, CarbsG: 16, FiberG: 0.3, FatG: 2.5, SodiumMg: 45},
					DensityGPerML:    1.04, VolumeOptionsML: glassML, VolumeLabels: glassLabel,
					IsTreat: true,
				},
				{
					ID: "gulab_jamun", Label: "Gulab Jamun",
					NutrientsPer100g: models.Nutrients{CaloriesKcal: 320, ProteinG: 4, CarbsG: 52, FiberG: 0.5, FatG: 11, SodiumMg: 60},
					PortionG:         []float64{40, 80}, PortionLabels: []string{"1 Piece", "2 Pieces"},
					IsTreat: true,
				},
			},
		},
	}
}
