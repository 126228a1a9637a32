package models

import "math"

// Nutrients holds the six tracked nutrient figures, either per 100g of a
// food or summed over a plate.
type Nutrients struct {
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FiberG       float64 `json:"fiber_g"`
	FatG         float64 `json:"fat_g"`
	SodiumMg     float64 `json:"sodium_mg"`
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		CaloriesKcal: n.CaloriesKcal + o.CaloriesKcal,
		ProteinG:     n.ProteinG + o.ProteinG,
		CarbsG:       n.CarbsG + o.CarbsG,
		FiberG:       n.FiberG + o.FiberG,
		FatG:         n.FatG + o.FatG,
		SodiumMg:     n.SodiumMg + o.SodiumMg,
	}
}

func (n Nutrients) Scale(f float64) Nutrients {
	return Nutrients{
		CaloriesKcal: n.CaloriesKcal * f,
		ProteinG:     n.ProteinG * f,
		CarbsG:       n.CarbsG * f,
		FiberG:       n.FiberG * f,
		FatG:         n.FatG * f,
		SodiumMg:     n.SodiumMg * f,
	}
}

// ClampNonNegative replaces negative, NaN and infinite fields with zero.
func (n Nutrients) ClampNonNegative() Nutrients {
	return Nutrients{
		CaloriesKcal: clamp(n.CaloriesKcal),
		ProteinG:     clamp(n.ProteinG),
		CarbsG:       clamp(n.CarbsG),
		FiberG:       clamp(n.FiberG),
		FatG:         clamp(n.FatG),
		SodiumMg:     clamp(n.SodiumMg),
	}
}

func (n Nutrients) IsFinite() bool {
	for _, v := range []float64{n.CaloriesKcal, n.ProteinG, n.CarbsG, n.FiberG, n.FatG, n.SodiumMg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
