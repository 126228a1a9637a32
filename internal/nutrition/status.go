package nutrition

import (
	"fmt"
	"math"

	"mcp-nutriserve/internal/models"
)

// GetNutrientStatus classifies value against target. Sitting exactly on a
// bound satisfies it.
func GetNutrientStatus(value float64, target models.Target) models.NutrientStatus {
	switch target.Kind {
	case models.TargetBand:
		if value < target.Min {
			return models.StatusLow
		}
		if value > target.Max {
			return models.StatusHigh
		}
		return models.StatusGood
	case models.TargetAtLeast:
		if value < target.Min {
			return models.StatusLow
		}
		return models.StatusGood
	case models.TargetAtMost:
		if value > target.Max {
			return models.StatusHigh
		}
		return models.StatusGood
	default:
		return models.StatusOK
	}
}

// Meter is the dashboard view of one nutrient against its goal.
type Meter struct {
	Name     string                `json:"name"`
	Unit     string                `json:"unit"`
	Value    float64               `json:"value"`
	Target   models.Target         `json:"target"`
	Status   models.NutrientStatus `json:"status"`
	Progress float64               `json:"progress"`
	Label    string                `json:"label"`
}

func NewMeter(name, unit string, value float64, target models.Target) Meter {
	m := Meter{
		Name:   name,
		Unit:   unit,
		Value:  value,
		Target: target,
		Status: GetNutrientStatus(value, target),
	}
	switch target.Kind {
	case models.TargetBand:
		m.Progress = progress(value, target.Max)
		m.Label = fmt.Sprintf("Target: %.0f-%.0f%s", target.Min, target.Max, unit)
	case models.TargetAtLeast:
		m.Progress = progress(value, target.Min)
		m.Label = fmt.Sprintf("Goal: >%.0f%s", target.Min, unit)
	case models.TargetAtMost:
		m.Progress = progress(value, target.Max)
		m.Label = fmt.Sprintf("Limit: <%.0f%s", target.Max, unit)
	}
	return m
}

func progress(value, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	return math.Min(100, value/bound*100)
}
