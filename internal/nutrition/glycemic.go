package nutrition

import (
	"math"

	"mcp-nutriserve/internal/models"
)

// Forecast model constants. This is a teaching aid, not a physiological model.
const (
	CurveMinutes      = 180
	fiberCarbOffset   = 1.5
	basePeakMinutes   = 45.0
	fatDelayPerGram   = 0.5
	risePerEffCarb    = 0.5
	curveSigmaMinutes = 30.0
)

type CurveLevel string

const (
	CurveLow      CurveLevel = "low"
	CurveModerate CurveLevel = "moderate"
	CurveHigh     CurveLevel = "high"
)

// GlycemicCurve forecasts the glucose rise for each minute from 0 to 180.
// Fiber reduces the effective carbs and fat pushes the peak later.
func GlycemicCurve(carbsG, fiberG, fatG float64) []models.GlycemicPoint {
	curve := make([]models.GlycemicPoint, CurveMinutes+1)
	for t := range curve {
		curve[t].Time = t
	}
	if !(carbsG > 0) {
		return curve
	}

	effectiveCarbs := math.Max(0, carbsG-fiberG*fiberCarbOffset)
	peakTime := basePeakMinutes + fatG*fatDelayPerGram
	peakRise := effectiveCarbs * risePerEffCarb

	for t := range curve {
		d := float64(t) - peakTime
		rise := peakRise * math.Exp(-(d*d)/(2*curveSigmaMinutes*curveSigmaMinutes))
		if !(rise > 0) {
			rise = 0
		}
		curve[t].Rise = rise
	}
	return curve
}

func PeakRise(curve []models.GlycemicPoint) float64 {
	var peak float64
	for _, p := range curve {
		if p.Rise > peak {
			peak = p.Rise
		}
	}
	return peak
}

func ClassifyCurve(peak float64) CurveLevel {
	switch {
	case peak > 100:
		return CurveHigh
	case peak > 75:
		return CurveModerate
	default:
		return CurveLow
	}
}
