package models

// FoodItem is a read-only catalog entry.
type FoodItem struct {
	ID               string    `json:"id"`
	Label            string    `json:"label"`
	Category         string    `json:"category"`
	NutrientsPer100g Nutrients `json:"nutrients_per_100g"`
	DensityGPerML    float64   `json:"density_g_per_ml,omitempty"`
	VolumeOptionsML  []float64 `json:"volume_options_ml,omitempty"`
	VolumeLabels     []string  `json:"volume_labels,omitempty"`
	PortionG         []float64 `json:"portion_g,omitempty"`
	PortionLabels    []string  `json:"portion_labels,omitempty"`
	IsTreat          bool      `json:"is_treat,omitempty"`
}

// VolumeBased reports whether the food is served by volume (bowls, glasses)
// rather than by weighed pieces.
func (f FoodItem) VolumeBased() bool {
	return len(f.VolumeOptionsML) > 0
}

// FoodGroup is a named category of catalog items, in display order.
type FoodGroup struct {
	Name  string     `json:"name"`
	Items []FoodItem `json:"items"`
}

// PlateItem is one food placed on a plate. A zero Grams or VolumeML means
// the measurement is absent.
type PlateItem struct {
	ID         string  `json:"id"`
	InstanceID string  `json:"instance_id"`
	Grams      float64 `json:"grams,omitempty"`
	VolumeML   float64 `json:"volume_ml,omitempty"`
}
