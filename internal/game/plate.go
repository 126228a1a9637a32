// Package game holds the caller-owned state around the scoring engine: the
// plate being built and the session's customer rotation and running score.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mcp-nutriserve/internal/models"
)

var (
	ErrItemNotFound   = errors.New("plate item not found")
	ErrInvalidPortion = errors.New("invalid portion")
)

type Plate struct {
	Items []models.PlateItem `json:"items"`
}

// Portion is a requested change to an item's serving. Only the non-zero
// measurement is applied.
type Portion struct {
	Grams    float64 `json:"grams,omitempty"`
	VolumeML float64 `json:"volume_ml,omitempty"`
}

// AddItem places food on the plate with its default serving: the second
// volume option when there is one (a standard katori or glass), otherwise
// the first, plus the first weighed portion.
func (p *Plate) AddItem(food models.FoodItem) models.PlateItem {
	item := models.PlateItem{
		ID:         food.ID,
		InstanceID: fmt.Sprintf("%s_%s", food.ID, uuid.NewString()),
	}
	switch len(food.VolumeOptionsML) {
	case 0:
	case 1:
		item.VolumeML = food.VolumeOptionsML[0]
	default:
		item.VolumeML = food.VolumeOptionsML[1]
	}
	if len(food.PortionG) > 0 {
		item.Grams = food.PortionG[0]
	}
	p.Items = append(p.Items, item)
	return item
}

func (p *Plate) Remove(instanceID string) error {
	for i, item := range p.Items {
		if item.InstanceID == instanceID {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, instanceID)
}

func (p *Plate) UpdatePortion(instanceID string, portion Portion) (models.PlateItem, error) {
	if portion.Grams < 0 || portion.VolumeML < 0 || (portion.Grams == 0 && portion.VolumeML == 0) {
		return models.PlateItem{}, fmt.Errorf("%w: %+v", ErrInvalidPortion, portion)
	}
	for i := range p.Items {
		if p.Items[i].InstanceID != instanceID {
			continue
		}
		if portion.Grams > 0 {
			p.Items[i].Grams = portion.Grams
		}
		if portion.VolumeML > 0 {
			p.Items[i].VolumeML = portion.VolumeML
		}
		return p.Items[i], nil
	}
	return models.PlateItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, instanceID)
}

func (p *Plate) Clear() {
	p.Items = nil
}
