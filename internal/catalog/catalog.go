// Package catalog holds the game's read-only reference data: the food
// library, the customers and the health facts.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"mcp-nutriserve/internal/models"
	"mcp-nutriserve/internal/nutrition"
)

var (
	ErrDuplicateFood   = errors.New("duplicate food id")
	ErrInvalidFood     = errors.New("invalid food definition")
	ErrUnknownRequired = errors.New("required item not in catalog")
)

type Catalog struct {
	groups    []models.FoodGroup
	foods     map[string]models.FoodItem
	order     []string
	customers []models.Customer
	facts     []models.Fact
}

// New indexes the given reference data. It does not validate it; call
// Validate once at startup.
func New(groups []models.FoodGroup, customers []models.Customer, facts []models.Fact) *Catalog {
	c := &Catalog{
		groups:    make([]models.FoodGroup, 0, len(groups)),
		foods:     make(map[string]models.FoodItem),
		customers: customers,
		facts:     facts,
	}
	for _, g := range groups {
		group := models.FoodGroup{Name: g.Name, Items: make([]models.FoodItem, 0, len(g.Items))}
		for _, f := range g.Items {
			if f.Category == "" {
				f.Category = g.Name
			}
			if _, seen := c.foods[f.ID]; !seen {
				c.order = append(c.order, f.ID)
			}
			c.foods[f.ID] = f
			group.Items = append(group.Items, f)
		}
		c.groups = append(c.groups, group)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultFoodGroups(), defaultCustomers(), defaultFacts())
}

func (c *Catalog) Food(id string) (models.FoodItem, bool) {
	f, ok := c.foods[id]
	return f, ok
}

func (c *Catalog) Foods() []models.FoodItem {
	out := make([]models.FoodItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.foods[id])
	}
	return out
}

func (c *Catalog) Groups() []models.FoodGroup {
	return c.groups
}

func (c *Catalog) Customers() []models.Customer {
	return c.customers
}

func (c *Catalog) Customer(index int) (models.Customer, bool) {
	if index < 0 || index >= len(c.customers) {
		return models.Customer{}, false
	}
	return c.customers[index], true
}

func (c *Catalog) Facts() []models.Fact {
	return c.facts
}

// FactAt rotates through the facts; any index is valid.
func (c *Catalog) FactAt(i int) (models.Fact, bool) {
	n := len(c.facts)
	if n == 0 {
		return models.Fact{}, false
	}
	i %= n
	if i < 0 {
		i += n
	}
	return c.facts[i], true
}

// Validate rejects reference data that would make scoring meaningless.
func (c *Catalog) Validate() error {
	if err := nutrition.ValidateTables(); err != nil {
		return fmt.Errorf("invalid goal tables: %w", err)
	}
	seen := make(map[string]bool)
	for _, g := range c.groups {
		for _, f := range g.Items {
			if seen[f.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateFood, f.ID)
			}
			seen[f.ID] = true
			if err := validateFood(f); err != nil {
				return err
			}
		}
	}
	for _, cust := range c.customers {
		if _, err := nutrition.GetMealGoals(cust.Order.PlateSize, cust.Order.DietaryMode); err != nil {
			return fmt.Errorf("customer %s: %w", cust.ID, err)
		}
		for _, id := range cust.Order.RequiredItems {
			if _, ok := c.foods[id]; !ok {
				return fmt.Errorf("%w: customer %s wants %s", ErrUnknownRequired, cust.ID, id)
			}
		}
	}
	return nil
}

func validateFood(f models.FoodItem) error {
	if f.ID == "" || f.Label == "" {
		return fmt.Errorf("%w: missing id or label", ErrInvalidFood)
	}
	n := f.NutrientsPer100g
	if !n.IsFinite() || hasNegative(n) {
		return fmt.Errorf("%w: %s has negative or non-finite nutrients", ErrInvalidFood, f.ID)
	}
	if f.DensityGPerML < 0 {
		return fmt.Errorf("%w: %s has negative density", ErrInvalidFood, f.ID)
	}
	if f.VolumeBased() && f.DensityGPerML == 0 {
		return fmt.Errorf("%w: %s is served by volume without a density", ErrInvalidFood, f.ID)
	}
	if len(f.VolumeLabels) > 0 && len(f.VolumeLabels) != len(f.VolumeOptionsML) {
		return fmt.Errorf("%w: %s volume labels do not match options", ErrInvalidFood, f.ID)
	}
	if len(f.PortionLabels) > 0 && len(f.PortionLabels) != len(f.PortionG) {
		return fmt.Errorf("%w: %s portion labels do not match options", ErrInvalidFood, f.ID)
	}
	return nil
}

func hasNegative(n models.Nutrients) bool {
	return n.CaloriesKcal < 0 || n.ProteinG < 0 || n.CarbsG < 0 || n.FiberG < 0 || n.FatG < 0 || n.SodiumMg < 0
}

type searchHit struct {
	food  models.FoodItem
	score float64
}

// Search finds foods by id or label, tolerating small typos.
func (c *Catalog) Search(query string, limit int) []models.FoodItem {
	q := normalise(query)
	if q == "" {
		return nil
	}
	var hits []searchHit
	for _, id := range c.order {
		f := c.foods[id]
		if s, ok := matchScore(q, f); ok {
			hits = append(hits, searchHit{food: f, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]models.FoodItem, len(hits))
	for i, h := range hits {
		out[i] = h.food
	}
	return out
}

func matchScore(q string, f models.FoodItem) (float64, bool) {
	best := 0.0
	for _, name := range []string{normalise(f.ID), normalise(f.Label)} {
		switch {
		case name == q:
			return 1, true
		case strings.HasPrefix(name, q):
			best = max(best, 0.9)
		case strings.Contains(name, q):
			best = max(best, 0.8)
		case len(q) >= 3:
			dist := levenshtein.ComputeDistance(q, name)
			if dist <= levenshteinLimit(len(name)) {
				best = max(best, 0.72-0.08*float64(dist))
			}
		}
	}
	return best, best > 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
