package nutrition

import (
	"strings"

	"mcp-nutriserve/internal/models"
)

const (
	maxScore               = 100
	missingItemScore       = 40
	happyThreshold         = 90
	neutralThreshold       = 60
	EmptyPlateFeedback     = "You served me an empty plate!"
	unknownDishLabel       = "a specific dish"
	missingItemsPrefix     = " But I was really hoping for some "
	neutralFeedbackJoiner  = " Though, "
	negativeFeedbackJoiner = " Specifically, "
	reasonSeparator        = " and "
)

// Reasons are part of the customer's spoken feedback and must stay stable.
const (
	ReasonTooLight  = "it was a bit too light for me."
	ReasonTooHeavy  = "it was a bit too heavy."
	ReasonCarbsHigh = "it was too high in carbs."
	ReasonLowProt   = "I wish it had more protein."
	ReasonFatty     = "it was a little too fatty."
	ReasonLowFiber  = "some more fiber would be great."
	ReasonSalty     = "it was a little too salty."
	ReasonTreat     = "that treat might be too sugary for me."
)

type plateCheck struct {
	nutrient string
	apply    func(c *scoreContext) (points int, reason string)
}

type scoreContext struct {
	order  models.Order
	totals models.Nutrients
	goals  models.MealGoals
	items  []models.PlateItem
	foods  FoodLookup
}

// checks run in this order; feedback text depends on it.
var checks = []plateCheck{
	{"calories_kcal", func(c *scoreContext) (int, string) {
		switch GetNutrientStatus(c.totals.CaloriesKcal, c.goals.Calories) {
		case models.StatusLow:
			return 20, ReasonTooLight
		case models.StatusHigh:
			return 25, ReasonTooHeavy
		}
		return 0, ""
	}},
	{"carbs_g", func(c *scoreContext) (int, string) {
		if GetNutrientStatus(c.totals.CarbsG, c.goals.Carbs) != models.StatusHigh {
			return 0, ""
		}
		if c.order.DietaryMode.Restrictive() {
			return 20, ReasonCarbsHigh
		}
		return 15, ReasonCarbsHigh
	}},
	{"protein_g", func(c *scoreContext) (int, string) {
		if GetNutrientStatus(c.totals.ProteinG, c.goals.Protein) == models.StatusLow {
			return 15, ReasonLowProt
		}
		return 0, ""
	}},
	{"fat_g", func(c *scoreContext) (int, string) {
		if GetNutrientStatus(c.totals.FatG, c.goals.Fat) == models.StatusHigh {
			return 15, ReasonFatty
		}
		return 0, ""
	}},
	{"fiber_g", func(c *scoreContext) (int, string) {
		if GetNutrientStatus(c.totals.FiberG, c.goals.Fiber) == models.StatusLow {
			return 10, ReasonLowFiber
		}
		return 0, ""
	}},
	{"sodium_mg", func(c *scoreContext) (int, string) {
		if GetNutrientStatus(c.totals.SodiumMg, c.goals.Sodium) == models.StatusHigh {
			return 15, ReasonSalty
		}
		return 0, ""
	}},
	{"treat", func(c *scoreContext) (int, string) {
		if c.order.DietaryMode.Restrictive() && hasTreat(c.items, c.foods) {
			return 25, ReasonTreat
		}
		return 0, ""
	}},
}

// CalculateScore scores a served plate for a customer. The only error is an
// unknown plate size in the customer's order.
func CalculateScore(customer models.Customer, items []models.PlateItem, foods FoodLookup) (models.ScoreResult, error) {
	if len(items) == 0 {
		return models.ScoreResult{Score: 0, Feedback: EmptyPlateFeedback, Reaction: models.ReactionSad}, nil
	}

	goals, err := GetMealGoals(customer.Order.PlateSize, customer.Order.DietaryMode)
	if err != nil {
		return models.ScoreResult{}, err
	}

	if missing := missingItems(customer.Order.RequiredItems, items); len(missing) > 0 {
		labels := make([]string, 0, len(missing))
		for _, id := range missing {
			labels = append(labels, foodLabel(id, foods))
		}
		return models.ScoreResult{
			Score:    missingItemScore,
			Feedback: customer.Dialogue.Neutral + missingItemsPrefix + strings.Join(labels, reasonSeparator) + ".",
			Reaction: models.ReactionSad,
		}, nil
	}

	ctx := &scoreContext{
		order:  customer.Order,
		totals: CalculateTotalNutrients(items, foods),
		goals:  goals,
		items:  items,
		foods:  foods,
	}

	var penalties []models.Penalty
	deducted := 0
	for _, check := range checks {
		points, reason := check.apply(ctx)
		if points == 0 {
			continue
		}
		deducted += points
		penalties = append(penalties, models.Penalty{Nutrient: check.nutrient, Points: points, Reason: reason})
	}

	score := maxScore - deducted
	if score < 0 {
		score = 0
	}

	result := models.ScoreResult{Score: score, Penalties: penalties}
	switch {
	case score >= happyThreshold:
		result.Feedback = customer.Dialogue.Positive
		result.Reaction = models.ReactionHappy
	case score >= neutralThreshold:
		result.Feedback = customer.Dialogue.Neutral
		if len(penalties) > 0 {
			result.Feedback += neutralFeedbackJoiner + penalties[0].Reason
		}
		result.Reaction = models.ReactionNeutral
	default:
		result.Feedback = customer.Dialogue.Negative
		if len(penalties) > 0 {
			result.Feedback += negativeFeedbackJoiner + joinReasons(penalties)
		}
		result.Reaction = models.ReactionSad
	}
	return result, nil
}

func missingItems(required []string, items []models.PlateItem) []string {
	if len(required) == 0 {
		return nil
	}
	served := make(map[string]struct{}, len(items))
	for _, item := range items {
		served[item.ID] = struct{}{}
	}
	var missing []string
	for _, id := range required {
		if _, ok := served[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func hasTreat(items []models.PlateItem, foods FoodLookup) bool {
	if foods == nil {
		return false
	}
	for _, item := range items {
		if food, ok := foods.Food(item.ID); ok && food.IsTreat {
			return true
		}
	}
	return false
}

func foodLabel(id string, foods FoodLookup) string {
	if foods != nil {
		if food, ok := foods.Food(id); ok && food.Label != "" {
			return food.Label
		}
	}
	return unknownDishLabel
}

func joinReasons(penalties []models.Penalty) string {
	reasons := make([]string, len(penalties))
	for i, p := range penalties {
		reasons[i] = p.Reason
	}
	return strings.Join(reasons, reasonSeparator)
}
