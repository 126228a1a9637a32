package models

import "time"

type NutrientStatus string

const (
	StatusLow  NutrientStatus = "low"
	StatusGood NutrientStatus = "good"
	StatusHigh NutrientStatus = "high"
	StatusOK   NutrientStatus = "ok"
)

type Reaction string

const (
	ReactionHappy   Reaction = "happy"
	ReactionNeutral Reaction = "neutral"
	ReactionSad     Reaction = "sad"
)

// Penalty is one deduction applied while scoring a plate.
type Penalty struct {
	Nutrient string `json:"nutrient"`
	Points   int    `json:"points"`
	Reason   string `json:"reason"`
}

type ScoreResult struct {
	Score     int       `json:"score"`
	Feedback  string    `json:"feedback"`
	Reaction  Reaction  `json:"reaction"`
	Penalties []Penalty `json:"penalties,omitempty"`
}

// GlycemicPoint is the relative glucose rise Time minutes after a meal.
type GlycemicPoint struct {
	Time int     `json:"time"`
	Rise float64 `json:"rise"`
}

// OrderResult records one served plate within a game session.
type OrderResult struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	CustomerIndex int       `json:"customer_index"`
	CustomerID    string    `json:"customer_id"`
	Score         int       `json:"score"`
	Feedback      string    `json:"feedback"`
	Reaction      Reaction  `json:"reaction"`
	Penalties     []Penalty `json:"penalties,omitempty"`
	ServedAt      time.Time `json:"served_at"`
}
