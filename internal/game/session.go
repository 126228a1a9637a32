package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mcp-nutriserve/internal/models"
	"mcp-nutriserve/internal/nutrition"
)

var (
	ErrAlreadyServed = errors.New("plate already served, move to the next customer")
	ErrNoCustomers   = errors.New("no customers configured")
)

// Session is one player's progress through the customer queue.
type Session struct {
	ID            string              `json:"id"`
	CustomerIndex int                 `json:"customer_index"`
	TotalScore    int                 `json:"total_score"`
	IsPostOrder   bool                `json:"is_post_order"`
	LastResult    *models.OrderResult `json:"last_result,omitempty"`
	Plate         Plate               `json:"plate"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentCustomer returns the customer being served.
func (s *Session) CurrentCustomer(customers []models.Customer) (models.Customer, error) {
	if len(customers) == 0 {
		return models.Customer{}, ErrNoCustomers
	}
	return customers[s.CustomerIndex%len(customers)], nil
}

// EditPlate runs fn against the plate unless the order was already served.
func (s *Session) EditPlate(now time.Time, fn func(p *Plate) error) error {
	if s.IsPostOrder {
		return ErrAlreadyServed
	}
	if err := fn(&s.Plate); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// Serve scores the current plate for the current customer and adds the
// score to the running total.
func (s *Session) Serve(customers []models.Customer, foods nutrition.FoodLookup, now time.Time) (models.OrderResult, error) {
	if s.IsPostOrder {
		return models.OrderResult{}, ErrAlreadyServed
	}
	customer, err := s.CurrentCustomer(customers)
	if err != nil {
		return models.OrderResult{}, err
	}
	scored, err := nutrition.CalculateScore(customer, s.Plate.Items, foods)
	if err != nil {
		return models.OrderResult{}, fmt.Errorf("failed to score plate: %w", err)
	}

	result := models.OrderResult{
		ID:            uuid.NewString(),
		SessionID:     s.ID,
		CustomerIndex: s.CustomerIndex,
		CustomerID:    customer.ID,
		Score:         scored.Score,
		Feedback:      scored.Feedback,
		Reaction:      scored.Reaction,
		Penalties:     scored.Penalties,
		ServedAt:      now,
	}
	s.TotalScore += scored.Score
	s.IsPostOrder = true
	s.LastResult = &result
	s.UpdatedAt = now
	return result, nil
}

// NextCustomer clears the plate and moves to the next customer, wrapping
// around after the last one.
func (s *Session) NextCustomer(customerCount int, now time.Time) error {
	if customerCount <= 0 {
		return ErrNoCustomers
	}
	s.Plate.Clear()
	s.CustomerIndex = (s.CustomerIndex + 1) % customerCount
	s.IsPostOrder = false
	s.UpdatedAt = now
	return nil
}
