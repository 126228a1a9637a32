package server

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"mcp-nutriserve/internal/game"
	"mcp-nutriserve/internal/models"
	"mcp-nutriserve/internal/nutrition"
)

const defaultHistoryLimit = 20

type SessionParams struct {
	SessionID string `json:"session_id" description:"Game session id returned by new_session"`
}

type SearchFoodsParams struct {
	Query string `json:"query" description:"Food id or name, typos tolerated"`
	Limit int    `json:"limit,omitempty" description:"Maximum number of matches"`
}

type MealGoalsParams struct {
	PlateSize   models.PlateSize   `json:"plate_size" description:"Light, Regular or Hearty"`
	DietaryMode models.DietaryMode `json:"dietary_mode,omitempty" description:"None, Balanced or Low-Carb"`
}

type AnalyzePlateParams struct {
	SessionID string             `json:"session_id,omitempty" description:"Analyze this session's plate for its current customer"`
	Order     *models.Order      `json:"order,omitempty" description:"Order to judge against when no session is given"`
	Items     []models.PlateItem `json:"items,omitempty" description:"Plate items when no session is given"`
}

type GlycemicCurveParams struct {
	CarbsG float64 `json:"carbs_g" description:"Total carbohydrate in grams"`
	FiberG float64 `json:"fiber_g" description:"Total fiber in grams"`
	FatG   float64 `json:"fat_g" description:"Total fat in grams"`
}

type ScorePlateParams struct {
	CustomerID string             `json:"customer_id" description:"Customer to serve"`
	Items      []models.PlateItem `json:"items" description:"Plate items"`
}

type AddItemParams struct {
	SessionID string `json:"session_id" description:"Game session id"`
	FoodID    string `json:"food_id" description:"Catalog food id"`
}

type PlateItemParams struct {
	SessionID  string  `json:"session_id" description:"Game session id"`
	InstanceID string  `json:"instance_id" description:"Plate item instance id"`
	Grams      float64 `json:"grams,omitempty" description:"New weight in grams"`
	VolumeML   float64 `json:"volume_ml,omitempty" description:"New volume in ml"`
}

type HistoryParams struct {
	SessionID string `json:"session_id" description:"Game session id"`
	Limit     int    `json:"limit,omitempty" description:"Maximum number of results to return"`
}

type FunFactParams struct {
	Index int `json:"index" description:"Rotation index, wraps around"`
}

// SessionView is a session together with the customer currently waiting.
type SessionView struct {
	Session  *game.Session   `json:"session"`
	Customer models.Customer `json:"customer"`
}

type CurveView struct {
	Curve    []models.GlycemicPoint `json:"curve"`
	PeakRise float64                `json:"peak_rise"`
	Level    nutrition.CurveLevel   `json:"level"`
}

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %v", errBadParams, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: %v", errBadParams, err)
	}

	return nil
}

func (s *NutriServeServer) registerTools() {
	s.tools = map[string]toolHandler{
		"list_foods":     s.handleListFoods,
		"search_foods":   s.handleSearchFoods,
		"list_customers": s.handleListCustomers,
		"get_meal_goals": s.handleGetMealGoals,
		"analyze_plate":  s.handleAnalyzePlate,
		"glycemic_curve": s.handleGlycemicCurve,
		"score_plate":    s.handleScorePlate,
		"new_session":    s.handleNewSession,
		"get_session":    s.handleGetSession,
		"add_item":       s.handleAddItem,
		"remove_item":    s.handleRemoveItem,
		"update_portion": s.handleUpdatePortion,
		"clear_plate":    s.handleClearPlate,
		"serve_plate":    s.handleServePlate,
		"next_customer":  s.handleNextCustomer,
		"get_history":    s.handleGetHistory,
		"fun_fact":       s.handleFunFact,
	}
}

func (s *NutriServeServer) handleListFoods(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.createJSONResponse(s.catalog.Groups())
}

func (s *NutriServeServer) handleSearchFoods(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SearchFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", errBadParams)
	}
	if params.Limit <= 0 {
		params.Limit = 5
	}
	return s.createJSONResponse(s.catalog.Search(params.Query, params.Limit))
}

func (s *NutriServeServer) handleListCustomers(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.createJSONResponse(s.catalog.Customers())
}

func (s *NutriServeServer) handleGetMealGoals(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params MealGoalsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.DietaryMode == "" {
		params.DietaryMode = models.DietNone
	}
	goals, err := nutrition.GetMealGoals(params.PlateSize, params.DietaryMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadParams, err)
	}
	return s.createJSONResponse(goals)
}

func (s *NutriServeServer) handleAnalyzePlate(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params AnalyzePlateParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	var order models.Order
	items := params.Items
	switch {
	case params.SessionID != "":
		sess, err := s.storage.GetSession(params.SessionID)
		if err != nil {
			return nil, err
		}
		customer, err := sess.CurrentCustomer(s.catalog.Customers())
		if err != nil {
			return nil, err
		}
		order = customer.Order
		items = sess.Plate.Items
	case params.Order != nil:
		order = *params.Order
	default:
		return nil, fmt.Errorf("%w: session_id or order is required", errBadParams)
	}

	analysis, err := nutrition.AnalyzePlate(order, items, s.catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadParams, err)
	}
	return s.createJSONResponse(analysis)
}

func (s *NutriServeServer) handleGlycemicCurve(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GlycemicCurveParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	curve := nutrition.GlycemicCurve(params.CarbsG, params.FiberG, params.FatG)
	peak := nutrition.PeakRise(curve)
	return s.createJSONResponse(CurveView{Curve: curve, PeakRise: peak, Level: nutrition.ClassifyCurve(peak)})
}

// handleScorePlate scores a plate without touching any session
func (s *NutriServeServer) handleScorePlate(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ScorePlateParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	customer, ok := s.findCustomer(params.CustomerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownCust, params.CustomerID)
	}
	result, err := nutrition.CalculateScore(customer, params.Items, s.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to score plate: %w", err)
	}
	return s.createJSONResponse(result)
}

func (s *NutriServeServer) handleNewSession(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	sess := game.NewSession(s.now())
	if err := s.storage.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	log.Printf("Created session %s", sess.ID)
	return s.sessionResponse(sess)
}

func (s *NutriServeServer) handleGetSession(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	sess, err := s.loadSession(req)
	if err != nil {
		return nil, err
	}
	return s.sessionResponse(sess)
}

func (s *NutriServeServer) handleAddItem(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params AddItemParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	food, ok := s.catalog.Food(params.FoodID)
	if !ok {
		return nil, s.unknownFoodError(params.FoodID)
	}
	return s.editPlate(params.SessionID, func(p *game.Plate) error {
		p.AddItem(food)
		return nil
	})
}

func (s *NutriServeServer) handleRemoveItem(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params PlateItemParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return s.editPlate(params.SessionID, func(p *game.Plate) error {
		return p.Remove(params.InstanceID)
	})
}

func (s *NutriServeServer) handleUpdatePortion(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params PlateItemParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return s.editPlate(params.SessionID, func(p *game.Plate) error {
		_, err := p.UpdatePortion(params.InstanceID, game.Portion{Grams: params.Grams, VolumeML: params.VolumeML})
		return err
	})
}

func (s *NutriServeServer) handleClearPlate(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SessionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return s.editPlate(params.SessionID, func(p *game.Plate) error {
		p.Clear()
		return nil
	})
}

func (s *NutriServeServer) handleServePlate(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	sess, err := s.loadSession(req)
	if err != nil {
		return nil, err
	}

	result, err := sess.Serve(s.catalog.Customers(), s.catalog, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveOrderResult(&result); err != nil {
		return nil, fmt.Errorf("failed to save order result: %w", err)
	}
	if err := s.storage.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	log.Printf("Session %s served %s: score %d (%s)", sess.ID, result.CustomerID, result.Score, result.Reaction)

	return s.createJSONResponse(result)
}

func (s *NutriServeServer) handleNextCustomer(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	sess, err := s.loadSession(req)
	if err != nil {
		return nil, err
	}
	if err := sess.NextCustomer(len(s.catalog.Customers()), s.now()); err != nil {
		return nil, err
	}
	if err := s.storage.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.sessionResponse(sess)
}

func (s *NutriServeServer) handleGetHistory(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params HistoryParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	// Set defaults
	if params.Limit <= 0 {
		params.Limit = defaultHistoryLimit
	}

	if _, err := s.storage.GetSession(params.SessionID); err != nil {
		return nil, err
	}
	results, err := s.storage.GetOrderResults(params.SessionID, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve history: %w", err)
	}
	if results == nil {
		results = []*models.OrderResult{}
	}
	return s.createJSONResponse(results)
}

func (s *NutriServeServer) handleFunFact(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params FunFactParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	fact, ok := s.catalog.FactAt(params.Index)
	if !ok {
		return nil, fmt.Errorf("no facts available")
	}
	return s.createJSONResponse(fact)
}

func (s *NutriServeServer) loadSession(req *protocol.CallToolRequest) (*game.Session, error) {
	var params SessionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.SessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", errBadParams)
	}
	return s.storage.GetSession(params.SessionID)
}

func (s *NutriServeServer) editPlate(sessionID string, fn func(p *game.Plate) error) (*protocol.CallToolResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", errBadParams)
	}
	sess, err := s.storage.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.EditPlate(s.now(), fn); err != nil {
		return nil, err
	}
	if err := s.storage.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.sessionResponse(sess)
}

func (s *NutriServeServer) sessionResponse(sess *game.Session) (*protocol.CallToolResult, error) {
	customer, err := sess.CurrentCustomer(s.catalog.Customers())
	if err != nil {
		return nil, err
	}
	return s.createJSONResponse(SessionView{Session: sess, Customer: customer})
}

func (s *NutriServeServer) findCustomer(id string) (models.Customer, bool) {
	for _, c := range s.catalog.Customers() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *NutriServeServer) unknownFoodError(id string) error {
	matches := s.catalog.Search(id, 3)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", errUnknownFood, id)
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return fmt.Errorf("%w: %q (did you mean %s?)", errUnknownFood, id, strings.Join(ids, ", "))
}
