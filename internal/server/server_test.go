package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-nutriserve/internal/catalog"
	"mcp-nutriserve/internal/models"
	"mcp-nutriserve/internal/nutrition"
	"mcp-nutriserve/internal/storage"
)

type toolResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func setupTestServer(t *testing.T) *NutriServeServer {
	t.Helper()
	stor, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { stor.Close() })

	srv := newNutriServeServer(&Config{Transport: "http", Host: "127.0.0.1", Port: 0}, stor, catalog.Default())
	srv.now = func() time.Time { return time.Date(2024, 7, 30, 12, 0, 0, 0, time.UTC) }
	return srv
}

func callTool(t *testing.T, srv *NutriServeServer, name string, args map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleHTTP(rec, req)
	return rec
}

// decodeTool unwraps the JSON payload carried in the tool result's text content.
func decodeTool(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp toolResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "text", resp.Content[0].Type)
	require.NoError(t, json.Unmarshal([]byte(resp.Content[0].Text), target))
}

func TestHandleHTTPRejectsBadRequests(t *testing.T) {
	srv := setupTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	srv.handleHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"arguments":{}}`))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusNotFound, callTool(t, srv, "order_pizza", nil).Code)
	assert.Equal(t, http.StatusBadRequest, callTool(t, srv, "get_meal_goals", map[string]interface{}{"plate_size": "Huge"}).Code)
	assert.Equal(t, http.StatusNotFound, callTool(t, srv, "get_session", map[string]interface{}{"session_id": "missing"}).Code)
	assert.Equal(t, http.StatusBadRequest, callTool(t, srv, "get_session", map[string]interface{}{}).Code)
	assert.Equal(t, http.StatusNotFound, callTool(t, srv, "score_plate", map[string]interface{}{"customer_id": "nobody"}).Code)
}

func TestGetMealGoalsTool(t *testing.T) {
	srv := setupTestServer(t)

	var goals models.MealGoals
	decodeTool(t, callTool(t, srv, "get_meal_goals", map[string]interface{}{
		"plate_size":   "Light",
		"dietary_mode": "Balanced",
	}), &goals)

	want, err := nutrition.GetMealGoals(models.PlateLight, models.DietBalanced)
	require.NoError(t, err)
	assert.Equal(t, want, goals)
}

func TestSearchAndListFoods(t *testing.T) {
	srv := setupTestServer(t)

	var hits []models.FoodItem
	decodeTool(t, callTool(t, srv, "search_foods", map[string]interface{}{"query": "chana"}), &hits)
	require.NotEmpty(t, hits)
	assert.Equal(t, "chana_masala", hits[0].ID)

	var groups []models.FoodGroup
	decodeTool(t, callTool(t, srv, "list_foods", nil), &groups)
	assert.NotEmpty(t, groups)
}

func TestScorePlateTool(t *testing.T) {
	srv := setupTestServer(t)

	var result models.ScoreResult
	decodeTool(t, callTool(t, srv, "score_plate", map[string]interface{}{
		"customer_id": "customer_a",
		"items":       []map[string]interface{}{},
	}), &result)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "You served me an empty plate!", result.Feedback)
	assert.Equal(t, models.ReactionSad, result.Reaction)
}

func TestGlycemicCurveTool(t *testing.T) {
	srv := setupTestServer(t)

	var view CurveView
	decodeTool(t, callTool(t, srv, "glycemic_curve", map[string]interface{}{
		"carbs_g": 100, "fiber_g": 10, "fat_g": 20,
	}), &view)

	assert.Len(t, view.Curve, 181)
	assert.InDelta(t, 42.5, view.PeakRise, 1e-9)
	assert.Equal(t, nutrition.CurveLow, view.Level)
}

func TestSessionFlow(t *testing.T) {
	srv := setupTestServer(t)

	var view SessionView
	decodeTool(t, callTool(t, srv, "new_session", nil), &view)
	id := view.Session.ID
	require.NotEmpty(t, id)
	assert.Equal(t, "customer_a", view.Customer.ID)

	for _, food := range []string{"chana_masala", "tandoori_chicken", "roti", "brown_rice"} {
		decodeTool(t, callTool(t, srv, "add_item", map[string]interface{}{"session_id": id, "food_id": food}), &view)
	}
	require.Len(t, view.Session.Plate.Items, 4)
	rice := view.Session.Plate.Items[3]

	decodeTool(t, callTool(t, srv, "update_portion", map[string]interface{}{
		"session_id": id, "instance_id": rice.InstanceID, "volume_ml": 100,
	}), &view)
	assert.Equal(t, 100.0, view.Session.Plate.Items[3].VolumeML)

	rec := callTool(t, srv, "add_item", map[string]interface{}{"session_id": id, "food_id": "chana masla"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "chana_masala")

	var analysis nutrition.PlateAnalysis
	decodeTool(t, callTool(t, srv, "analyze_plate", map[string]interface{}{"session_id": id}), &analysis)
	for _, m := range analysis.Meters {
		assert.Equal(t, models.StatusGood, m.Status, m.Name)
	}

	var result models.OrderResult
	decodeTool(t, callTool(t, srv, "serve_plate", map[string]interface{}{"session_id": id}), &result)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, models.ReactionHappy, result.Reaction)

	assert.Equal(t, http.StatusConflict, callTool(t, srv, "serve_plate", map[string]interface{}{"session_id": id}).Code)
	assert.Equal(t, http.StatusConflict, callTool(t, srv, "clear_plate", map[string]interface{}{"session_id": id}).Code)

	decodeTool(t, callTool(t, srv, "next_customer", map[string]interface{}{"session_id": id}), &view)
	assert.Equal(t, 1, view.Session.CustomerIndex)
	assert.Equal(t, 100, view.Session.TotalScore)
	assert.Empty(t, view.Session.Plate.Items)
	assert.Equal(t, "customer_b", view.Customer.ID)

	var history []models.OrderResult
	decodeTool(t, callTool(t, srv, "get_history", map[string]interface{}{"session_id": id}), &history)
	require.Len(t, history, 1)
	assert.Equal(t, result.ID, history[0].ID)
}

func TestRemoveItemTool(t *testing.T) {
	srv := setupTestServer(t)

	var view SessionView
	decodeTool(t, callTool(t, srv, "new_session", nil), &view)
	id := view.Session.ID
	decodeTool(t, callTool(t, srv, "add_item", map[string]interface{}{"session_id": id, "food_id": "poha"}), &view)
	instance := view.Session.Plate.Items[0].InstanceID

	decodeTool(t, callTool(t, srv, "remove_item", map[string]interface{}{"session_id": id, "instance_id": instance}), &view)
	assert.Empty(t, view.Session.Plate.Items)

	rec := callTool(t, srv, "remove_item", map[string]interface{}{"session_id": id, "instance_id": instance})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = callTool(t, srv, "update_portion", map[string]interface{}{"session_id": id, "instance_id": instance})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFunFactTool(t *testing.T) {
	srv := setupTestServer(t)

	var fact models.Fact
	decodeTool(t, callTool(t, srv, "fun_fact", map[string]interface{}{"index": 1}), &fact)
	want, _ := srv.catalog.FactAt(1)
	assert.Equal(t, want, fact)
}
