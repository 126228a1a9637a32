package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-nutriserve/internal/game"
	"mcp-nutriserve/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	t.Helper()
	stor, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nutriserve.db"))
	require.NoError(t, err)
	t.Cleanup(func() { stor.Close() })
	return stor
}

func TestSaveAndGetSession(t *testing.T) {
	stor := setupTestDB(t)
	now := time.Date(2024, 7, 30, 9, 15, 0, 123456789, time.UTC)

	sess := game.NewSession(now)
	sess.Plate.Items = []models.PlateItem{
		{ID: "chana_masala", InstanceID: "chana_1", VolumeML: 150},
		{ID: "roti", InstanceID: "roti_1", Grams: 40},
	}
	require.NoError(t, stor.SaveSession(sess))

	got, err := stor.GetSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Plate.Items, got.Plate.Items)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.False(t, got.IsPostOrder)
	assert.Nil(t, got.LastResult)
}

func TestSaveSessionReplacesPlate(t *testing.T) {
	stor := setupTestDB(t)
	now := time.Now()

	sess := game.NewSession(now)
	sess.Plate.Items = []models.PlateItem{{ID: "roti", InstanceID: "roti_1", Grams: 40}}
	require.NoError(t, stor.SaveSession(sess))

	sess.Plate.Items = []models.PlateItem{{ID: "poha", InstanceID: "poha_1", VolumeML: 250}}
	sess.CustomerIndex = 2
	sess.TotalScore = 140
	require.NoError(t, stor.SaveSession(sess))

	got, err := stor.GetSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Plate.Items, got.Plate.Items)
	assert.Equal(t, 2, got.CustomerIndex)
	assert.Equal(t, 140, got.TotalScore)
}

func TestGetSessionNotFound(t *testing.T) {
	stor := setupTestDB(t)
	_, err := stor.GetSession("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestOrderResultsRoundTrip(t *testing.T) {
	stor := setupTestDB(t)
	start := time.Date(2024, 7, 30, 12, 0, 0, 0, time.UTC)

	sess := game.NewSession(start)
	require.NoError(t, stor.SaveSession(sess))

	first := &models.OrderResult{
		ID: "r1", SessionID: sess.ID, CustomerIndex: 0, CustomerID: "customer_a",
		Score: 40, Feedback: "Missing dish", Reaction: models.ReactionSad, ServedAt: start,
	}
	second := &models.OrderResult{
		ID: "r2", SessionID: sess.ID, CustomerIndex: 1, CustomerID: "customer_b",
		Score: 80, Feedback: "Close", Reaction: models.ReactionNeutral,
		Penalties: []models.Penalty{{Nutrient: "carbs_g", Points: 20, Reason: "it was too high in carbs."}},
		ServedAt:  start.Add(1500 * time.Millisecond),
	}
	require.NoError(t, stor.SaveOrderResult(first))
	require.NoError(t, stor.SaveOrderResult(second))

	sess.LastResult = second
	sess.IsPostOrder = true
	require.NoError(t, stor.SaveSession(sess))

	results, err := stor.GetOrderResults(sess.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "r2", results[0].ID)
	assert.Equal(t, second.Penalties, results[0].Penalties)
	assert.True(t, second.ServedAt.Equal(results[0].ServedAt))
	assert.Equal(t, "r1", results[1].ID)
	assert.Nil(t, results[1].Penalties)

	limited, err := stor.GetOrderResults(sess.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	got, err := stor.GetSession(sess.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPostOrder)
	require.NotNil(t, got.LastResult)
	assert.Equal(t, "r2", got.LastResult.ID)

	_, err = stor.GetOrderResult("nope")
	assert.ErrorIs(t, err, ErrResultNotFound)
}
