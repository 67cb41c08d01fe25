package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutriai/backend/internal/models"
	"github.com/nutriai/backend/internal/service"
	"github.com/nutriai/backend/internal/testhelpers"
)

func setupAnalyticsTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	handler := NewAnalyticsHandler(service.NewAnalyticsService(db))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, db
}

func TestTrackAnalytics(t *testing.T) {
	router, db := setupAnalyticsTestRouter(t)

	w := postJSON(t, router, "/api/analytics/track", map[string]interface{}{
		"user_id": "user-1",
		"action":  "ingredient_selected",
		"data":    map[string]interface{}{"ingredient": "kale"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	var event models.UserAnalytics
	require.NoError(t, db.First(&event, "user_id = ?", "user-1").Error)
	assert.Equal(t, "ingredient_selected", event.Action)
	assert.JSONEq(t, `{"ingredient": "kale"}`, event.Data)
}

func TestTrackAnalyticsValidation(t *testing.T) {
	router, _ := setupAnalyticsTestRouter(t)

	w := postJSON(t, router, "/api/analytics/track", map[string]interface{}{
		"action": "ingredient_selected",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/analytics/track", map[string]interface{}{
		"user_id": "user-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}
