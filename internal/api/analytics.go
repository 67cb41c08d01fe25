package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriai/backend/internal/service"
)

// AnalyticsHandler handles explicit analytics tracking requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analytics}
}

// RegisterRoutes registers the analytics routes
func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analytics/track", h.Track)
}

// Track records a client-reported user action. The write itself is
// best-effort, so the response is successful once validation passes.
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req struct {
		UserID string                 `json:"user_id"`
		Action string                 `json:"action"`
		Data   map[string]interface{} `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Action == "" {
		respondError(c, http.StatusBadRequest, "Missing required data")
		return
	}

	h.analyticsService.Track(c.Request.Context(), req.UserID, req.Action, req.Data)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
