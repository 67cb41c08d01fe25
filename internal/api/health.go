package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nutriai/backend/internal/database"
)

// Version reported by the liveness probe
const Version = "1.0.0"

// HealthTip is a static piece of nutrition guidance
type HealthTip struct {
	Category   string `json:"category"`
	Tip        string `json:"tip"`
	Importance string `json:"importance"`
}

var healthTips = []HealthTip{
	{Category: "nutrition", Tip: "Eat a variety of colorful vegetables daily for different vitamins and minerals.", Importance: "high"},
	{Category: "hydration", Tip: "Drink clean water regularly - aim for 6-8 glasses per day.", Importance: "critical"},
	{Category: "protein", Tip: "Include protein in every meal to support growth and healing.", Importance: "high"},
	{Category: "grains", Tip: "Choose whole grains over refined grains when possible.", Importance: "medium"},
	{Category: "calcium", Tip: "Include calcium-rich foods for bone health.", Importance: "high"},
}

// HealthHandler serves the liveness and readiness probes and static health tips
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes registers the health routes
func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.HealthCheck)
	router.GET("/health/ready", h.Readiness)
	router.GET("/health/tips", h.GetHealthTips)
}

// HealthCheck reports liveness independent of database or provider state
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

// Readiness reports whether the database is reachable. Unlike the liveness
// probe this fails when the backing store is down.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		respondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ready",
	})
}

// GetHealthTips returns the fixed list of health tips
func (h *HealthHandler) GetHealthTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tips":    healthTips,
	})
}
