package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriai/backend/internal/models"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 60 * time.Second
)

// PopularIngredient is a usage-count sample for the demo stats endpoint
type PopularIngredient struct {
	Ingredient string `json:"ingredient"`
	UsageCount int    `json:"usage_count"`
}

// Sample data; deriving real counts from saved recipes is a followup once
// there is enough traffic to make them meaningful.
var popularIngredients = []PopularIngredient{
	{Ingredient: "rice", UsageCount: 45},
	{Ingredient: "beans", UsageCount: 38},
	{Ingredient: "tomatoes", UsageCount: 35},
	{Ingredient: "onions", UsageCount: 32},
	{Ingredient: "kale", UsageCount: 28},
}

// AdminHandler serves aggregate usage statistics
type AdminHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewAdminHandler creates a new AdminHandler instance. The Redis client is
// optional; without it every request recomputes the aggregates.
func NewAdminHandler(db *gorm.DB, redisClient *redis.Client) *AdminHandler {
	return &AdminHandler{db: db, redis: redisClient}
}

// RegisterRoutes registers the admin routes
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin/stats", h.GetStats)
}

// GetStats returns aggregate counts and engagement numbers
func (h *AdminHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, statsCacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)

	var totalUsers, totalRecipes, generatedToday, activeToday int64
	db := h.db.WithContext(ctx)
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	if err := db.Model(&models.Recipe{}).Count(&totalRecipes).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	if err := db.Model(&models.UserAnalytics{}).
		Where("action = ? AND timestamp >= ?", "recipes_generated", startOfDay).
		Count(&generatedToday).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	if err := db.Model(&models.User{}).
		Where("last_active >= ?", startOfDay).
		Count(&activeToday).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	engagementRate := 0.0
	if totalUsers > 0 {
		engagementRate = float64(activeToday) / float64(totalUsers) * 100
	}

	response := gin.H{
		"success": true,
		"stats": gin.H{
			"total_users":              totalUsers,
			"total_recipes":            totalRecipes,
			"recipes_generated_today":  generatedToday,
			"most_popular_ingredients": popularIngredients,
			"user_engagement": gin.H{
				"total_users":     totalUsers,
				"active_today":    activeToday,
				"engagement_rate": engagementRate,
			},
		},
	}

	if h.redis != nil {
		if encoded, err := json.Marshal(response); err == nil {
			if err := h.redis.Set(ctx, statsCacheKey, encoded, statsCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache admin stats: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
