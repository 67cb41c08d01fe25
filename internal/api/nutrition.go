package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriai/backend/internal/service"
)

// NutritionHandler serves the nutrition heuristics and the static ingredient
// suggestions.
type NutritionHandler struct{}

// NewNutritionHandler creates a new NutritionHandler instance
func NewNutritionHandler() *NutritionHandler {
	return &NutritionHandler{}
}

// RegisterRoutes registers the nutrition routes
func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/nutrition/analyze", h.Analyze)
	router.GET("/ingredients/suggest", h.SuggestIngredients)
}

// Analyze scores the submitted ingredient list
func (h *NutritionHandler) Analyze(c *gin.Context) {
	var req struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis := service.AnalyzeIngredients(req.Ingredients)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// SuggestIngredients returns the fixed map of common local ingredients
func (h *NutritionHandler) SuggestIngredients(c *gin.Context) {
	commonIngredients := map[string][]string{
		"proteins":   {"chicken", "fish", "beans", "lentils", "eggs", "groundnuts"},
		"vegetables": {"tomatoes", "kale", "cabbage", "carrots", "onions", "spinach"},
		"grains":     {"rice", "maize", "millet", "sorghum", "wheat"},
		"fruits":     {"bananas", "oranges", "mangoes", "avocados"},
		"staples":    {"oil", "salt", "garlic", "ginger"},
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"ingredients": commonIngredients,
	})
}
