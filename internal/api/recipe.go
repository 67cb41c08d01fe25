package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriai/backend/internal/service"
)

// RecipeHandler handles recipe generation, saving and listing
type RecipeHandler struct {
	llmService       *service.LLMService
	recipeService    *service.RecipeService
	userService      *service.UserService
	analyticsService *service.AnalyticsService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(llm *service.LLMService, recipes *service.RecipeService, users *service.UserService, analytics *service.AnalyticsService) *RecipeHandler {
	return &RecipeHandler{
		llmService:       llm,
		recipeService:    recipes,
		userService:      users,
		analyticsService: analytics,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/generate", h.GenerateRecipes)
		recipes.POST("/save", h.SaveRecipe)
		recipes.GET("/user/:user_id", h.GetUserRecipes)
	}
}

// GenerateRecipes turns an ingredient list into suggested recipes, persists
// them and records the generation event.
func (h *RecipeHandler) GenerateRecipes(c *gin.Context) {
	var req struct {
		Ingredients  []string `json:"ingredients"`
		DietaryNeeds string   `json:"dietary_needs"`
		UserID       string   `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Ingredients) == 0 {
		respondError(c, http.StatusBadRequest, "No ingredients provided")
		return
	}

	if req.UserID != "" {
		if _, err := h.userService.GetOrCreate(c.Request.Context(), req.UserID); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to resolve user")
			return
		}
	}

	// Never fails: falls back to static templates on any provider problem
	recipes := h.llmService.GenerateRecipes(c.Request.Context(), req.Ingredients, req.DietaryNeeds)

	var tags []string
	if req.DietaryNeeds != "" {
		tags = []string{req.DietaryNeeds}
	}
	if err := h.recipeService.StoreGenerated(c.Request.Context(), recipes, tags); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to store recipes")
		return
	}

	h.analyticsService.Track(c.Request.Context(), req.UserID, "recipes_generated", map[string]interface{}{
		"ingredients_count": len(req.Ingredients),
		"dietary_needs":     req.DietaryNeeds,
		"recipes_count":     len(recipes),
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipes": recipes,
		"message": fmt.Sprintf("Generated %d recipes successfully", len(recipes)),
	})
}

// SaveRecipe links a previously generated recipe to a user
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var req struct {
		Recipe *struct {
			ID string `json:"id"`
		} `json:"recipe"`
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Recipe == nil || req.Recipe.ID == "" || req.UserID == "" {
		respondError(c, http.StatusBadRequest, "Missing recipe or user data")
		return
	}

	if _, err := h.userService.GetOrCreate(c.Request.Context(), req.UserID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve user")
		return
	}

	created, err := h.recipeService.SaveForUser(c.Request.Context(), req.UserID, req.Recipe.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save recipe")
		return
	}

	if created {
		h.analyticsService.Track(c.Request.Context(), req.UserID, "recipe_saved", map[string]interface{}{
			"recipe_id": req.Recipe.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe saved successfully",
	})
}

// GetUserRecipes returns the user's saved recipes with their save timestamps
func (h *RecipeHandler) GetUserRecipes(c *gin.Context) {
	userID := c.Param("user_id")

	recipes, err := h.recipeService.ListSavedByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch saved recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipes": recipes,
	})
}
