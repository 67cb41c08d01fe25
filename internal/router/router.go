package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutriai/backend/internal/api"
	"github.com/nutriai/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	analyticsHandler *api.AnalyticsHandler,
	nutritionHandler *api.NutritionHandler,
	healthHandler *api.HealthHandler,
	adminHandler *api.AdminHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.Default())
	router.NoRoute(middleware.NotFound())

	apiGroup := router.Group("/api")
	{
		recipeHandler.RegisterRoutes(apiGroup)
		analyticsHandler.RegisterRoutes(apiGroup)
		nutritionHandler.RegisterRoutes(apiGroup)
		healthHandler.RegisterRoutes(apiGroup)
		adminHandler.RegisterRoutes(apiGroup)
	}

	return router
}
