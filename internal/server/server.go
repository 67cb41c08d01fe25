package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriai/backend/config"
	"github.com/nutriai/backend/internal/api"
	"github.com/nutriai/backend/internal/router"
	"github.com/nutriai/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
}

// New wires services and handlers onto a server instance. The Redis client
// may be nil; only the admin stats cache depends on it.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	llmService := service.NewLLMService(cfg)
	userService := service.NewUserService(db)
	recipeService := service.NewRecipeService(db)
	analyticsService := service.NewAnalyticsService(db)

	engine := router.SetupRouter(
		api.NewRecipeHandler(llmService, recipeService, userService, analyticsService),
		api.NewAnalyticsHandler(analyticsService),
		api.NewNutritionHandler(),
		api.NewHealthHandler(db),
		api.NewAdminHandler(db, redisClient),
	)

	return &Server{cfg: cfg, engine: engine}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

// Engine exposes the configured router, mainly for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
