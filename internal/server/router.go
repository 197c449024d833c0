package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/journey-backend/internal/handlers"
	"github.com/yungbote/journey-backend/internal/middleware"
	"github.com/yungbote/journey-backend/internal/observability"
)

type RouterConfig struct {
	JourneyHandler *handlers.JourneyHandler
	StageHandler   *handlers.StageHandler
	StepHandler    *handlers.StepHandler
	Metrics        *observability.Metrics
	CORSOrigin     string
	ServiceName    string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors: single configured frontend origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestID())
	if cfg.ServiceName != "" {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Journeys
		api.GET("/journeys/:id", cfg.JourneyHandler.GetJourney)
		// Stages
		api.POST("/journeys/:id/stages", cfg.StageHandler.AddStage)
		api.DELETE("/stages/:id", cfg.StageHandler.DeleteStage)
		// Steps
		api.POST("/stages/:id/steps", cfg.StepHandler.AddStep)
		api.PATCH("/steps/:id", cfg.StepHandler.UpdateStepStatus)
		api.DELETE("/steps/:id", cfg.StepHandler.DeleteStep)
	}

	return router
}
