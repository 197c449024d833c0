package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/journey-backend/internal/handlers"
	"github.com/yungbote/journey-backend/internal/logger"
	"github.com/yungbote/journey-backend/internal/observability"
	"github.com/yungbote/journey-backend/internal/server"
	"github.com/yungbote/journey-backend/internal/services"
	"github.com/yungbote/journey-backend/internal/store"
)

type App struct {
	Log          *logger.Logger
	Cfg          Config
	Store        *store.JourneyStore
	Router       *gin.Engine
	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	journeyStore := store.New(log)
	if err := seedStore(journeyStore, cfg, log); err != nil {
		log.Sync()
		return nil, err
	}

	otelShutdown := observability.InitTracing(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})
	metrics := observability.NewMetrics()

	journeyService := services.NewJourneyService(journeyStore, log)

	router := server.NewRouter(server.RouterConfig{
		JourneyHandler: handlers.NewJourneyHandler(journeyService),
		StageHandler:   handlers.NewStageHandler(journeyService),
		StepHandler:    handlers.NewStepHandler(journeyService),
		Metrics:        metrics,
		CORSOrigin:     cfg.CORSOrigin,
		ServiceName:    cfg.ServiceName,
	})

	return &App{
		Log:          log,
		Cfg:          cfg,
		Store:        journeyStore,
		Router:       router,
		otelShutdown: otelShutdown,
	}, nil
}

func seedStore(journeyStore *store.JourneyStore, cfg Config, log *logger.Logger) error {
	journeys := store.DefaultSeed()
	if cfg.SeedFile != "" {
		loaded, err := store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("load seed file %q: %w", cfg.SeedFile, err)
		}
		journeys = loaded
		log.Info("Seeding store from file", "path", cfg.SeedFile, "journeys", len(loaded))
	}
	for _, journey := range journeys {
		journeyStore.Put(journey)
	}
	return nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		_ = a.otelShutdown(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
