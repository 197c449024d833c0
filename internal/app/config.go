package app

import (
	"github.com/yungbote/journey-backend/internal/logger"
	"github.com/yungbote/journey-backend/internal/utils"
)

type Config struct {
	Port        string
	CORSOrigin  string
	SeedFile    string
	ServiceName string
	Environment string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        utils.GetEnv("PORT", "8000", log),
		CORSOrigin:  utils.GetEnv("CORS_ORIGIN", "http://localhost:5173", log),
		SeedFile:    utils.GetEnv("SEED_FILE", "", log),
		ServiceName: utils.GetEnv("SERVICE_NAME", "journey-backend", log),
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
	}
}
