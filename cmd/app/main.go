package main

import (
	"airwave/config"
	"airwave/di"
	"airwave/helper"
	"airwave/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Airwave API
// @version 1.0
// @description Station booking, tracks, chat and player sync for the airwave radio community.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
