// Package main is the entry point for the salinity-service application.
//
// @title           Salinity Service API
// @version         1.0.0
// @description     API for estimating seawater salinity from measured major-ion concentrations.
//
//	The service derives Practical Salinity (SP), Absolute Salinity (SA), in-situ density and specific gravity
//	from ion measurements, estimating chloride when it was not measured.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/salinity-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Salinity
// @tag.description Salinity, density and specific gravity calculations
//
// @tag.name        Assumptions
// @tag.description Stored calculation assumption profiles
//
// @tag.name        Calculations
// @tag.description Calculation history
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/salinity-service/config"
	_ "github.com/guttosm/salinity-service/docs" // swagger docs
	"github.com/guttosm/salinity-service/internal/app"
)

func main() {
	cfg := config.Load()

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewServer(a, cfg.Server).Run(ctx); err != nil {
		log.Error().Err(err).Msg("Salinity service exited")
		stop()
		os.Exit(1)
	}
}
