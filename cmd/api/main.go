package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env before the logger so LOG_LEVEL from .env applies
	envErr := godotenv.Load()
	cfg := setup.LoadConfig()

	// Setup logging
	log.Logger = logger.NewConsole(cfg.LogLevel)
	logger := log.Logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	deps, err := setup.Wire(context.Background(), cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	api.RegisterRoutes(container, deps.Handler)
	if cfg.OpsRoutes {
		api.RegisterOpsRoutes(container, deps.Handler)
	}

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("address", addr).
		Str("provider", cfg.Provider).
		Bool("ops_routes", cfg.OpsRoutes).
		Msg("Starting Story Agent API")

	server := http.Server{
		Addr:        addr,
		Handler:     corsHandler.Handler(container),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
