package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	cfg := setup.LoadConfig()

	// Stdout carries the protocol, so logs go to stderr.
	log.Logger = logger.NewConsole(cfg.LogLevel)
	logger := log.Logger

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "story-agent",
			Version: api.Version,
		}, nil,
	)
	mcpadapter.Register(server, deps.Generator)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
