package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	topic := flag.String("topic", "", "story topic (default: a brave explorer on an alien planet)")
	style := flag.String("style", "", "writing style (default: adventure)")
	length := flag.String("length", "", "short, medium or long (default: medium)")
	timeout := flag.Duration("timeout", 2*time.Minute, "maximum time to wait for the model")
	flag.Parse()

	_ = godotenv.Load()
	cfg := setup.LoadConfig()
	log.Logger = logger.NewConsole(cfg.LogLevel)

	os.Exit(run(cfg, models.StoryRequest{
		Topic:  *topic,
		Style:  *style,
		Length: *length,
	}, *timeout))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(cfg *setup.Config, request models.StoryRequest, timeout time.Duration) int {
	logger := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		return 1
	}

	body, err := json.Marshal(request)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode request")
		return 1
	}

	status, envelope := api.Envelope(deps.Handler.Process(ctx, body))

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
		return 1
	}
	fmt.Println(string(out))

	if status != http.StatusOK {
		return 1
	}
	return 0
}
