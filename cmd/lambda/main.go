package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/story-agent/internal/setup/logger"
	"github.com/rs/zerolog"
)

func main() {
	cfg := setup.LoadConfig()
	log := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(context.Background(), cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	lambda.Start(newHandler(deps.Handler, &log))
}

func newHandler(handler *api.Handler, log *zerolog.Logger) func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		log.Info().
			Str("url", event.RawPath).
			Str("method", event.RequestContext.HTTP.Method).
			Msg("Story request received")

		if event.RequestContext.HTTP.Method != "" && event.RequestContext.HTTP.Method != http.MethodPost {
			return respond(http.StatusMethodNotAllowed, models.FailureResponse{Success: false, Error: "method not allowed"}), nil
		}

		body := []byte(event.Body)
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to decode request body, using defaults")
				decoded = nil
			}
			body = decoded
		}

		status, envelope := api.Envelope(handler.Process(ctx, body))
		return respond(status, envelope), nil
	}
}

func respond(status int, envelope any) events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(envelope)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"Unknown error occurred"}`)
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
