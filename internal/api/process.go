package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/povarna/generative-ai-agents/story-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/povarna/generative-ai-agents/story-agent/internal/schema"
	"github.com/rs/zerolog"
)

const (
	DefaultTopic  = "a brave explorer on an alien planet"
	DefaultStyle  = "adventure"
	DefaultLength = models.LengthMedium
)

// StoryGenerator produces a schema-valid story for a validated request.
type StoryGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

// Process runs one generation for a raw request body. It is shared by the HTTP,
// Lambda and CLI entry points so they fill defaults and validate the same way.
func (h *Handler) Process(ctx context.Context, body []byte) (*models.GenerationResult, error) {
	raw := decodeBody(body, h.logger)
	applyDefaults(raw, h.logger)

	h.logger.Info().
		Interface("topic", raw["topic"]).
		Interface("style", raw["style"]).
		Interface("length", raw["length"]).
		Msg("Generating story with input")

	req, err := schema.ValidateRequest(raw)
	if err != nil {
		h.logger.Error().Err(err).Msg("Invalid story request")
		return nil, err
	}

	result, err := h.generator.Generate(ctx, req)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error generating story")
		return nil, err
	}

	h.logger.Info().Msg("Story generated successfully")
	return result, nil
}

// Envelope converts a generation outcome into an HTTP status and response body.
func Envelope(result *models.GenerationResult, err error) (int, any) {
	if err != nil {
		message := err.Error()
		if message == "" {
			message = middleware.UnknownErrorMessage
		}
		return http.StatusInternalServerError, models.FailureResponse{
			Success: false,
			Error:   message,
		}
	}
	if result == nil {
		return http.StatusInternalServerError, models.FailureResponse{
			Success: false,
			Error:   middleware.UnknownErrorMessage,
		}
	}
	return http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    *result,
	}
}

// decodeBody treats an empty, malformed or non-object body as an empty object.
func decodeBody(body []byte, logger *zerolog.Logger) map[string]any {
	raw := map[string]any{}
	if len(bytes.TrimSpace(body)) == 0 {
		return raw
	}

	if err := json.Unmarshal(body, &raw); err != nil {
		logger.Warn().Err(err).Msg("Request body is not a JSON object, using defaults")
		return map[string]any{}
	}
	if raw == nil {
		return map[string]any{}
	}
	return raw
}

// applyDefaults fills absent, null or empty fields and replaces an unrecognised length.
func applyDefaults(raw map[string]any, logger *zerolog.Logger) {
	setDefault(raw, "topic", DefaultTopic)
	setDefault(raw, "style", DefaultStyle)
	setDefault(raw, "length", string(DefaultLength))

	length, ok := raw["length"].(string)
	if !ok || !models.Length(length).Valid() {
		logger.Warn().
			Interface("length", raw["length"]).
			Str("fallback", string(DefaultLength)).
			Msg("Unknown story length, using default")
		raw["length"] = string(DefaultLength)
	}
}

func setDefault(raw map[string]any, key string, value string) {
	v, found := raw[key]
	if !found || v == nil {
		raw[key] = value
		return
	}
	if s, ok := v.(string); ok && s == "" {
		raw[key] = value
	}
}
