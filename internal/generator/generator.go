package generator

import (
	"context"
	"errors"
	"fmt"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/story-agent/internal/config"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/povarna/generative-ai-agents/story-agent/internal/schema"
	"github.com/rs/zerolog"
)

// Generator turns a validated request into a schema-valid story using a remote model.
// A call is attempted exactly once; there is no retry and no caching.
type Generator struct {
	llmClient   llm.LLMClient
	prompt      *template.Template
	modelConfig config.ModelConfig
	logger      *zerolog.Logger
}

func NewGenerator(llmClient llm.LLMClient, cfg *config.GeneratorConfig, logger *zerolog.Logger) (*Generator, error) {
	if llmClient == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	tmpl, err := parsePromptTemplate(cfg.PromptTemplate)
	if err != nil {
		return nil, err
	}

	return &Generator{
		llmClient:   llmClient,
		prompt:      tmpl,
		modelConfig: cfg.Model,
		logger:      logger,
	}, nil
}

// BuildPrompt renders the prompt for the request.
func (g *Generator) BuildPrompt(req models.GenerationRequest) (string, error) {
	wordCount, err := ResolveWordCount(req.Length)
	if err != nil {
		return "", err
	}
	return buildPrompt(g.prompt, req, wordCount)
}

func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	now := time.Now()

	prompt, err := g.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := g.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		Schema:      schema.OutputSchema(),
		SchemaName:  schema.OutputSchemaName,
		MaxTokens:   g.modelConfig.MaxTokens,
		Temperature: g.modelConfig.TemperatureOrDefault(),
	})

	if ctxErr := ctx.Err(); ctxErr != nil {
		g.logger.Warn().
			Err(ctxErr).
			Dur("duration", time.Since(now)).
			Msg("story generation cancelled")
		return nil, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
	}

	if err != nil {
		g.logger.Error().
			Err(err).
			Dur("duration", time.Since(now)).
			Msg("LLM call failed")
		return nil, &ProviderError{Err: err}
	}

	if resp == nil {
		g.logger.Error().Msg("LLM returned no response")
		return nil, &GenerationError{Cause: schema.ErrEmptyOutput}
	}

	result, err := schema.ValidateOutput(llm.StripMarkdownCodeBlock(resp.Content))
	if err != nil {
		event := g.logger.Error().
			Err(err).
			Str("stop_reason", resp.StopReason)
		if errors.Is(err, schema.ErrInvalidOutput) {
			event = event.Str("content", resp.Content)
		}
		event.Msg("LLM output rejected by schema")
		return nil, &GenerationError{Cause: err}
	}

	g.logger.Info().
		Str("title", result.Title).
		Float64("word_count", result.WordCount).
		Dur("duration", time.Since(now)).
		Msg("story generated")

	return result, nil
}
