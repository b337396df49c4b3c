package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/config"
	"github.com/povarna/generative-ai-agents/story-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm/anthropic"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm/gpt"
	"github.com/rs/zerolog"
)

const (
	ProviderAzure     = "azure"
	ProviderOpenAI    = "openai"
	ProviderBedrock   = "bedrock"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type Config struct {
	Provider string

	AzureEndpoint   string
	AzureAPIKey     string
	AzureAPIVersion string
	AzureDeployment string

	OpenAIKey     string
	OpenAIModelID string

	AWSRegion     string
	ClaudeModelID string

	AnthropicKey   string
	AnthropicModel string

	GoogleAPIKey string
	GeminiModel  string

	Port      string
	OpsRoutes bool
	LogLevel  string
}

type Dependencies struct {
	Generator *generator.Generator
	Handler   *api.Handler
	Logger    *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Provider:        getEnv("LLM_PROVIDER", ProviderAzure),
		AzureEndpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
		AzureAPIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
		AzureAPIVersion: getEnv("OPENAI_API_VERSION", "2024-10-21"),
		AzureDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o"),
		OpenAIKey:       getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:   getEnv("OPEN_AI_MODEL_ID", "gpt-4o"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		AnthropicKey:    getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		Port:            getEnv("FUNCTIONS_CUSTOMHANDLER_PORT", getEnv("STORY_API_PORT", "7071")),
		OpsRoutes:       getEnvBool("STORY_OPS_ROUTES", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the generator once per process from the given configuration.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	return wireWithClient(llmClient, logger)
}

func wireWithClient(llmClient llm.LLMClient, logger *zerolog.Logger) (*Dependencies, error) {
	generatorConfig, err := config.LoadGeneratorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load generator config: %w", err)
	}

	gen, err := generator.NewGenerator(llmClient, generatorConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	return &Dependencies{
		Generator: gen,
		Handler:   api.NewHandler(gen, logger),
		Logger:    logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case ProviderAzure:
		return gpt.NewAzureClient(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.AzureAPIVersion, cfg.AzureDeployment)
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case ProviderAnthropic:
		return anthropic.NewClient(cfg.AnthropicKey, cfg.AnthropicModel)
	case ProviderGemini:
		return gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
