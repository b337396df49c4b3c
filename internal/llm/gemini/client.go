package gemini

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/story-agent/internal/llm"
	"google.golang.org/genai"
)

type Client struct {
	Client *genai.Client
	Model  string
}

func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("Gemini model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create gemini client: %w", err)
	}

	return &Client{
		Client: client,
		Model:  model,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	resp, err := c.Client.Models.GenerateContent(ctx, c.Model, genai.Text(request.Prompt), buildConfig(request))
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gemini model: %w", err)
	}

	content := resp.Text()
	if content == "" {
		return nil, nil
	}

	var stopReason string
	if len(resp.Candidates) > 0 {
		stopReason = string(resp.Candidates[0].FinishReason)
	}

	return &llm.LLMResponse{
		Content:    content,
		StopReason: stopReason,
	}, nil
}

func buildConfig(request llm.LLMRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(request.Temperature)),
	}
	if request.MaxTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxTokens)
	}
	if request.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = convertSchema(request.Schema)
	}
	return config
}
