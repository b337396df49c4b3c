package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm"
)

const defaultMaxTokens = 4096

type Client struct {
	Client anthropic.Client
	Model  string
}

func NewClient(apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("Anthropic model is required")
	}

	return &Client{
		Client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		),
		Model: model,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	params, err := buildParams(c.Model, request)
	if err != nil {
		return nil, err
	}

	completion, err := c.Client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke anthropic model: %w", err)
	}

	var sb strings.Builder
	for _, block := range completion.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			sb.WriteString(v.Text)
		}
	}

	if sb.Len() == 0 {
		return nil, nil
	}

	return &llm.LLMResponse{
		Content:    sb.String(),
		StopReason: string(completion.StopReason),
	}, nil
}

func buildParams(model string, request llm.LLMRequest) (anthropic.MessageNewParams, error) {
	prompt, err := llm.WithSchemaInstruction(request.Prompt, request.Schema)
	if err != nil {
		return anthropic.MessageNewParams{}, err
	}

	maxTokens := int64(request.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(request.Temperature),
	}, nil
}
