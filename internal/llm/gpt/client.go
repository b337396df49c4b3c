package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

type Client struct {
	Client  openai.Client
	ModelID string
}

func NewClient(apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	openaiClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &Client{
		Client:  openaiClient,
		ModelID: model,
	}, nil
}

// NewAzureClient targets an Azure OpenAI resource. The deployment name is sent as the model.
func NewAzureClient(endpoint, apiKey, apiVersion, deployment string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("Azure OpenAI endpoint is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Azure OpenAI API key is required")
	}
	if apiVersion == "" {
		return nil, fmt.Errorf("Azure OpenAI API version is required")
	}
	if deployment == "" {
		return nil, fmt.Errorf("Azure OpenAI deployment is required")
	}

	openaiClient := openai.NewClient(
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &Client{
		Client:  openaiClient,
		ModelID: deployment,
	}, nil
}
