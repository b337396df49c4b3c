package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/povarna/generative-ai-agents/story-agent/internal/schema"
)

const ToolName = "generate_story"

// GenerateStoryInput is the MCP tool input schema (matches HTTP API field names).
type GenerateStoryInput struct {
	Topic  string `json:"topic" jsonschema:"the main topic or theme for the story"`
	Style  string `json:"style,omitempty" jsonschema:"writing style, e.g. adventure, mystery, sci-fi"`
	Length string `json:"length,omitempty" jsonschema:"story length: short, medium or long (default: medium)"`
}

// NewGenerateStoryHandler returns a tool handler backed by the given generator.
// Pass the returned function to mcp.AddTool.
func NewGenerateStoryHandler(gen api.StoryGenerator) func(context.Context, *mcp.CallToolRequest, GenerateStoryInput) (*mcp.CallToolResult, models.GenerationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateStoryInput) (*mcp.CallToolResult, models.GenerationResult, error) {
		return GenerateStory(ctx, gen, req, input)
	}
}

// GenerateStory validates the tool input and runs one generation.
// Only length is defaulted; an empty topic is rejected.
func GenerateStory(
	ctx context.Context,
	gen api.StoryGenerator,
	req *mcp.CallToolRequest,
	input GenerateStoryInput,
) (*mcp.CallToolResult, models.GenerationResult, error) {
	raw := map[string]any{"topic": input.Topic}
	if input.Style != "" {
		raw["style"] = input.Style
	}
	if input.Length != "" {
		raw["length"] = input.Length
	}

	genReq, err := schema.ValidateRequest(raw)
	if err != nil {
		return nil, models.GenerationResult{}, err
	}

	result, err := gen.Generate(ctx, genReq)
	if err != nil {
		return nil, models.GenerationResult{}, err
	}
	return nil, *result, nil
}

// Register adds the story tools to the server.
func Register(server *mcp.Server, gen api.StoryGenerator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Generate a short story for a topic, style and length. Returns title, genre, story text, word count and themes.",
	}, NewGenerateStoryHandler(gen))
}
