package anthropic

import (
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/story-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/story-agent/internal/schema"
)

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name          string
		request       llm.LLMRequest
		wantMaxTokens int64
		wantSchema    bool
	}{
		{
			name:          "schema and explicit max tokens",
			request:       llm.LLMRequest{Prompt: "tell me a story", Schema: schema.OutputSchema(), MaxTokens: 2000, Temperature: 0.5},
			wantMaxTokens: 2000,
			wantSchema:    true,
		},
		{
			name:          "default max tokens",
			request:       llm.LLMRequest{Prompt: "tell me a story"},
			wantMaxTokens: defaultMaxTokens,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := buildParams("claude-sonnet-4-5", tt.request)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if string(params.Model) != "claude-sonnet-4-5" {
				t.Errorf("unexpected model %s", params.Model)
			}
			if params.MaxTokens != tt.wantMaxTokens {
				t.Errorf("expected max tokens %d, got %d", tt.wantMaxTokens, params.MaxTokens)
			}
			if params.Temperature.Value != tt.request.Temperature {
				t.Errorf("expected temperature %f, got %f", tt.request.Temperature, params.Temperature.Value)
			}
			if len(params.Messages) != 1 {
				t.Fatalf("expected one message, got %d", len(params.Messages))
			}

			text := params.Messages[0].Content[0].OfText.Text
			if !strings.HasPrefix(text, "tell me a story") {
				t.Errorf("expected prompt first, got %q", text)
			}
			if got := strings.Contains(text, `"wordCount"`); got != tt.wantSchema {
				t.Errorf("schema in prompt = %v, want %v", got, tt.wantSchema)
			}
		})
	}
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient("", "claude-sonnet-4-5"); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Error("expected error for missing model")
	}
}
