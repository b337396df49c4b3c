package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

type LLMRequest struct {
	Prompt      string
	Schema      *jsonschema.Schema
	SchemaName  string
	MaxTokens   int
	Temperature float64
}

// Content holds the raw model reply. An empty Content means the model returned nothing.
type LLMResponse struct {
	Content    string
	StopReason string
}

// WithSchemaInstruction appends the output contract to the prompt for providers
// that have no native structured output.
func WithSchemaInstruction(prompt string, schema *jsonschema.Schema) (string, error) {
	if schema == nil {
		return prompt, nil
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("failed to marshal output schema: %w", err)
	}

	return fmt.Sprintf(`%s

Respond ONLY with a JSON object that conforms to this JSON schema:
%s`, prompt, string(raw)), nil
}

// StripMarkdownCodeBlock removes markdown code block formatting if present
func StripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	// ```json ... ``` or ``` ... ```
	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
