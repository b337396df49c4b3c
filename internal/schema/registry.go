package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
)

// LengthValues lists the accepted length values for error messages.
const LengthValues = "short, medium, long"

// OutputSchemaName identifies the output contract when it is handed to a provider.
const OutputSchemaName = "story"

// OutputSchema returns the structural descriptor every generated story must satisfy.
// A new value is returned on each call so callers may embed or mutate it freely.
func OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "A generated story with title, genre, text, word count and themes",
		Properties: map[string]*jsonschema.Schema{
			"title":     {Type: "string"},
			"genre":     {Type: "string"},
			"story":     {Type: "string"},
			"wordCount": {Type: "number"},
			"themes": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string"},
			},
		},
		Required:             []string{"title", "genre", "story", "wordCount", "themes"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// Replies are checked without the additionalProperties restriction: providers that
// only see the schema in the prompt may add keys, which are dropped on decode.
var resolvedOutput = mustResolve(replySchema())

func replySchema() *jsonschema.Schema {
	s := OutputSchema()
	s.AdditionalProperties = nil
	return s
}

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := s.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		panic(fmt.Sprintf("invalid output schema: %v", err))
	}
	return resolved
}

// ValidateRequest checks a decoded request body and builds a GenerationRequest.
// Fields are read from a generic JSON object so that type mismatches can be reported.
func ValidateRequest(raw map[string]any) (models.GenerationRequest, error) {
	var req models.GenerationRequest

	topic, present, ok := stringField(raw, "topic")
	if !present || (ok && topic == "") {
		return req, missingField("topic")
	}
	if !ok {
		return req, invalidType("topic", "string")
	}

	style, present, ok := stringField(raw, "style")
	if present && !ok {
		return req, invalidType("style", "string")
	}

	length := models.DefaultLength
	value, present, ok := stringField(raw, "length")
	if present {
		if !ok {
			return req, invalidType("length", "string")
		}
		length = models.Length(value)
		if !length.Valid() {
			return req, InvalidEnum("length", value, LengthValues)
		}
	}

	req.Topic = topic
	req.Style = style
	req.Length = length
	return req, nil
}

// stringField reports whether key is present (and non-null) and whether its value is a string.
func stringField(raw map[string]any, key string) (string, bool, bool) {
	v, found := raw[key]
	if !found || v == nil {
		return "", false, false
	}
	s, ok := v.(string)
	return s, true, ok
}

// ValidateOutput decodes a model reply and checks it against OutputSchema.
func ValidateOutput(content string) (*models.GenerationResult, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || trimmed == "null" {
		return nil, ErrEmptyOutput
	}

	var instance any
	if err := json.Unmarshal([]byte(trimmed), &instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}

	if err := resolvedOutput.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}

	var result models.GenerationResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}

	return &result, nil
}
