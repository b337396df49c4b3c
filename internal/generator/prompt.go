package generator

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/povarna/generative-ai-agents/story-agent/internal/schema"
)

// DefaultPromptTemplate is used unless the configuration overrides it.
const DefaultPromptTemplate = `Create a creative {{.Style}} story with the following requirements:
Topic: {{.Topic}}
Length: {{.WordCount}} words

Please provide a captivating story with a clear beginning, middle, and end.
Include rich descriptions and engaging characters.`

type promptData struct {
	Style     string
	Topic     string
	WordCount string
}

// ResolveWordCount maps a length to its target word-count range.
func ResolveWordCount(length models.Length) (string, error) {
	wordCount, ok := length.WordCount()
	if !ok {
		return "", schema.InvalidEnum("length", string(length), schema.LengthValues)
	}
	return wordCount, nil
}

func parsePromptTemplate(text string) (*template.Template, error) {
	if text == "" {
		text = DefaultPromptTemplate
	}
	tmpl, err := template.New("story").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return tmpl, nil
}

// buildPrompt executes the template. Topic and style are interpolated verbatim.
func buildPrompt(tmpl *template.Template, req models.GenerationRequest, wordCount string) (string, error) {
	style := req.Style
	if style == "" {
		style = models.DefaultStyle
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{
		Style:     style,
		Topic:     req.Topic,
		WordCount: wordCount,
	}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
