package gemini

import (
	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"
)

var schemaTypes = map[string]genai.Type{
	"object":  genai.TypeObject,
	"array":   genai.TypeArray,
	"string":  genai.TypeString,
	"integer": genai.TypeInteger,
	"number":  genai.TypeNumber,
	"boolean": genai.TypeBoolean,
}

// convertSchema maps a JSON schema onto Gemini's OpenAPI subset.
// Keywords Gemini does not understand, such as additionalProperties, are dropped.
func convertSchema(s *jsonschema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Required:    s.Required,
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = convertSchema(prop)
		}
		// Gemini emits properties in this order.
		out.PropertyOrdering = s.Required
	}

	if s.Items != nil {
		out.Items = convertSchema(s.Items)
	}

	return out
}
