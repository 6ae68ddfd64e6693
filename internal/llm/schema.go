package llm

import "github.com/veridoc-ai/veridoc/internal/entity"

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. We pass this to the backend as a structured output
// constraint and also use it locally to validate the completion.
//
// The expected shape is {"fields": [{name, value, confidence, evidence}]}.
func BuildExtractionJSONSchema(fields []entity.TemplateField) map[string]any {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	evidenceItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":       map[string]any{"type": "string"},
			"page":       map[string]any{"type": "integer", "minimum": 0},
			"char_start": map[string]any{"type": "integer", "minimum": 0},
			"char_end":   map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []string{"text"},
	}

	fieldItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "enum": names},
			// Polymorphic: scalar or array of scalars.
			"value": map[string]any{},
			"confidence": map[string]any{
				"type": "number", "minimum": 0.0, "maximum": 1.0,
			},
			"evidence": map[string]any{
				"type":  "array",
				"items": evidenceItem,
			},
		},
		"required": []string{"name", "value"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"fields": map[string]any{
				"type":  "array",
				"items": fieldItem,
			},
		},
		"required": []string{"fields"},
	}
}
