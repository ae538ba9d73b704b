package advisor

import "github.com/jpsleep/sleepcheck/internal/llm"

// MaxSuggestions caps the number of suggestions kept from a response.
const MaxSuggestions = 5

// AdviceSchema defines the JSON schema for personal sleep notes.
var AdviceSchema = &llm.Schema{
	Name:        "sleep-advice",
	Description: "Short personal notes on a sleep assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence plain-language summary of the assessment",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"description": "Concrete, non-medical habit suggestions",
				"items": map[string]any{
					"type": "string",
				},
				"minItems": 1,
				"maxItems": MaxSuggestions,
			},
		},
		"required":             []any{"summary", "suggestions"},
		"additionalProperties": false,
	},
}
