package questiongen

import "github.com/mockmate/mockmate/internal/llm"

// Schema defines the JSON schema for question generation responses.
var Schema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single technical interview question with grading guidance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionText": map[string]any{
				"type":        "string",
				"minLength":   10,
				"description": "The question shown to the candidate",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic this question tests",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "The difficulty of this question",
			},
			"expectedPoints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"maxItems":    8,
				"description": "Specific concepts, terms, or insights the ideal answer must include",
			},
			"followUpTriggers": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    4,
				"description": "Short phrases that, if said by the candidate, suggest shallow understanding",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One sentence explaining why this question was chosen (internal use only)",
			},
		},
		"required":             []any{"questionText", "topic", "difficulty", "expectedPoints", "followUpTriggers", "rationale"},
		"additionalProperties": false,
	},
}
