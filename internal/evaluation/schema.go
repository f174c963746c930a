package evaluation

import "github.com/mockmate/mockmate/internal/llm"

// Schema defines the JSON schema for answer evaluation responses.
var Schema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A scored evaluation of a candidate's interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Score for the answer, 0 (wrong or irrelevant) to 10 (expert-level)",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific things the candidate said that were correct",
			},
			"missingPoints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific expected points the candidate did not cover",
			},
			"feedback": map[string]any{
				"type":        "string",
				"minLength":   10,
				"description": "Exactly 2-3 sentences, constructive and actionable",
			},
			"nextFocusTopic": map[string]any{
				"type":        []any{"string", "null"},
				"description": "One specific topic to focus on next, or null if performance was strong",
			},
			"confidenceInAnswer": map[string]any{
				"type":        "string",
				"enum":        []any{"low", "medium", "high"},
				"description": "low if score <= 4 or answer under 50 characters, high if score >= 8, medium otherwise",
			},
		},
		"required":             []any{"score", "strengths", "missingPoints", "feedback", "nextFocusTopic", "confidenceInAnswer"},
		"additionalProperties": false,
	},
}
