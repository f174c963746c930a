package resume

import "github.com/mockmate/mockmate/internal/llm"

// Schema defines the JSON schema for resume profile extraction responses.
var Schema = &llm.Schema{
	Name:        "resume-profile",
	Description: "A compact structured candidate profile extracted from resume text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Candidate name, or null if not present",
			},
			"targetRoles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "2-4 most suitable roles based on the full resume",
			},
			"skills": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"technical": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"tools":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"soft":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required": []any{"technical", "tools", "soft"},
			},
			"projects": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":            map[string]any{"type": "string"},
						"techStack":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"keyAchievements": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"name", "techStack", "keyAchievements"},
				},
			},
			"focusTopics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    10,
				"description": "Specific topics to probe in the interview",
			},
			"redFlags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"experienceLevel": map[string]any{
				"type": "string",
				"enum": []any{"junior", "mid", "senior"},
			},
		},
		"required":             []any{"name", "targetRoles", "skills", "projects", "focusTopics", "redFlags", "experienceLevel"},
		"additionalProperties": false,
	},
}
