package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mockmate/mockmate/internal/llm"
)

// Generator produces interview questions using the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before conversion.
type questionOutput struct {
	QuestionText     string   `json:"questionText"`
	Topic            string   `json:"topic"`
	Difficulty       string   `json:"difficulty"`
	ExpectedPoints   []string `json:"expectedPoints"`
	FollowUpTriggers []string `json:"followUpTriggers"`
	Rationale        string   `json:"rationale"`
}

// Generate produces a single question for the given input context.
// It does not check for duplicates; the orchestrator owns the
// fingerprint-and-retry policy.
func (g *Generator) Generate(ctx context.Context, input Input) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      Schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return &Question{
		Text:             raw.QuestionText,
		Topic:            raw.Topic,
		Difficulty:       raw.Difficulty,
		ExpectedPoints:   raw.ExpectedPoints,
		FollowUpTriggers: raw.FollowUpTriggers,
		Rationale:        raw.Rationale,
	}, nil
}
