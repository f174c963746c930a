package evaluation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mockmate/mockmate/internal/llm"
)

// Evaluator scores candidate answers using the LLM provider.
type Evaluator struct {
	provider llm.Provider
	config   Config
}

// New creates an Evaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, config: cfg}
}

// evaluationOutput is the raw LLM response before conversion.
type evaluationOutput struct {
	Score              int      `json:"score"`
	Strengths          []string `json:"strengths"`
	MissingPoints      []string `json:"missingPoints"`
	Feedback           string   `json:"feedback"`
	NextFocusTopic     *string  `json:"nextFocusTopic"`
	ConfidenceInAnswer string   `json:"confidenceInAnswer"`
}

// Evaluate scores a single answer against its question's expected points.
func (e *Evaluator) Evaluate(ctx context.Context, input Input) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, e.config)},
		},
		Schema:      Schema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	result := &Result{
		Score:         raw.Score,
		Strengths:     raw.Strengths,
		MissingPoints: raw.MissingPoints,
		Feedback:      raw.Feedback,
		Confidence:    Confidence(raw.ConfidenceInAnswer),
	}
	if raw.NextFocusTopic != nil {
		result.NextFocusTopic = *raw.NextFocusTopic
	}

	return result, nil
}
