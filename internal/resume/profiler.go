package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mockmate/mockmate/internal/llm"
)

// Config holds tunable limits for profile extraction.
type Config struct {
	MaxTokens      int
	Temperature    float64
	MaxResumeChars int
}

// DefaultConfig returns the standard extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      2048,
		Temperature:    0.2,
		MaxResumeChars: 6000,
	}
}

// Profiler extracts structured candidate profiles from resume text.
type Profiler struct {
	provider llm.Provider
	config   Config
}

// New creates a Profiler with the given provider and config.
func New(provider llm.Provider, cfg Config) *Profiler {
	return &Profiler{provider: provider, config: cfg}
}

// Extract turns raw resume text into a structured Profile. The returned
// raw JSON is the provider's validated response, suitable for storage.
func (p *Profiler) Extract(ctx context.Context, rawText string) (*Profile, json.RawMessage, error) {
	if err := Validate(rawText); err != nil {
		return nil, nil, err
	}

	ctx = llm.WithPurpose(ctx, "resume-profile")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(rawText, p.config)},
		},
		Schema:      Schema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("LLM profile extraction failed: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(resp.Content, &profile); err != nil {
		return nil, nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return &profile, resp.Content, nil
}
