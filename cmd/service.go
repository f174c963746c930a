package cmd

import (
	"context"
	"fmt"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/questiongen"
	"github.com/mockmate/mockmate/internal/store"
)

// buildService wires the interview service from the store and the
// configured LLM provider.
func buildService(ctx context.Context, st *store.Store) (*interview.Service, error) {
	provider, err := llm.NewProviderFromEnv(ctx, st.LLMCalls())
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	gen := questiongen.New(provider, questiongen.DefaultConfig())
	eval := evaluation.New(provider, evaluation.DefaultConfig())
	return interview.NewService(st.Interviews(), gen, eval), nil
}
