package evaluation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mockmate/mockmate/internal/llm"
)

func evalInput() Input {
	return Input{
		QuestionText:   "How would you design an index for a query filtering on (tenant_id, created_at)?",
		Topic:          "SQL",
		Difficulty:     "medium",
		ExpectedPoints: []string{"composite index", "column order", "covering index"},
		AnswerText:     "I would add a composite index on tenant_id then created_at, since equality columns go first.",
	}
}

func TestEvaluate_ParsesProviderResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"score": 8,
			"strengths": ["correct column order reasoning"],
			"missingPoints": ["covering index"],
			"feedback": "Solid answer. Mention covering indexes to avoid lookups. Quantify selectivity next time.",
			"nextFocusTopic": null,
			"confidenceInAnswer": "high"
		}`),
	})
	e := New(mock, DefaultConfig())

	result, err := e.Evaluate(context.Background(), evalInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 8 {
		t.Fatalf("unexpected score %d", result.Score)
	}
	if result.Confidence != ConfidenceHigh {
		t.Fatalf("unexpected confidence %q", result.Confidence)
	}
	if result.NextFocusTopic != "" {
		t.Fatalf("expected empty focus topic for null, got %q", result.NextFocusTopic)
	}
}

func TestEvaluate_NextFocusTopicSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"score": 3,
			"strengths": [],
			"missingPoints": ["composite index", "column order"],
			"feedback": "The answer does not address indexing. Revisit composite index basics.",
			"nextFocusTopic": "Database indexing",
			"confidenceInAnswer": "low"
		}`),
	})
	e := New(mock, DefaultConfig())

	result, err := e.Evaluate(context.Background(), evalInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextFocusTopic != "Database indexing" {
		t.Fatalf("unexpected focus topic %q", result.NextFocusTopic)
	}
	if result.Confidence != ConfidenceLow {
		t.Fatalf("unexpected confidence %q", result.Confidence)
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock, DefaultConfig())

	if _, err := e.Evaluate(context.Background(), evalInput()); err == nil {
		t.Fatal("expected error from provider")
	}
}
