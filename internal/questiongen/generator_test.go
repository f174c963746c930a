package questiongen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mockmate/mockmate/internal/llm"
)

func TestGenerate_ParsesProviderResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"questionText": "Your API's p99 latency doubled overnight. Walk me through your first hour.",
			"topic": "Observability",
			"difficulty": "medium",
			"expectedPoints": ["check recent deploys", "latency breakdown by endpoint", "saturation metrics"],
			"followUpTriggers": ["just restart it", "look at logs"],
			"rationale": "Tests incident triage under pressure."
		}`),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), Input{
		Mode:           ModeRole,
		Role:           "SRE",
		Difficulty:     "medium",
		QuestionNumber: 1,
		TotalQuestions: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Topic != "Observability" {
		t.Fatalf("unexpected topic %q", q.Topic)
	}
	if len(q.ExpectedPoints) != 3 {
		t.Fatalf("expected 3 points, got %d", len(q.ExpectedPoints))
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != Schema {
		t.Fatal("request did not carry the question schema")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns ErrProviderUnavailable
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Mode: ModeRole, Role: "SRE", Difficulty: "easy"})
	if err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Mode: ModeRole, Role: "SRE", Difficulty: "easy"})
	if err == nil {
		t.Fatal("expected parse error")
	}
}
