package evaluation

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_IncludesExpectedPointsAndAnswer(t *testing.T) {
	msg := buildUserMessage(evalInput(), DefaultConfig())

	if !strings.Contains(msg, "TOPIC: SQL") {
		t.Fatalf("missing topic:\n%s", msg)
	}
	if !strings.Contains(msg, "1. composite index") {
		t.Fatalf("expected points not enumerated:\n%s", msg)
	}
	if !strings.Contains(msg, "equality columns go first") {
		t.Fatalf("answer text missing:\n%s", msg)
	}
	if !strings.Contains(msg, "This is the first question in this session.") {
		t.Fatalf("expected first-question context:\n%s", msg)
	}
}

func TestBuildUserMessage_TruncatesLongAnswer(t *testing.T) {
	cfg := DefaultConfig()
	in := evalInput()
	in.AnswerText = strings.Repeat("x", cfg.MaxAnswerChars+500)

	msg := buildUserMessage(in, cfg)
	if strings.Count(msg, "x") != cfg.MaxAnswerChars {
		t.Fatalf("expected answer truncated to %d chars", cfg.MaxAnswerChars)
	}
}

func TestBuildPerformanceContext_KeepsMostRecent(t *testing.T) {
	scores := []TopicScore{
		{Topic: "Old", Score: 2},
		{Topic: "A", Score: 5},
		{Topic: "B", Score: 7},
		{Topic: "C", Score: 9},
	}
	out := buildPerformanceContext(scores, 3)

	if strings.Contains(out, "Old") {
		t.Fatalf("oldest score should be dropped:\n%s", out)
	}
	for _, want := range []string{"A: 5/10", "B: 7/10", "C: 9/10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}
