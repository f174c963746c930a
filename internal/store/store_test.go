package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSessionConfig() interview.SessionConfig {
	return interview.SessionConfig{
		Mode:         interview.ModeRole,
		Role:         "Backend Engineer",
		Difficulty:   interview.DifficultyMedium,
		NumQuestions: 5,
		NoRepeats:    true,
	}
}

func testQuestion(sessionID string, orderIndex int, text string) *interview.Question {
	return &interview.Question{
		SessionID:      sessionID,
		OrderIndex:     orderIndex,
		Text:           text,
		Fingerprint:    text,
		Topic:          "Go",
		Difficulty:     interview.DifficultyMedium,
		ExpectedPoints: []string{"a", "b"},
	}
}

func testEvaluation(score int) *interview.Evaluation {
	return &interview.Evaluation{
		Score:         score,
		Strengths:     []string{"clear"},
		MissingPoints: []string{"depth"},
		Feedback:      "Fine.",
		Confidence:    evaluation.ConfidenceMedium,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interviews()
	ctx := context.Background()

	sess, err := repo.CreateSession(ctx, testSessionConfig())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.Status != interview.StatusInProgress {
		t.Fatalf("status = %q, want in_progress", sess.Status)
	}

	got, err := repo.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Config.Role != "Backend Engineer" || got.Config.NumQuestions != 5 {
		t.Fatalf("config did not round-trip: %+v", got.Config)
	}

	_, err = repo.GetSession(ctx, "5f6b0c9a-0000-0000-0000-000000000000")
	if !errors.Is(err, interview.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	_, err = repo.GetSession(ctx, "not-a-uuid")
	if !errors.Is(err, interview.ErrNotFound) {
		t.Fatalf("expected not-found for malformed id, got %v", err)
	}
}

func TestQuestionConstraints(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interviews()
	ctx := context.Background()

	sess, err := repo.CreateSession(ctx, testSessionConfig())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	q1, err := repo.CreateQuestion(ctx, testQuestion(sess.ID, 0, "what is a goroutine?"))
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	// Same fingerprint in the same session.
	_, err = repo.CreateQuestion(ctx, testQuestion(sess.ID, 1, "what is a goroutine?"))
	if !errors.Is(err, interview.ErrConflict) {
		t.Fatalf("expected conflict on duplicate fingerprint, got %v", err)
	}

	// Reused order index.
	_, err = repo.CreateQuestion(ctx, testQuestion(sess.ID, 0, "how do channels work?"))
	if !errors.Is(err, interview.ErrConflict) {
		t.Fatalf("expected conflict on reused order index, got %v", err)
	}

	// The same fingerprint in another session is fine.
	other, err := repo.CreateSession(ctx, testSessionConfig())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := repo.CreateQuestion(ctx, testQuestion(other.ID, 0, "what is a goroutine?")); err != nil {
		t.Fatalf("cross-session fingerprint should not conflict: %v", err)
	}

	// One follow-up per parent.
	if _, err := repo.RecordAnswer(ctx, q1.ID, "some answer", testEvaluation(4)); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	f1 := testQuestion(sess.ID, 1, "go deeper on scheduling?")
	f1.IsFollowUp = true
	f1.ParentID = q1.ID
	if _, err := repo.CreateQuestion(ctx, f1); err != nil {
		t.Fatalf("create follow-up: %v", err)
	}
	f2 := testQuestion(sess.ID, 2, "another probe?")
	f2.IsFollowUp = true
	f2.ParentID = q1.ID
	if _, err := repo.CreateQuestion(ctx, f2); !errors.Is(err, interview.ErrConflict) {
		t.Fatalf("expected conflict on second follow-up, got %v", err)
	}
}

func TestRecordAnswerAtomicAndUnique(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interviews()
	ctx := context.Background()

	sess, err := repo.CreateSession(ctx, testSessionConfig())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	q, err := repo.CreateQuestion(ctx, testQuestion(sess.ID, 0, "explain mutexes"))
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	answer, err := repo.RecordAnswer(ctx, q.ID, "they serialize access", testEvaluation(7))
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if answer.Evaluation == nil || answer.Evaluation.Score != 7 {
		t.Fatalf("evaluation not persisted with answer: %+v", answer)
	}

	_, err = repo.RecordAnswer(ctx, q.ID, "trying again", testEvaluation(9))
	if !errors.Is(err, interview.ErrConflict) {
		t.Fatalf("expected conflict on second answer, got %v", err)
	}

	// Re-read through the question: answer and evaluation together.
	got, err := repo.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if got.Answer == nil || got.Answer.Evaluation == nil {
		t.Fatal("expected eager-loaded answer and evaluation")
	}
	if got.Answer.Evaluation.Score != 7 {
		t.Fatalf("score = %d, want 7", got.Answer.Evaluation.Score)
	}
	if got.SessionID != sess.ID {
		t.Fatalf("session id = %q, want %q", got.SessionID, sess.ID)
	}
}

func TestEndSessionIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interviews()
	ctx := context.Background()

	sess, err := repo.CreateSession(ctx, testSessionConfig())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	ended, err := repo.EndSession(ctx, sess.ID, interview.StatusAbandoned)
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if ended.Status != interview.StatusAbandoned || ended.EndedAt == nil {
		t.Fatalf("unexpected state: %+v", ended)
	}

	again, err := repo.EndSession(ctx, sess.ID, interview.StatusCompleted)
	if err != nil {
		t.Fatalf("second end: %v", err)
	}
	if again.Status != interview.StatusAbandoned {
		t.Fatalf("terminal status rewritten to %q", again.Status)
	}
	if !again.EndedAt.Equal(*ended.EndedAt) {
		t.Fatal("ended_at rewritten on second call")
	}
}

func TestReportUniqueAndCompletesSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interviews()
	ctx := context.Background()

	sess, err := repo.CreateSession(ctx, testSessionConfig())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	report := &interview.Report{
		SessionID:    sess.ID,
		OverallScore: 6.5,
		TopicScores: []interview.TopicScore{
			{Topic: "Go", AvgScore: 6.5, QuestionCount: 2},
		},
		Strengths:       []string{"clear"},
		Weaknesses:      []string{"depth"},
		ImprovementTips: []string{"Strengthen Go: practice."},
	}

	created, err := repo.CreateReport(ctx, report)
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	if created.ID == "" {
		t.Fatal("missing report id")
	}

	_, err = repo.CreateReport(ctx, report)
	if !errors.Is(err, interview.ErrConflict) {
		t.Fatalf("expected conflict on second report, got %v", err)
	}

	got, err := repo.GetReport(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if got.OverallScore != 6.5 || len(got.TopicScores) != 1 {
		t.Fatalf("report did not round-trip: %+v", got)
	}

	after, err := repo.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if after.Status != interview.StatusCompleted {
		t.Fatalf("status = %q, want completed", after.Status)
	}
}

func TestResumeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interviews()
	ctx := context.Background()

	id, err := repo.CreateResume(ctx, "Ada Lovelace. Backend engineer.", []byte(`{"name":"Ada Lovelace","experienceLevel":"senior"}`))
	if err != nil {
		t.Fatalf("create resume: %v", err)
	}

	profile, err := repo.GetResumeProfile(ctx, id)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.Name == nil || *profile.Name != "Ada Lovelace" {
		t.Fatalf("profile did not round-trip: %+v", profile)
	}

	// A resume-mode session links back to its resume.
	cfg := testSessionConfig()
	cfg.Mode = interview.ModeResume
	cfg.Role = ""
	cfg.ResumeID = id
	sess, err := repo.CreateSession(ctx, cfg)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	got, err := repo.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Config.ResumeID != id {
		t.Fatalf("resume id = %q, want %q", got.Config.ResumeID, id)
	}
}

func TestLLMCallLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMCalls()
	ctx := context.Background()

	err := repo.RecordCall(ctx, llm.LLMCallData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user]\nask me something",
		ResponseBody: `{"questionText":"..."}`,
	})
	if err != nil {
		t.Fatalf("record call: %v", err)
	}

	calls, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Purpose != "question-gen" || calls[0].InputTokens != 120 {
		t.Fatalf("call did not round-trip: %+v", calls[0])
	}

	got, err := repo.Get(ctx, calls[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ResponseBody == "" {
		t.Fatal("response body not stored")
	}
}
