package interview

import (
	"context"
	"strings"
	"testing"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/questiongen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScriptedSession answers n main questions, consuming the scripted
// generator and evaluator queues, and returns the session.
func runScriptedSession(t *testing.T, svc *Service, n int) *Session {
	t.Helper()
	ctx := context.Background()

	sess, err := roleSession(svc, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
		require.NoError(t, err)
		_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "A steady answer with enough words to pass validation easily.")
		require.NoError(t, err)
	}
	return sess
}

func TestReport_EndToEndAggregation(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Q1?", "A"),
		genQuestion("Q2?", "B"),
		genQuestion("Q3 is different?", "B"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		{Score: 8, Strengths: []string{"s1"}, MissingPoints: []string{"m1"}, Feedback: "f", Confidence: evaluation.ConfidenceHigh},
		{Score: 5, Strengths: []string{"s2"}, MissingPoints: []string{"m1"}, Feedback: "f", Confidence: evaluation.ConfidenceMedium},
		{Score: 3, Strengths: []string{"s1"}, MissingPoints: []string{"m2"}, Feedback: "f", Confidence: evaluation.ConfidenceLow},
	}}
	svc := NewService(storage, gen, eval)

	sess := runScriptedSession(t, svc, 3)

	report, err := svc.Report(context.Background(), sess.ID)
	require.NoError(t, err)

	// (8+5+3)/3 = 5.333 → 5.3
	assert.Equal(t, 5.3, report.OverallScore)

	// Worst topic first: B averages 4.0, A averages 8.0.
	require.Len(t, report.TopicScores, 2)
	assert.Equal(t, "B", report.TopicScores[0].Topic)
	assert.Equal(t, 4.0, report.TopicScores[0].AvgScore)
	assert.Equal(t, 2, report.TopicScores[0].QuestionCount)
	assert.Equal(t, "A", report.TopicScores[1].Topic)
	assert.Equal(t, 8.0, report.TopicScores[1].AvgScore)

	// Deduplicated, first-seen order.
	assert.Equal(t, []string{"s1", "s2"}, report.Strengths)
	assert.Equal(t, []string{"m1", "m2"}, report.Weaknesses)

	// Exactly one tip, naming the one weak topic.
	require.Len(t, report.ImprovementTips, 1)
	assert.Contains(t, report.ImprovementTips[0], "B")

	// Building the report completed the session.
	got, err := svc.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestReport_Idempotent(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Q1?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(9, evaluation.ConfidenceHigh),
	}}
	svc := NewService(storage, gen, eval)

	sess := runScriptedSession(t, svc, 1)

	first, err := svc.Report(ctx, sess.ID)
	require.NoError(t, err)
	second, err := svc.Report(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestReport_NoScorableQuestions(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Unanswered?", "Go"),
	}}
	svc := NewService(storage, gen, &scriptedEvaluator{})

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	_, err = svc.Report(ctx, sess.ID)
	require.ErrorIs(t, err, ErrNoScorableQuestions)
}

func TestReport_GenericTipWhenNoWeakTopics(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Q1?", "Go"),
		genQuestion("Q2 rather different?", "SQL"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(8, evaluation.ConfidenceHigh),
		evalResult(9, evaluation.ConfidenceHigh),
	}}
	svc := NewService(storage, gen, eval)

	sess := runScriptedSession(t, svc, 2)

	report, err := svc.Report(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, report.ImprovementTips, 1)
	assert.False(t, strings.HasPrefix(report.ImprovementTips[0], "Strengthen"))
}

func TestReport_ExcludesFollowUps(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Main?", "Go"),
		genQuestion("Probe deeper?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(4, evaluation.ConfidenceLow),
		evalResult(0, evaluation.ConfidenceLow), // follow-up score must not count
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "An answer that only partially addresses the question asked.")
	require.NoError(t, err)

	follow, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, follow.Question.ID, "I really cannot go any deeper than that, unfortunately.")
	require.NoError(t, err)

	report, err := svc.Report(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, report.OverallScore)
	require.Len(t, report.TopicScores, 1)
	assert.Equal(t, 1, report.TopicScores[0].QuestionCount)
}
