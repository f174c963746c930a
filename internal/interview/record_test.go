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

func TestRecordAnswer_PersistsAtomically(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Explain optimistic locking.", "Databases"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		{
			Score:          6,
			Strengths:      []string{"knew version columns"},
			MissingPoints:  []string{"retry strategy"},
			Feedback:       "Decent grasp. Cover conflict retries next time.",
			NextFocusTopic: "Concurrency control",
			Confidence:     evaluation.ConfidenceMedium,
		},
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)
	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	answer, err := svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "You add a version column and compare-and-swap on update.")
	require.NoError(t, err)
	require.NotNil(t, answer.Evaluation)
	assert.Equal(t, 6, answer.Evaluation.Score)
	assert.Equal(t, "Concurrency control", answer.Evaluation.NextFocusTopic)

	// Answer and evaluation are visible together on re-read.
	q, err := storage.GetQuestion(ctx, turn.Question.ID)
	require.NoError(t, err)
	require.NotNil(t, q.Answer)
	require.NotNil(t, q.Answer.Evaluation)
}

func TestRecordAnswer_ReanswerConflicts(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Explain CAP.", "Distributed Systems"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(7, evaluation.ConfidenceMedium),
		evalResult(9, evaluation.ConfidenceHigh),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)
	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	first, err := svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "Consistency, availability, partition tolerance; pick two under partitions.")
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "Let me try again with a much better answer this time.")
	require.ErrorIs(t, err, ErrConflict)

	// The original answer is untouched.
	q, err := storage.GetQuestion(ctx, turn.Question.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, q.Answer.ID)
	assert.Equal(t, 7, q.Answer.Evaluation.Score)
}

func TestRecordAnswer_Validation(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Anything?", "Go"),
	}}
	svc := NewService(storage, gen, &scriptedEvaluator{})

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)
	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "   \n ")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, strings.Repeat("a", MaxAnswerChars+1))
	require.ErrorIs(t, err, ErrValidation)
}

func TestRecordAnswer_WrongSessionForbidden(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Question A?", "Go"),
	}}
	svc := NewService(storage, gen, &scriptedEvaluator{})

	sessA, err := roleSession(svc, 3)
	require.NoError(t, err)
	sessB, err := roleSession(svc, 3)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sessA.ID, AdvanceOptions{})
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, sessB.ID, turn.Question.ID, "Answering through the wrong session should fail.")
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRecordAnswer_PassesPreviousScores(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("First?", "Go"),
		genQuestion("Second?", "SQL"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(4, evaluation.ConfidenceLow),
		evalResult(8, evaluation.ConfidenceHigh),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)

	t1, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, t1.Question.ID, "An answer that is a bit thin on actual substance.")
	require.NoError(t, err)

	t2, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, t2.Question.ID, "A much more thorough answer covering the important parts.")
	require.NoError(t, err)

	require.Len(t, eval.inputs, 2)
	assert.Empty(t, eval.inputs[0].PreviousScores)
	require.Len(t, eval.inputs[1].PreviousScores, 1)
	assert.Equal(t, "Go", eval.inputs[1].PreviousScores[0].Topic)
	assert.Equal(t, 4, eval.inputs[1].PreviousScores[0].Score)
}

func TestRecordAnswer_TerminalSessionConflicts(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Last one?", "Go"),
	}}
	svc := NewService(storage, gen, &scriptedEvaluator{})

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)
	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	_, err = svc.Abandon(ctx, sess.ID)
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "Too late, the session has already been abandoned.")
	require.ErrorIs(t, err, ErrConflict)
}
