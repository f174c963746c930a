package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/questiongen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceTurn_SequenceAndNumbering(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Question one?", "Go"),
		genQuestion("Question two?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(7, evaluation.ConfidenceMedium),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	require.False(t, turn.Done)
	assert.Equal(t, 1, turn.Number)
	assert.Equal(t, 3, turn.Total)
	assert.Equal(t, 0, turn.Question.OrderIndex)

	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "A perfectly serviceable answer with enough length.")
	require.NoError(t, err)

	turn2, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, turn2.Number)
	assert.Equal(t, 1, turn2.Question.OrderIndex)
}

func TestAdvanceTurn_CountLimitCompletesSession(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Only question?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(8, evaluation.ConfidenceHigh),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 1)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "An answer long enough to not trip the short-answer rule.")
	require.NoError(t, err)

	done, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	assert.True(t, done.Done)
	assert.Equal(t, StatusCompleted, done.Status)

	// A terminal session stays done; no further generation happens.
	again, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	assert.True(t, again.Done)
	assert.Equal(t, StatusCompleted, again.Status)
	assert.Len(t, gen.inputs, 1)
}

func TestAdvanceTurn_DuplicateRetryThenFail(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("What is a goroutine?", "Go"),
		genQuestion("WHAT IS A GOROUTINE?", "Go"),  // duplicate
		genQuestion(" what is a goroutine? ", "Go"), // duplicate again
	}}
	svc := NewService(storage, gen, &scriptedEvaluator{})

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.ErrorIs(t, err, ErrDuplicateQuestion)

	// Both attempts were consumed, nothing was persisted.
	assert.Len(t, gen.inputs, 3)
	questions, err := storage.SessionQuestions(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestAdvanceTurn_DuplicateRetrySucceeds(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("What is a goroutine?", "Go"),
		genQuestion("what is a goroutine?", "Go"), // duplicate, triggers retry
		genQuestion("How do channels work?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(7, evaluation.ConfidenceMedium),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "Lightweight concurrent function managed by the runtime scheduler.")
	require.NoError(t, err)

	turn2, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	assert.Equal(t, "How do channels work?", turn2.Question.Text)
}

func TestAdvanceTurn_GenerationFailed(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{err: errors.New("provider down")}
	svc := NewService(storage, gen, &scriptedEvaluator{})

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.ErrorIs(t, err, ErrGenerationFailed)

	// No partial question rows.
	questions, err := storage.SessionQuestions(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestAdvanceTurn_FollowUpFlow(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Explain connection pooling.", "Databases"),
		genQuestion("What happens when the pool is exhausted?", "Databases"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(3, evaluation.ConfidenceLow),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "It pools connections I think, reuse and such things.")
	require.NoError(t, err)

	follow, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.NoError(t, err)
	assert.True(t, follow.Question.IsFollowUp)
	assert.Equal(t, turn.Question.ID, follow.Question.ParentID)
	assert.Equal(t, 1, follow.Question.OrderIndex)
	// Follow-up keeps the parent's ordinal.
	assert.Equal(t, 1, follow.Number)

	// The generator saw the parent's text and answer.
	last := gen.inputs[len(gen.inputs)-1]
	assert.True(t, last.IsFollowUp)
	assert.Equal(t, "Explain connection pooling.", last.ParentQuestionText)
	assert.Contains(t, last.ParentAnswerText, "pools connections")
}

func TestAdvanceTurn_FollowUpPreconditions(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Main question?", "Go"),
		genQuestion("Follow-up one?", "Go"),
		genQuestion("Follow-up two?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(3, evaluation.ConfidenceLow),
		evalResult(4, evaluation.ConfidenceLow),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	// Unanswered parent.
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "A short but honest attempt at the question.")
	require.NoError(t, err)

	follow, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.NoError(t, err)

	// Second follow-up for the same parent.
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.ErrorIs(t, err, ErrConflict)

	// Chaining off the follow-up itself.
	_, err = svc.RecordAnswer(ctx, sess.ID, follow.Question.ID, "Another attempt, still shaky on the details here.")
	require.NoError(t, err)
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: follow.Question.ID})
	require.ErrorIs(t, err, ErrConflict)

	// Unknown parent.
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: "b4a380b9-0000-0000-0000-000000000000"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdvanceTurn_WeakTopicsOnlyWhenFocused(t *testing.T) {
	ctx := context.Background()

	for _, focus := range []bool{true, false} {
		storage := newMemStorage()
		gen := &scriptedGenerator{queue: []*questiongen.Question{
			genQuestion("First question?", "SQL"),
			genQuestion("Second question?", "SQL"),
		}}
		eval := &scriptedEvaluator{queue: []*evaluation.Result{
			evalResult(2, evaluation.ConfidenceLow),
		}}
		svc := NewService(storage, gen, eval)

		sess, err := svc.StartSession(ctx, SessionConfig{
			Mode:           ModeRole,
			Role:           "Backend Engineer",
			Difficulty:     DifficultyMedium,
			NumQuestions:   5,
			FocusWeakAreas: focus,
		})
		require.NoError(t, err)

		turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
		require.NoError(t, err)
		_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "I do not really remember how SQL indexes work at all.")
		require.NoError(t, err)

		_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
		require.NoError(t, err)

		last := gen.inputs[len(gen.inputs)-1]
		if focus {
			assert.Equal(t, []string{"SQL"}, last.WeakTopics)
		} else {
			assert.Empty(t, last.WeakTopics)
		}
	}
}
