package interview

import (
	"context"
	"testing"
	"time"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/questiongen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionConfigValidate(t *testing.T) {
	valid := SessionConfig{
		Mode:         ModeRole,
		Role:         "Backend Engineer",
		Difficulty:   DifficultyMedium,
		NumQuestions: 5,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*SessionConfig)
	}{
		{"role mode without role", func(c *SessionConfig) { c.Role = " " }},
		{"topics mode without topics", func(c *SessionConfig) { c.Mode = ModeTopics; c.Role = "" }},
		{"resume mode without resume", func(c *SessionConfig) { c.Mode = ModeResume; c.Role = "" }},
		{"unknown mode", func(c *SessionConfig) { c.Mode = "freestyle" }},
		{"unknown difficulty", func(c *SessionConfig) { c.Difficulty = "brutal" }},
		{"no limit at all", func(c *SessionConfig) { c.NumQuestions = 0 }},
		{"both limits", func(c *SessionConfig) { c.TimeLimitMins = 30 }},
		{"too many questions", func(c *SessionConfig) { c.NumQuestions = 31 }},
		{"time limit too short", func(c *SessionConfig) { c.NumQuestions = 0; c.TimeLimitMins = 2 }},
		{"time limit too long", func(c *SessionConfig) { c.NumQuestions = 0; c.TimeLimitMins = 200 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrValidation)
		})
	}

	timed := SessionConfig{
		Mode:          ModeTopics,
		Topics:        []string{"SQL"},
		Difficulty:    DifficultyHard,
		TimeLimitMins: 30,
	}
	assert.NoError(t, timed.Validate())
}

func TestSessionExpired(t *testing.T) {
	start := time.Now()
	timed := &Session{
		Config:    SessionConfig{TimeLimitMins: 10},
		StartedAt: start,
	}
	assert.False(t, timed.Expired(start.Add(9*time.Minute)))
	assert.True(t, timed.Expired(start.Add(10*time.Minute)))

	counted := &Session{
		Config:    SessionConfig{NumQuestions: 5},
		StartedAt: start,
	}
	assert.False(t, counted.Expired(start.Add(48*time.Hour)))
}

func TestStartSession_ResumeMustExist(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	svc := NewService(storage, &scriptedGenerator{}, &scriptedEvaluator{})

	_, err := svc.StartSession(ctx, SessionConfig{
		Mode:         ModeResume,
		ResumeID:     "11111111-1111-1111-1111-111111111111",
		Difficulty:   DifficultyEasy,
		NumQuestions: 3,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAbandon_Idempotent(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	svc := NewService(storage, &scriptedGenerator{}, &scriptedEvaluator{})

	sess, err := roleSession(svc, 3)
	require.NoError(t, err)

	first, err := svc.Abandon(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, first.EndedAt)

	second, err := svc.Abandon(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAbandoned, second.Status)
	assert.Equal(t, first.EndedAt, second.EndedAt)
}

func TestState_CountsAnsweredMainOnly(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Main one?", "Go"),
		genQuestion("Probe?", "Go"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(3, evaluation.ConfidenceLow),
		evalResult(5, evaluation.ConfidenceMedium),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "A first pass answer that leaves some room for probing.")
	require.NoError(t, err)

	follow, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, follow.Question.ID, "A deeper answer to the probing follow-up question here.")
	require.NoError(t, err)

	state, err := svc.State(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.AnsweredCount)
}

func TestTranscript_PairsFollowUps(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	gen := &scriptedGenerator{queue: []*questiongen.Question{
		genQuestion("Main one?", "Go"),
		genQuestion("Probe?", "Go"),
		genQuestion("Main two, unrelated?", "SQL"),
	}}
	eval := &scriptedEvaluator{queue: []*evaluation.Result{
		evalResult(3, evaluation.ConfidenceLow),
	}}
	svc := NewService(storage, gen, eval)

	sess, err := roleSession(svc, 5)
	require.NoError(t, err)

	turn, err := svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, sess.ID, turn.Question.ID, "An answer weak enough to earn a follow-up question.")
	require.NoError(t, err)
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{FollowUpTo: turn.Question.ID})
	require.NoError(t, err)
	_, err = svc.AdvanceTurn(ctx, sess.ID, AdvanceOptions{})
	require.NoError(t, err)

	items, err := svc.Transcript(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Main one?", items[0].Question.Text)
	require.NotNil(t, items[0].FollowUp)
	assert.Equal(t, "Probe?", items[0].FollowUp.Text)
	assert.Nil(t, items[1].FollowUp)
}
