package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/mockmate/mockmate/internal/evaluation"
)

// MaxAnswerChars caps submitted answer length.
const MaxAnswerChars = 5000

// RecordAnswer evaluates the candidate's answer and persists the
// answer with its evaluation as one unit. A question is answered at
// most once; a second submission is ErrConflict and writes nothing.
func (s *Service) RecordAnswer(ctx context.Context, sessionID, questionID, answerText string) (*Answer, error) {
	if strings.TrimSpace(answerText) == "" {
		return nil, fmt.Errorf("%w: answer must not be empty", ErrValidation)
	}
	if len(answerText) > MaxAnswerChars {
		return nil, fmt.Errorf("%w: answer exceeds %d characters", ErrValidation, MaxAnswerChars)
	}

	sess, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status.Terminal() {
		return nil, fmt.Errorf("%w: session is %s", ErrConflict, sess.Status)
	}

	q, err := s.storage.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.SessionID != sessionID {
		return nil, fmt.Errorf("question %s: %w", questionID, ErrForbidden)
	}
	if q.Answer != nil {
		return nil, fmt.Errorf("%w: question already answered", ErrConflict)
	}

	questions, err := s.storage.SessionQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.evaluator.Evaluate(ctx, evaluation.Input{
		QuestionText:   q.Text,
		Topic:          q.Topic,
		Difficulty:     string(q.Difficulty),
		ExpectedPoints: q.ExpectedPoints,
		AnswerText:     answerText,
		PreviousScores: previousScores(questions),
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating answer: %w", err)
	}

	eval := &Evaluation{
		Score:          result.Score,
		Strengths:      result.Strengths,
		MissingPoints:  result.MissingPoints,
		Feedback:       result.Feedback,
		NextFocusTopic: result.NextFocusTopic,
		Confidence:     result.Confidence,
	}

	return s.storage.RecordAnswer(ctx, questionID, answerText, eval)
}

// previousScores collects past per-topic scores, oldest first, for the
// evaluator's consistency context.
func previousScores(questions []*Question) []evaluation.TopicScore {
	var scores []evaluation.TopicScore
	for _, q := range questions {
		if !q.Evaluated() {
			continue
		}
		scores = append(scores, evaluation.TopicScore{
			Topic: q.Topic,
			Score: q.Answer.Evaluation.Score,
		})
	}
	return scores
}
