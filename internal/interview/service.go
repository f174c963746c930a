package interview

import (
	"context"
	"fmt"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/questiongen"
)

// DefaultTotal is the progress denominator for time-limited sessions,
// which have no fixed question count.
const DefaultTotal = 10

// QuestionGenerator produces one interview question per call.
// Satisfied by *questiongen.Generator.
type QuestionGenerator interface {
	Generate(ctx context.Context, in questiongen.Input) (*questiongen.Question, error)
}

// AnswerEvaluator scores one answer per call. Satisfied by
// *evaluation.Evaluator.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, in evaluation.Input) (*evaluation.Result, error)
}

// Service orchestrates sessions: turn advancement, answer recording,
// and report aggregation. All methods are safe for sequential use on
// one session; concurrent writers on the same session are arbitrated
// by storage constraints.
type Service struct {
	storage   Storage
	generator QuestionGenerator
	evaluator AnswerEvaluator
}

func NewService(storage Storage, gen QuestionGenerator, eval AnswerEvaluator) *Service {
	return &Service{storage: storage, generator: gen, evaluator: eval}
}

// StartSession validates the configuration, resolves the resume
// profile when needed, and creates the session.
func (s *Service) StartSession(ctx context.Context, cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == ModeResume {
		if _, err := s.storage.GetResumeProfile(ctx, cfg.ResumeID); err != nil {
			return nil, fmt.Errorf("resume %s: %w", cfg.ResumeID, err)
		}
	}
	return s.storage.CreateSession(ctx, cfg)
}

// Session returns the session by id.
func (s *Service) Session(ctx context.Context, sessionID string) (*Session, error) {
	return s.storage.GetSession(ctx, sessionID)
}

// Sessions returns all sessions, most recent first.
func (s *Service) Sessions(ctx context.Context) ([]*Session, error) {
	return s.storage.ListSessions(ctx)
}

// State returns the session with its answered main-question count.
func (s *Service) State(ctx context.Context, sessionID string) (*SessionState, error) {
	sess, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questions, err := s.storage.SessionQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionState{
		Session:       sess,
		AnsweredCount: countAnsweredMain(questions),
	}, nil
}

// Abandon moves the session to abandoned. Idempotent on terminal
// sessions: the original status and end time are preserved.
func (s *Service) Abandon(ctx context.Context, sessionID string) (*Session, error) {
	return s.storage.EndSession(ctx, sessionID, StatusAbandoned)
}

// Transcript pairs each main question with its follow-up, in order.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]*TranscriptItem, error) {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	questions, err := s.storage.SessionQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	byParent := make(map[string]*Question, len(questions))
	for _, q := range questions {
		if q.IsFollowUp {
			byParent[q.ParentID] = q
		}
	}
	var items []*TranscriptItem
	for _, q := range questions {
		if q.IsFollowUp {
			continue
		}
		items = append(items, &TranscriptItem{Question: q, FollowUp: byParent[q.ID]})
	}
	return items, nil
}

func countAnsweredMain(questions []*Question) int {
	n := 0
	for _, q := range questions {
		if !q.IsFollowUp && q.Answer != nil {
			n++
		}
	}
	return n
}
