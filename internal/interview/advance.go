package interview

import (
	"context"
	"fmt"

	"github.com/mockmate/mockmate/internal/questiongen"
)

// AdvanceOptions steers a single turn. Zero value asks for the next
// main question.
type AdvanceOptions struct {
	// FollowUpTo generates a follow-up to the named question instead
	// of a new main question. The parent must be an answered main
	// question of this session without an existing follow-up.
	FollowUpTo string
}

// generationAttempts bounds the duplicate-retry loop: one generation
// plus one retry before giving up.
const generationAttempts = 2

// AdvanceTurn moves the session one step forward. It either reports
// that the session is done, or generates and persists the next
// question. Time budgets are the caller's to watch (the caller decides
// when an expired session ends, since a turn in progress is allowed to
// finish); the question-count limit is enforced here.
func (s *Service) AdvanceTurn(ctx context.Context, sessionID string, opts AdvanceOptions) (*Turn, error) {
	sess, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status.Terminal() {
		return &Turn{Done: true, Status: sess.Status}, nil
	}

	questions, err := s.storage.SessionQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answered := countAnsweredMain(questions)
	total := sess.Config.NumQuestions
	if total == 0 {
		total = DefaultTotal
	}

	var parent *Question
	if opts.FollowUpTo != "" {
		parent, err = s.followUpParent(ctx, sessionID, opts.FollowUpTo, questions)
		if err != nil {
			return nil, err
		}
	} else if sess.Config.NumQuestions > 0 && answered >= sess.Config.NumQuestions {
		ended, err := s.storage.EndSession(ctx, sessionID, StatusCompleted)
		if err != nil {
			return nil, err
		}
		return &Turn{Done: true, Status: ended.Status}, nil
	}

	in, asked := s.buildGenerationInput(ctx, sess, questions, parent, answered, total)

	gen, err := s.generateUnique(ctx, in, asked)
	if err != nil {
		return nil, err
	}

	q := &Question{
		SessionID:        sessionID,
		OrderIndex:       len(questions),
		Text:             gen.Text,
		Fingerprint:      questiongen.Fingerprint(gen.Text),
		Topic:            gen.Topic,
		Difficulty:       sess.Config.Difficulty,
		ExpectedPoints:   gen.ExpectedPoints,
		FollowUpTriggers: gen.FollowUpTriggers,
		Rationale:        gen.Rationale,
		IsFollowUp:       parent != nil,
	}
	if parent != nil {
		q.ParentID = parent.ID
	}
	created, err := s.storage.CreateQuestion(ctx, q)
	if err != nil {
		return nil, err
	}

	number := answered + 1
	if parent != nil {
		// A follow-up stays on the parent's ordinal.
		number = answered
	}
	return &Turn{
		Status:   sess.Status,
		Question: created,
		Number:   number,
		Total:    total,
	}, nil
}

// followUpParent validates the follow-up preconditions and returns the
// parent question.
func (s *Service) followUpParent(ctx context.Context, sessionID, parentID string, questions []*Question) (*Question, error) {
	var parent *Question
	for _, q := range questions {
		if q.ID == parentID {
			parent = q
			break
		}
	}
	if parent == nil {
		// The parent may exist under another session; that is a
		// forbidden cross-session reference, not a missing question.
		other, err := s.storage.GetQuestion(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if other.SessionID != sessionID {
			return nil, fmt.Errorf("question %s: %w", parentID, ErrForbidden)
		}
		return nil, fmt.Errorf("question %s: %w", parentID, ErrNotFound)
	}
	if parent.IsFollowUp {
		return nil, fmt.Errorf("%w: follow-ups cannot be chained", ErrConflict)
	}
	if parent.Answer == nil {
		return nil, fmt.Errorf("%w: parent question is unanswered", ErrConflict)
	}
	for _, q := range questions {
		if q.IsFollowUp && q.ParentID == parentID {
			return nil, fmt.Errorf("%w: question already has a follow-up", ErrConflict)
		}
	}
	return parent, nil
}

// buildGenerationInput assembles the generator input and the asked
// fingerprint set for the dedup loop.
func (s *Service) buildGenerationInput(ctx context.Context, sess *Session, questions []*Question, parent *Question, answered, total int) (questiongen.Input, map[string]bool) {
	asked := make(map[string]bool, len(questions))
	fingerprints := make([]string, 0, len(questions))
	for _, q := range questions {
		asked[q.Fingerprint] = true
		fingerprints = append(fingerprints, q.Fingerprint)
	}

	in := questiongen.Input{
		Mode:              questiongen.Mode(sess.Config.Mode),
		Role:              sess.Config.Role,
		Topics:            sess.Config.Topics,
		Difficulty:        string(sess.Config.Difficulty),
		AskedFingerprints: fingerprints,
		QuestionNumber:    answered + 1,
		TotalQuestions:    total,
	}
	if sess.Config.Mode == ModeResume {
		// Best effort: a missing profile falls back to role-less
		// generic context rather than failing the turn.
		if profile, err := s.storage.GetResumeProfile(ctx, sess.Config.ResumeID); err == nil {
			in.Profile = profile
		}
	}
	if sess.Config.FocusWeakAreas {
		in.WeakTopics = WeakTopics(questions)
	}
	if parent != nil {
		in.IsFollowUp = true
		in.ParentQuestionText = parent.Text
		if parent.Answer != nil {
			in.ParentAnswerText = parent.Answer.Text
		}
	}
	return in, asked
}

// generateUnique runs the generate-check-retry loop. The first
// duplicate triggers one regeneration with the set of already-asked
// questions restated; a second duplicate ends the turn with nothing
// persisted.
func (s *Service) generateUnique(ctx context.Context, in questiongen.Input, asked map[string]bool) (*questiongen.Question, error) {
	for attempt := 0; attempt < generationAttempts; attempt++ {
		gen, err := s.generator.Generate(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		if !asked[questiongen.Fingerprint(gen.Text)] {
			return gen, nil
		}
	}
	return nil, ErrDuplicateQuestion
}
