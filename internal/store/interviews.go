package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mockmate/mockmate/ent"
	entevaluation "github.com/mockmate/mockmate/ent/evaluation"
	"github.com/mockmate/mockmate/ent/question"
	"github.com/mockmate/mockmate/ent/report"
	"github.com/mockmate/mockmate/ent/schema"
	"github.com/mockmate/mockmate/ent/session"
	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/resume"
)

// InterviewStore implements interview.Storage backed by ent.
type InterviewStore struct {
	client *ent.Client
}

var _ interview.Storage = (*InterviewStore)(nil)

func (s *InterviewStore) CreateSession(ctx context.Context, cfg interview.SessionConfig) (*interview.Session, error) {
	create := s.client.Session.Create().
		SetMode(session.Mode(cfg.Mode)).
		SetDifficulty(session.Difficulty(cfg.Difficulty)).
		SetNoRepeats(cfg.NoRepeats).
		SetFocusWeakAreas(cfg.FocusWeakAreas)

	switch cfg.Mode {
	case interview.ModeRole:
		create.SetRole(cfg.Role)
	case interview.ModeTopics:
		create.SetTopics(cfg.Topics)
	case interview.ModeResume:
		resumeID, err := parseID(cfg.ResumeID)
		if err != nil {
			return nil, err
		}
		create.SetResumeID(resumeID)
	}
	if cfg.NumQuestions > 0 {
		create.SetNumQuestions(cfg.NumQuestions)
	}
	if cfg.TimeLimitMins > 0 {
		create.SetTimeLimitMins(cfg.TimeLimitMins)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, wrapWriteErr("create session", err)
	}
	sess := sessionFromEnt(row)
	sess.Config.ResumeID = cfg.ResumeID
	return sess, nil
}

func (s *InterviewStore) GetSession(ctx context.Context, sessionID string) (*interview.Session, error) {
	id, err := parseID(sessionID)
	if err != nil {
		return nil, err
	}
	row, err := s.client.Session.Query().
		Where(session.ID(id)).
		WithResume().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, interview.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (s *InterviewStore) ListSessions(ctx context.Context) ([]*interview.Session, error) {
	rows, err := s.client.Session.Query().
		WithResume().
		Order(ent.Desc(session.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := make([]*interview.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, sessionFromEnt(row))
	}
	return sessions, nil
}

func (s *InterviewStore) SessionQuestions(ctx context.Context, sessionID string) ([]*interview.Question, error) {
	id, err := parseID(sessionID)
	if err != nil {
		return nil, err
	}
	rows, err := s.client.Question.Query().
		Where(question.HasSessionWith(session.ID(id))).
		Order(ent.Asc(question.FieldOrderIndex)).
		WithParent().
		WithAnswer(func(q *ent.AnswerQuery) {
			q.WithEvaluation()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session questions: %w", err)
	}
	questions := make([]*interview.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, questionFromEnt(row, sessionID))
	}
	return questions, nil
}

func (s *InterviewStore) CreateQuestion(ctx context.Context, q *interview.Question) (*interview.Question, error) {
	sessionID, err := parseID(q.SessionID)
	if err != nil {
		return nil, err
	}
	create := s.client.Question.Create().
		SetSessionID(sessionID).
		SetOrderIndex(q.OrderIndex).
		SetQuestionText(q.Text).
		SetFingerprint(q.Fingerprint).
		SetTopic(q.Topic).
		SetDifficulty(question.Difficulty(q.Difficulty)).
		SetExpectedPoints(q.ExpectedPoints).
		SetFollowUpTriggers(q.FollowUpTriggers).
		SetRationale(q.Rationale).
		SetIsFollowUp(q.IsFollowUp)
	if q.ParentID != "" {
		parentID, err := parseID(q.ParentID)
		if err != nil {
			return nil, err
		}
		create.SetParentID(parentID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, wrapWriteErr("create question", err)
	}
	created := questionFromEnt(row, q.SessionID)
	created.ParentID = q.ParentID
	return created, nil
}

func (s *InterviewStore) GetQuestion(ctx context.Context, questionID string) (*interview.Question, error) {
	id, err := parseID(questionID)
	if err != nil {
		return nil, err
	}
	row, err := s.client.Question.Query().
		Where(question.ID(id)).
		WithSession().
		WithParent().
		WithAnswer(func(q *ent.AnswerQuery) {
			q.WithEvaluation()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("question %s: %w", questionID, interview.ErrNotFound)
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	var sessionID string
	if row.Edges.Session != nil {
		sessionID = row.Edges.Session.ID.String()
	}
	return questionFromEnt(row, sessionID), nil
}

func (s *InterviewStore) RecordAnswer(ctx context.Context, questionID string, answerText string, eval *interview.Evaluation) (*interview.Answer, error) {
	qid, err := parseID(questionID)
	if err != nil {
		return nil, err
	}

	var result *interview.Answer
	err = s.withTx(ctx, func(tx *ent.Tx) error {
		// The unique answer FK arbitrates double submissions; no
		// check-then-write race here.
		answerRow, err := tx.Answer.Create().
			SetQuestionID(qid).
			SetAnswerText(answerText).
			Save(ctx)
		if err != nil {
			return wrapWriteErr("create answer", err)
		}

		evalRow, err := tx.Evaluation.Create().
			SetAnswerID(answerRow.ID).
			SetScore(eval.Score).
			SetStrengths(eval.Strengths).
			SetMissingPoints(eval.MissingPoints).
			SetFeedback(eval.Feedback).
			SetNextFocusTopic(eval.NextFocusTopic).
			SetConfidence(entevaluation.Confidence(eval.Confidence)).
			Save(ctx)
		if err != nil {
			return wrapWriteErr("create evaluation", err)
		}

		answer := answerFromEnt(answerRow)
		answer.Evaluation = evaluationFromEnt(evalRow)
		result = answer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *InterviewStore) EndSession(ctx context.Context, sessionID string, status interview.Status) (*interview.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status.Terminal() {
		return sess, nil
	}

	id, _ := parseID(sessionID)
	row, err := s.client.Session.UpdateOneID(id).
		SetStatus(session.Status(status)).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}
	updated := sessionFromEnt(row)
	updated.Config.ResumeID = sess.Config.ResumeID
	return updated, nil
}

func (s *InterviewStore) GetReport(ctx context.Context, sessionID string) (*interview.Report, error) {
	id, err := parseID(sessionID)
	if err != nil {
		return nil, err
	}
	row, err := s.client.Report.Query().
		Where(report.HasSessionWith(session.ID(id))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("report for session %s: %w", sessionID, interview.ErrNotFound)
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return reportFromEnt(row, sessionID), nil
}

func (s *InterviewStore) CreateReport(ctx context.Context, r *interview.Report) (*interview.Report, error) {
	sessionID, err := parseID(r.SessionID)
	if err != nil {
		return nil, err
	}

	topicScores := make([]schema.TopicScore, 0, len(r.TopicScores))
	for _, ts := range r.TopicScores {
		topicScores = append(topicScores, schema.TopicScore{
			Topic:         ts.Topic,
			AvgScore:      ts.AvgScore,
			QuestionCount: ts.QuestionCount,
		})
	}

	var result *interview.Report
	err = s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Report.Create().
			SetSessionID(sessionID).
			SetOverallScore(r.OverallScore).
			SetTopicScores(topicScores).
			SetStrengths(r.Strengths).
			SetWeaknesses(r.Weaknesses).
			SetImprovementTips(r.ImprovementTips).
			Save(ctx)
		if err != nil {
			return wrapWriteErr("create report", err)
		}

		// A report completes a still running session in the same unit.
		// Already-terminal sessions keep their status and end time.
		if _, err := tx.Session.Update().
			Where(
				session.ID(sessionID),
				session.StatusEQ(session.StatusInProgress),
			).
			SetStatus(session.StatusCompleted).
			SetEndedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}

		result = reportFromEnt(row, r.SessionID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *InterviewStore) CreateResume(ctx context.Context, rawText string, profile json.RawMessage) (string, error) {
	row, err := s.client.Resume.Create().
		SetRawText(rawText).
		SetProfile(profile).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create resume: %w", err)
	}
	return row.ID.String(), nil
}

func (s *InterviewStore) GetResumeProfile(ctx context.Context, resumeID string) (*resume.Profile, error) {
	id, err := parseID(resumeID)
	if err != nil {
		return nil, err
	}
	row, err := s.client.Resume.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("resume %s: %w", resumeID, interview.ErrNotFound)
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	var profile resume.Profile
	if err := json.Unmarshal(row.Profile, &profile); err != nil {
		return nil, fmt.Errorf("decode resume profile: %w", err)
	}
	return &profile, nil
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *InterviewStore) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// parseID parses a caller-supplied id. A malformed id can never name an
// existing row, so it maps to not-found rather than validation.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("id %q: %w", id, interview.ErrNotFound)
	}
	return parsed, nil
}

// wrapWriteErr maps unique-constraint violations to the conflict kind
// so the orchestrator can tell a race from a fatal storage error.
func wrapWriteErr(op string, err error) error {
	if ent.IsConstraintError(err) {
		return fmt.Errorf("%s: %w", op, interview.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func sessionFromEnt(row *ent.Session) *interview.Session {
	cfg := interview.SessionConfig{
		Mode:           interview.Mode(row.Mode),
		Role:           row.Role,
		Topics:         row.Topics,
		Difficulty:     interview.Difficulty(row.Difficulty),
		NoRepeats:      row.NoRepeats,
		FocusWeakAreas: row.FocusWeakAreas,
	}
	if row.NumQuestions != nil {
		cfg.NumQuestions = *row.NumQuestions
	}
	if row.TimeLimitMins != nil {
		cfg.TimeLimitMins = *row.TimeLimitMins
	}
	if row.Edges.Resume != nil {
		cfg.ResumeID = row.Edges.Resume.ID.String()
	}
	return &interview.Session{
		ID:        row.ID.String(),
		Config:    cfg,
		Status:    interview.Status(row.Status),
		StartedAt: row.StartedAt,
		EndedAt:   row.EndedAt,
	}
}

func questionFromEnt(row *ent.Question, sessionID string) *interview.Question {
	q := &interview.Question{
		ID:               row.ID.String(),
		SessionID:        sessionID,
		OrderIndex:       row.OrderIndex,
		Text:             row.QuestionText,
		Fingerprint:      row.Fingerprint,
		Topic:            row.Topic,
		Difficulty:       interview.Difficulty(row.Difficulty),
		ExpectedPoints:   row.ExpectedPoints,
		FollowUpTriggers: row.FollowUpTriggers,
		Rationale:        row.Rationale,
		IsFollowUp:       row.IsFollowUp,
		CreatedAt:        row.CreatedAt,
	}
	if row.Edges.Parent != nil {
		q.ParentID = row.Edges.Parent.ID.String()
	}
	if row.Edges.Answer != nil {
		q.Answer = answerFromEnt(row.Edges.Answer)
		if row.Edges.Answer.Edges.Evaluation != nil {
			q.Answer.Evaluation = evaluationFromEnt(row.Edges.Answer.Edges.Evaluation)
		}
	}
	return q
}

func answerFromEnt(row *ent.Answer) *interview.Answer {
	return &interview.Answer{
		ID:          row.ID.String(),
		Text:        row.AnswerText,
		SubmittedAt: row.SubmittedAt,
	}
}

func evaluationFromEnt(row *ent.Evaluation) *interview.Evaluation {
	return &interview.Evaluation{
		ID:             row.ID.String(),
		Score:          row.Score,
		Strengths:      row.Strengths,
		MissingPoints:  row.MissingPoints,
		Feedback:       row.Feedback,
		NextFocusTopic: row.NextFocusTopic,
		Confidence:     evaluation.Confidence(row.Confidence),
		CreatedAt:      row.CreatedAt,
	}
}

func reportFromEnt(row *ent.Report, sessionID string) *interview.Report {
	topicScores := make([]interview.TopicScore, 0, len(row.TopicScores))
	for _, ts := range row.TopicScores {
		topicScores = append(topicScores, interview.TopicScore{
			Topic:         ts.Topic,
			AvgScore:      ts.AvgScore,
			QuestionCount: ts.QuestionCount,
		})
	}
	return &interview.Report{
		ID:              row.ID.String(),
		SessionID:       sessionID,
		OverallScore:    row.OverallScore,
		TopicScores:     topicScores,
		Strengths:       row.Strengths,
		Weaknesses:      row.Weaknesses,
		ImprovementTips: row.ImprovementTips,
		CreatedAt:       row.CreatedAt,
	}
}
