package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/questiongen"
	"github.com/mockmate/mockmate/internal/resume"
)

// memStorage is an in-memory Storage with the same constraint behavior
// as the SQLite implementation: unique answer per question, unique
// report per session, unique (session, fingerprint) and one follow-up
// per parent all surface as ErrConflict.
type memStorage struct {
	sessions map[string]*Session
	// questions kept in creation order per session
	questions map[string][]*Question
	reports   map[string]*Report
	resumes   map[string]*resume.Profile
}

func newMemStorage() *memStorage {
	return &memStorage{
		sessions:  make(map[string]*Session),
		questions: make(map[string][]*Question),
		reports:   make(map[string]*Report),
		resumes:   make(map[string]*resume.Profile),
	}
}

func (m *memStorage) CreateSession(_ context.Context, cfg SessionConfig) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		Status:    StatusInProgress,
		StartedAt: time.Now(),
	}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *memStorage) GetSession(_ context.Context, sessionID string) (*Session, error) {
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return sess, nil
}

func (m *memStorage) ListSessions(_ context.Context) ([]*Session, error) {
	var out []*Session
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStorage) SessionQuestions(_ context.Context, sessionID string) ([]*Question, error) {
	return m.questions[sessionID], nil
}

func (m *memStorage) CreateQuestion(_ context.Context, q *Question) (*Question, error) {
	existing := m.questions[q.SessionID]
	for _, prev := range existing {
		if prev.Fingerprint == q.Fingerprint {
			return nil, fmt.Errorf("create question: %w", ErrConflict)
		}
		if prev.OrderIndex == q.OrderIndex {
			return nil, fmt.Errorf("create question: %w", ErrConflict)
		}
		if q.ParentID != "" && prev.IsFollowUp && prev.ParentID == q.ParentID {
			return nil, fmt.Errorf("create question: %w", ErrConflict)
		}
	}
	stored := *q
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	m.questions[q.SessionID] = append(existing, &stored)
	return &stored, nil
}

func (m *memStorage) GetQuestion(_ context.Context, questionID string) (*Question, error) {
	for _, qs := range m.questions {
		for _, q := range qs {
			if q.ID == questionID {
				return q, nil
			}
		}
	}
	return nil, fmt.Errorf("question %s: %w", questionID, ErrNotFound)
}

func (m *memStorage) RecordAnswer(_ context.Context, questionID string, answerText string, eval *Evaluation) (*Answer, error) {
	var q *Question
	for _, qs := range m.questions {
		for _, cand := range qs {
			if cand.ID == questionID {
				q = cand
			}
		}
	}
	if q == nil {
		return nil, fmt.Errorf("question %s: %w", questionID, ErrNotFound)
	}
	if q.Answer != nil {
		return nil, fmt.Errorf("create answer: %w", ErrConflict)
	}
	stored := *eval
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	answer := &Answer{
		ID:          uuid.NewString(),
		Text:        answerText,
		SubmittedAt: time.Now(),
		Evaluation:  &stored,
	}
	q.Answer = answer
	return answer, nil
}

func (m *memStorage) EndSession(_ context.Context, sessionID string, status Status) (*Session, error) {
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if sess.Status.Terminal() {
		return sess, nil
	}
	now := time.Now()
	sess.Status = status
	sess.EndedAt = &now
	return sess, nil
}

func (m *memStorage) GetReport(_ context.Context, sessionID string) (*Report, error) {
	r, ok := m.reports[sessionID]
	if !ok {
		return nil, fmt.Errorf("report for session %s: %w", sessionID, ErrNotFound)
	}
	return r, nil
}

func (m *memStorage) CreateReport(_ context.Context, r *Report) (*Report, error) {
	if _, exists := m.reports[r.SessionID]; exists {
		return nil, fmt.Errorf("create report: %w", ErrConflict)
	}
	stored := *r
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	m.reports[r.SessionID] = &stored
	if sess, ok := m.sessions[r.SessionID]; ok && !sess.Status.Terminal() {
		now := time.Now()
		sess.Status = StatusCompleted
		sess.EndedAt = &now
	}
	return &stored, nil
}

func (m *memStorage) CreateResume(_ context.Context, _ string, profile json.RawMessage) (string, error) {
	var p resume.Profile
	if err := json.Unmarshal(profile, &p); err != nil {
		return "", err
	}
	id := uuid.NewString()
	m.resumes[id] = &p
	return id, nil
}

func (m *memStorage) GetResumeProfile(_ context.Context, resumeID string) (*resume.Profile, error) {
	p, ok := m.resumes[resumeID]
	if !ok {
		return nil, fmt.Errorf("resume %s: %w", resumeID, ErrNotFound)
	}
	return p, nil
}

// scriptedGenerator returns canned questions in FIFO order and records
// every input it saw.
type scriptedGenerator struct {
	queue  []*questiongen.Question
	err    error
	inputs []questiongen.Input
}

func (g *scriptedGenerator) Generate(_ context.Context, in questiongen.Input) (*questiongen.Question, error) {
	g.inputs = append(g.inputs, in)
	if g.err != nil {
		return nil, g.err
	}
	if len(g.queue) == 0 {
		return nil, fmt.Errorf("scripted generator exhausted")
	}
	q := g.queue[0]
	g.queue = g.queue[1:]
	return q, nil
}

func genQuestion(text, topic string) *questiongen.Question {
	return &questiongen.Question{
		Text:           text,
		Topic:          topic,
		Difficulty:     "medium",
		ExpectedPoints: []string{"point one", "point two", "point three"},
	}
}

// scriptedEvaluator returns canned results in FIFO order.
type scriptedEvaluator struct {
	queue  []*evaluation.Result
	err    error
	inputs []evaluation.Input
}

func (e *scriptedEvaluator) Evaluate(_ context.Context, in evaluation.Input) (*evaluation.Result, error) {
	e.inputs = append(e.inputs, in)
	if e.err != nil {
		return nil, e.err
	}
	if len(e.queue) == 0 {
		return nil, fmt.Errorf("scripted evaluator exhausted")
	}
	r := e.queue[0]
	e.queue = e.queue[1:]
	return r, nil
}

func evalResult(score int, confidence evaluation.Confidence) *evaluation.Result {
	return &evaluation.Result{
		Score:      score,
		Strengths:  []string{fmt.Sprintf("strength at %d", score)},
		Feedback:   "Canned feedback.",
		Confidence: confidence,
	}
}

// roleSession creates a count-limited role-mode session for tests.
func roleSession(svc *Service, numQuestions int) (*Session, error) {
	return svc.StartSession(context.Background(), SessionConfig{
		Mode:         ModeRole,
		Role:         "Backend Engineer",
		Difficulty:   DifficultyMedium,
		NumQuestions: numQuestions,
	})
}
