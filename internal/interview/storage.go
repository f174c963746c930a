package interview

import (
	"context"
	"encoding/json"

	"github.com/mockmate/mockmate/internal/resume"
)

// Storage is the persistence contract the service depends on. The
// SQLite-backed implementation lives in internal/store.
type Storage interface {
	// CreateSession persists a new in-progress session and returns it.
	CreateSession(ctx context.Context, cfg SessionConfig) (*Session, error)

	// GetSession returns the session or ErrNotFound.
	GetSession(ctx context.Context, sessionID string) (*Session, error)

	// ListSessions returns all sessions, most recent first.
	ListSessions(ctx context.Context) ([]*Session, error)

	// SessionQuestions returns the session's questions in order-index
	// order, with answers and evaluations loaded.
	SessionQuestions(ctx context.Context, sessionID string) ([]*Question, error)

	// CreateQuestion persists a generated question. A fingerprint or
	// order-index collision within the session yields ErrConflict; a
	// second follow-up for the same parent likewise.
	CreateQuestion(ctx context.Context, q *Question) (*Question, error)

	// GetQuestion returns the question with its answer loaded, or
	// ErrNotFound.
	GetQuestion(ctx context.Context, questionID string) (*Question, error)

	// RecordAnswer persists the answer and its evaluation atomically.
	// An already-answered question yields ErrConflict and writes
	// nothing.
	RecordAnswer(ctx context.Context, questionID string, answerText string, eval *Evaluation) (*Answer, error)

	// EndSession moves the session to the given terminal status.
	// Idempotent: a session already in a terminal status is returned
	// unchanged, its original status and end time preserved.
	EndSession(ctx context.Context, sessionID string, status Status) (*Session, error)

	// GetReport returns the session's cached report, or ErrNotFound if
	// none has been created yet.
	GetReport(ctx context.Context, sessionID string) (*Report, error)

	// CreateReport persists the report and, in the same transaction,
	// moves a still in-progress session to completed. A concurrent
	// report for the same session yields ErrConflict.
	CreateReport(ctx context.Context, r *Report) (*Report, error)

	// CreateResume persists a resume with its extracted profile and
	// returns its id.
	CreateResume(ctx context.Context, rawText string, profile json.RawMessage) (string, error)

	// GetResumeProfile returns the stored profile for a resume, or
	// ErrNotFound.
	GetResumeProfile(ctx context.Context, resumeID string) (*resume.Profile, error)
}
