package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/mockmate/mockmate/internal/evaluation"
)

// Mode selects where a session's questions come from.
type Mode string

const (
	ModeRole   Mode = "role"
	ModeTopics Mode = "topics"
	ModeResume Mode = "resume"
)

// Difficulty is the requested question difficulty for a session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Status is the session lifecycle state. Transitions are monotonic:
// a terminal status is never left.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// SessionConfig is the immutable configuration captured when a session
// is created. Exactly one of NumQuestions or TimeLimitMins must be set.
type SessionConfig struct {
	Mode           Mode
	Role           string   // ModeRole only
	Topics         []string // ModeTopics only
	ResumeID       string   // ModeResume only
	Difficulty     Difficulty
	NumQuestions   int // question-count limit; 0 when time-limited
	TimeLimitMins  int // time-budget limit; 0 when count-limited
	NoRepeats      bool
	FocusWeakAreas bool
}

// Validate checks mode-specific requirements and the termination limit.
func (c SessionConfig) Validate() error {
	switch c.Mode {
	case ModeRole:
		if strings.TrimSpace(c.Role) == "" {
			return fmt.Errorf("%w: role name is required for role mode", ErrValidation)
		}
	case ModeTopics:
		if len(c.Topics) == 0 {
			return fmt.Errorf("%w: at least one topic is required for topics mode", ErrValidation)
		}
	case ModeResume:
		if c.ResumeID == "" {
			return fmt.Errorf("%w: resume is required for resume mode", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrValidation, c.Mode)
	}

	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrValidation, c.Difficulty)
	}

	if (c.NumQuestions == 0) == (c.TimeLimitMins == 0) {
		return fmt.Errorf("%w: exactly one of question count or time limit is required", ErrValidation)
	}
	if c.NumQuestions < 0 || c.NumQuestions > 30 {
		return fmt.Errorf("%w: question count must be between 1 and 30", ErrValidation)
	}
	if c.TimeLimitMins < 0 || c.TimeLimitMins > 120 {
		return fmt.Errorf("%w: time limit must be between 5 and 120 minutes", ErrValidation)
	}
	if c.TimeLimitMins > 0 && c.TimeLimitMins < 5 {
		return fmt.Errorf("%w: time limit must be between 5 and 120 minutes", ErrValidation)
	}
	return nil
}

// Session is one interview run.
type Session struct {
	ID        string
	Config    SessionConfig
	Status    Status
	StartedAt time.Time
	EndedAt   *time.Time
}

// Expired reports whether a time-limited session's budget has run out.
// Count-limited sessions never expire by time.
func (s *Session) Expired(now time.Time) bool {
	if s.Config.TimeLimitMins == 0 {
		return false
	}
	return !now.Before(s.StartedAt.Add(time.Duration(s.Config.TimeLimitMins) * time.Minute))
}

// Question is a generated question within a session. Immutable once
// created; OrderIndex is dense and zero-based across mains and
// follow-ups in creation order.
type Question struct {
	ID               string
	SessionID        string
	OrderIndex       int
	Text             string
	Fingerprint      string
	Topic            string
	Difficulty       Difficulty
	ExpectedPoints   []string
	FollowUpTriggers []string
	Rationale        string
	IsFollowUp       bool
	ParentID         string // non-empty iff IsFollowUp
	CreatedAt        time.Time

	// Answer is the candidate's answer, nil if not yet answered.
	Answer *Answer
}

// Evaluated reports whether this question has a scored answer.
func (q *Question) Evaluated() bool {
	return q.Answer != nil && q.Answer.Evaluation != nil
}

// Answer is the candidate's response to a question, at most one each.
type Answer struct {
	ID          string
	Text        string
	SubmittedAt time.Time

	// Evaluation is written in the same transaction as the answer and
	// is therefore never nil on a persisted answer; the field is a
	// pointer only so an unevaluated projection can express absence.
	Evaluation *Evaluation
}

// Evaluation is the scored assessment of one answer.
type Evaluation struct {
	ID             string
	Score          int
	Strengths      []string
	MissingPoints  []string
	Feedback       string
	NextFocusTopic string
	Confidence     evaluation.Confidence
	CreatedAt      time.Time
}

// TopicScore is a per-topic aggregate on a report.
type TopicScore struct {
	Topic         string
	AvgScore      float64
	QuestionCount int
}

// Report is the final session summary, computed once and cached.
type Report struct {
	ID              string
	SessionID       string
	OverallScore    float64
	TopicScores     []TopicScore // ascending by AvgScore, worst first
	Strengths       []string
	Weaknesses      []string
	ImprovementTips []string
	CreatedAt       time.Time
}

// SessionState is the caller-facing projection of a session's progress.
type SessionState struct {
	Session       *Session
	AnsweredCount int // answered main questions
}

// Turn is the outcome of advancing a session by one step.
type Turn struct {
	// Done is true when the session has reached its termination
	// condition; Question is nil in that case.
	Done   bool
	Status Status

	// Question is the newly created question for the candidate.
	Question *Question

	// Number is the 1-based ordinal of the current main question.
	Number int

	// Total is the session's question target.
	Total int
}

// TranscriptItem pairs a main question with its single optional
// follow-up, both with their evaluations. A read-side projection for
// presentation; no aggregation happens here.
type TranscriptItem struct {
	Question *Question
	FollowUp *Question
}
