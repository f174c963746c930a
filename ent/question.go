// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mockmate/mockmate/ent/answer"
	"github.com/mockmate/mockmate/ent/question"
	"github.com/mockmate/mockmate/ent/session"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Dense zero-based sequence within the session, follow-ups included
	OrderIndex int `json:"order_index,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// Case-folded truncated prefix used for duplicate detection
	Fingerprint string `json:"fingerprint,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty question.Difficulty `json:"difficulty,omitempty"`
	// Concepts an ideal answer should cover
	ExpectedPoints []string `json:"expected_points,omitempty"`
	// Phrases suggesting shallow understanding
	FollowUpTriggers []string `json:"follow_up_triggers,omitempty"`
	// Generator's one-line reason for choosing this question
	Rationale string `json:"rationale,omitempty"`
	// IsFollowUp holds the value of the "is_follow_up" field.
	IsFollowUp bool `json:"is_follow_up,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges              QuestionEdges `json:"edges"`
	question_follow_up *uuid.UUID
	session_questions  *uuid.UUID
	selectValues       sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// FollowUp holds the value of the follow_up edge.
	FollowUp *Question `json:"follow_up,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Question `json:"parent,omitempty"`
	// Answer holds the value of the answer edge.
	Answer *Answer `json:"answer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// FollowUpOrErr returns the FollowUp value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) FollowUpOrErr() (*Question, error) {
	if e.FollowUp != nil {
		return e.FollowUp, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "follow_up"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) ParentOrErr() (*Question, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// AnswerOrErr returns the Answer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) AnswerOrErr() (*Answer, error) {
	if e.Answer != nil {
		return e.Answer, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: answer.Label}
	}
	return nil, &NotLoadedError{edge: "answer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldExpectedPoints, question.FieldFollowUpTriggers:
			values[i] = new([]byte)
		case question.FieldIsFollowUp:
			values[i] = new(sql.NullBool)
		case question.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case question.FieldQuestionText, question.FieldFingerprint, question.FieldTopic, question.FieldDifficulty, question.FieldRationale:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case question.FieldID:
			values[i] = new(uuid.UUID)
		case question.ForeignKeys[0]: // question_follow_up
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case question.ForeignKeys[1]: // session_questions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case question.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case question.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case question.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case question.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case question.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = question.Difficulty(value.String)
			}
		case question.FieldExpectedPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedPoints); err != nil {
					return fmt.Errorf("unmarshal field expected_points: %w", err)
				}
			}
		case question.FieldFollowUpTriggers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_triggers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FollowUpTriggers); err != nil {
					return fmt.Errorf("unmarshal field follow_up_triggers: %w", err)
				}
			}
		case question.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case question.FieldIsFollowUp:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_follow_up", values[i])
			} else if value.Valid {
				_m.IsFollowUp = value.Bool
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field question_follow_up", values[i])
			} else if value.Valid {
				_m.question_follow_up = new(uuid.UUID)
				*_m.question_follow_up = *value.S.(*uuid.UUID)
			}
		case question.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field session_questions", values[i])
			} else if value.Valid {
				_m.session_questions = new(uuid.UUID)
				*_m.session_questions = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Question entity.
func (_m *Question) QuerySession() *SessionQuery {
	return NewQuestionClient(_m.config).QuerySession(_m)
}

// QueryFollowUp queries the "follow_up" edge of the Question entity.
func (_m *Question) QueryFollowUp() *QuestionQuery {
	return NewQuestionClient(_m.config).QueryFollowUp(_m)
}

// QueryParent queries the "parent" edge of the Question entity.
func (_m *Question) QueryParent() *QuestionQuery {
	return NewQuestionClient(_m.config).QueryParent(_m)
}

// QueryAnswer queries the "answer" edge of the Question entity.
func (_m *Question) QueryAnswer() *AnswerQuery {
	return NewQuestionClient(_m.config).QueryAnswer(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("expected_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedPoints))
	builder.WriteString(", ")
	builder.WriteString("follow_up_triggers=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpTriggers))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("is_follow_up=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFollowUp))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
