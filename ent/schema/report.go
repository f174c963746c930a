package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TopicScore is the serialized per-topic aggregate stored on a report.
type TopicScore struct {
	Topic         string  `json:"topic"`
	AvgScore      float64 `json:"avg_score"`
	QuestionCount int     `json:"question_count"`
}

// Report is the final session summary, computed once from the evaluated
// questions and cached. At most one per session.
type Report struct {
	ent.Schema
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Float("overall_score").
			Immutable().
			Comment("Mean score over evaluated main questions, one decimal"),
		field.JSON("topic_scores", []TopicScore{}).
			Comment("Sorted ascending by average score, worst topics first"),
		field.JSON("strengths", []string{}),
		field.JSON("weaknesses", []string{}),
		field.JSON("improvement_tips", []string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("report").
			Unique().
			Required(),
	}
}
