package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Answer is the candidate's response to a single question. At most one
// per question, enforced by the unique question edge.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Text("answer_text").
			NotEmpty().
			Immutable(),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("answer").
			Unique().
			Required(),
		edge.To("evaluation", Evaluation.Type).
			Unique(),
	}
}
