package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Evaluation is the scored assessment of one answer, written in the
// same transaction as the answer it belongs to.
type Evaluation struct {
	ent.Schema
}

func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Int("score").
			Min(0).
			Max(10).
			Immutable(),
		field.JSON("strengths", []string{}),
		field.JSON("missing_points", []string{}),
		field.Text("feedback").
			NotEmpty().
			Immutable(),
		field.String("next_focus_topic").
			Optional().
			Immutable(),
		field.Enum("confidence").
			Values("low", "medium", "high").
			Immutable().
			Comment("Evaluator certainty; low is the follow-up trigger offered to callers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("answer", Answer.Type).
			Ref("evaluation").
			Unique().
			Required(),
	}
}
