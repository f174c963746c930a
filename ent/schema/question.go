package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is a generated interview question. Rows are immutable; the
// orchestrator assigns order_index densely per session.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Int("order_index").
			Immutable().
			Comment("Dense zero-based sequence within the session, follow-ups included"),
		field.Text("question_text").
			NotEmpty().
			Immutable(),
		field.String("fingerprint").
			NotEmpty().
			Immutable().
			Comment("Case-folded truncated prefix used for duplicate detection"),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.Enum("difficulty").
			Values("easy", "medium", "hard").
			Immutable(),
		field.JSON("expected_points", []string{}).
			Comment("Concepts an ideal answer should cover"),
		field.JSON("follow_up_triggers", []string{}).
			Optional().
			Comment("Phrases suggesting shallow understanding"),
		field.Text("rationale").
			Optional().
			Comment("Generator's one-line reason for choosing this question"),
		field.Bool("is_follow_up").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("questions").
			Unique().
			Required(),
		// A main question has at most one follow-up; the unique FK on the
		// child side enforces this at the storage layer.
		edge.To("follow_up", Question.Type).
			Unique(),
		edge.From("parent", Question.Type).
			Ref("follow_up").
			Unique(),
		edge.To("answer", Answer.Type).
			Unique(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_index").
			Edges("session").
			Unique(),
		index.Fields("fingerprint").
			Edges("session").
			Unique(),
		index.Fields("is_follow_up"),
	}
}
