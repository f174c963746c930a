package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Session is one interview run: immutable configuration captured at
// creation plus a monotonic status lifecycle.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Enum("status").
			Values("in_progress", "completed", "abandoned").
			Default("in_progress").
			Comment("Terminal statuses are never left once entered"),
		field.Enum("mode").
			Values("role", "topics", "resume").
			Immutable(),
		field.String("role").
			Optional().
			Immutable().
			Comment("Target role name (role mode only)"),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Interview topics (topics mode only)"),
		field.Enum("difficulty").
			Values("easy", "medium", "hard").
			Default("medium").
			Immutable(),
		field.Int("num_questions").
			Optional().
			Nillable().
			Immutable().
			Comment("Question-count termination limit; nil when time-limited"),
		field.Int("time_limit_mins").
			Optional().
			Nillable().
			Immutable().
			Comment("Time-budget termination limit; nil when count-limited"),
		field.Bool("no_repeats").
			Default(true).
			Immutable(),
		field.Bool("focus_weak_areas").
			Default(false).
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set exactly once, at the transition to a terminal status"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
		edge.To("report", Report.Type).Unique(),
		edge.From("resume", Resume.Type).Ref("sessions").Unique(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
