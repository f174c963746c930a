package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Resume holds candidate resume text and the structured profile
// extracted from it. Referenced by resume-mode sessions.
type Resume struct {
	ent.Schema
}

func (Resume) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Text("raw_text").
			Optional().
			Immutable(),
		field.JSON("profile", json.RawMessage{}).
			Comment("Structured candidate profile as returned by the provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Resume) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type),
	}
}
