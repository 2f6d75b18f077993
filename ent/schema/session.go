package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session binds a user to an agent and owns topics and the sandbox binding.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("agent_id").
			Comment("Agent the session runs"),
		field.String("marketplace_id").
			Optional().
			Nillable().
			Comment("Set when the agent originates from the marketplace"),
		field.String("developer_user_id").
			Optional().
			Nillable().
			Comment("Publisher of the marketplace agent"),
		field.Bool("config_editable").
			Default(true).
			Comment("Fork editability; locked forks attribute as fork_mode=locked"),
		field.String("title").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
