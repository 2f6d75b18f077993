package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One row per agent-graph invocation with its node timeline.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_run_id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("topic_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "cancelled", "failed").
			Default("running"),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.JSON("node_data", map[string]any{}).
			Optional().
			Comment("timeline[], node_outputs{}, node_order[], node_names{}, tool_calls{node: list}"),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id"),
		index.Fields("session_id", "started_at"),
		index.Fields("status"),
	}
}
