package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Both user and assistant messages. Assistant messages accumulate streamed
// content and carry error fields and the pending user-question blob.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("topic_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant"),
		field.Text("content").
			Default(""),
		field.Text("thinking_content").
			Optional(),
		field.String("stream_id").
			Optional().
			Nillable().
			Comment("Correlates all events of one assistant answer"),
		field.String("client_id").
			Optional().
			Nillable().
			Comment("Echoed back for optimistic-UI reconciliation"),
		field.String("agent_run_id").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_category").
			Optional().
			Nillable(),
		field.Text("error_detail").
			Optional(),
		field.JSON("user_question_data", map[string]any{}).
			Optional().
			Comment("question_id, question, options, status pending|answered|expired, thread_id"),
		field.JSON("file_ids", []string{}).
			Optional(),
		field.JSON("citations", []map[string]any{}).
			Optional().
			Comment("Search citations, bulk-persisted at finalization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "created_at"),
		index.Fields("session_id"),
		// One assistant message per stream (nulls are distinct).
		index.Fields("stream_id").
			Unique(),
	}
}
