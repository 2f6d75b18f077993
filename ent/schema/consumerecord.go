package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConsumeRecord holds the schema definition for the ConsumeRecord entity.
// Written pending as usage is observed, bulk-transitioned on settlement.
type ConsumeRecord struct {
	ent.Schema
}

// Fields of the ConsumeRecord.
func (ConsumeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("topic_id").
			Immutable(),
		field.String("message_id").
			Optional().
			Nillable().
			Comment("Null until the assistant message exists; settled by time-scoped sweep"),
		field.Enum("record_type").
			Values("llm", "tool_call"),
		field.Int64("amount").
			Comment("Credits"),
		field.Float("cost_usd").
			Default(0),
		field.String("model").
			Optional().
			Nillable(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.String("tier").
			Optional().
			Nillable(),
		field.String("tool_name").
			Optional().
			Nillable(),
		field.String("tool_call_id").
			Optional().
			Nillable(),
		field.String("tool_status").
			Optional().
			Nillable().
			Comment("success or failed"),
		field.Enum("consume_state").
			Values("pending", "success", "failed").
			Default("pending"),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("marketplace_id").
			Optional().
			Nillable(),
		field.String("developer_user_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("settled_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ConsumeRecord.
func (ConsumeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "consume_state"),
		index.Fields("session_id", "topic_id", "consume_state"),
		index.Fields("consume_state", "created_at"),
	}
}
