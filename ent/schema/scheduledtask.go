package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledTask holds the schema definition for the ScheduledTask entity.
// Drives recurring autonomous agent turns.
type ScheduledTask struct {
	ent.Schema
}

// Fields of the ScheduledTask.
func (ScheduledTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Bound on first fire; autonomous runs share one conversation"),
		field.String("topic_id").
			Optional().
			Nillable(),
		field.Text("prompt"),
		field.Enum("schedule_type").
			Values("once", "interval"),
		field.Int64("interval_seconds").
			Default(0).
			Comment("Zero for one-shot tasks"),
		field.Time("next_fire_at"),
		field.Int("run_count").
			Default(0),
		field.Int("max_runs").
			Default(0).
			Comment("Zero means unlimited"),
		field.Enum("status").
			Values("active", "paused", "completed", "failed").
			Default("active"),
		field.String("external_task_id").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claiming pod, for multi-replica"),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScheduledTask.
func (ScheduledTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_fire_at"),
		index.Fields("user_id"),
	}
}
