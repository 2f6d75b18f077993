package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeveloperEarning holds the schema definition for the DeveloperEarning entity.
// Append-only attribution record: one row per rewarded settlement.
type DeveloperEarning struct {
	ent.Schema
}

// Fields of the DeveloperEarning.
func (DeveloperEarning) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("earning_id").
			Unique().
			Immutable(),
		field.String("developer_user_id").
			Immutable(),
		field.String("consumer_user_id").
			Immutable(),
		field.String("marketplace_id").
			Immutable(),
		field.Int64("amount").
			Immutable().
			Comment("Reward credits granted to the developer"),
		field.Int64("total_consumed").
			Immutable().
			Comment("Consumer deduction this reward derives from"),
		field.Enum("fork_mode").
			Values("editable", "locked").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeveloperEarning.
func (DeveloperEarning) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("developer_user_id", "created_at"),
		index.Fields("marketplace_id"),
	}
}
