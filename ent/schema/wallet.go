package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Wallet holds the schema definition for the Wallet entity.
// Typed credit buckets; virtual_total is kept equal to free+paid+earned
// inside every mutating transaction.
type Wallet struct {
	ent.Schema
}

// Fields of the Wallet.
func (Wallet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("wallet_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique().
			Immutable(),
		field.Int64("free").
			Default(0),
		field.Int64("paid").
			Default(0),
		field.Int64("earned").
			Default(0),
		field.Int64("virtual_total").
			Default(0),
		field.Int64("total_credited").
			Default(0),
		field.Int64("total_consumed").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Wallet.
func (Wallet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").
			Unique(),
	}
}
