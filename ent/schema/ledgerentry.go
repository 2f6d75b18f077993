package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LedgerEntry holds the schema definition for the LedgerEntry entity.
// Append-only; one row per typed-bucket change.
type LedgerEntry struct {
	ent.Schema
}

// Fields of the LedgerEntry.
func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("credit_type").
			Values("free", "paid", "earned").
			Immutable(),
		field.Enum("direction").
			Values("credit", "debit").
			Immutable(),
		field.Int64("amount").
			Immutable(),
		field.Int64("balance_after").
			Immutable().
			Comment("Typed bucket balance after this entry"),
		field.Int64("total_balance_after").
			Immutable().
			Comment("virtual_total after this entry"),
		field.String("source").
			Immutable().
			Comment("welcome_bonus, chat_settlement, developer_reward, ..."),
		field.String("reference_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LedgerEntry.
func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
