package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeveloperWallet holds the schema definition for the DeveloperWallet entity.
// Earned rewards of an agent publisher, separate from the consumer wallet.
type DeveloperWallet struct {
	ent.Schema
}

// Fields of the DeveloperWallet.
func (DeveloperWallet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("developer_wallet_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique().
			Immutable(),
		field.Int64("available_balance").
			Default(0),
		field.Int64("total_earned").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the DeveloperWallet.
func (DeveloperWallet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").
			Unique(),
	}
}
