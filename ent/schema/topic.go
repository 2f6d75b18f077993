package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DefaultTopicTitle is the placeholder assigned to new topics until the
// background title generator replaces it.
const DefaultTopicTitle = "New topic"

// Topic holds the schema definition for the Topic entity.
// One conversation thread inside a session; the connection id for the
// event fabric is "{session_id}:{topic_id}".
type Topic struct {
	ent.Schema
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("topic_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Default(DefaultTopicTitle),
		field.Time("last_message_at").
			Optional().
			Nillable().
			Comment("Bumped on turn completion for topic list ordering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Topic.
func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "last_message_at"),
	}
}
