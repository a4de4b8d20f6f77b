package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// Exactly one document exists per conversation id; its state is mutated
// only through the transition protocol enforced in pkg/store/entstore.
type Conversation struct{ ent.Schema }

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		// Stable external id (UUID), independent of the internal row id.
		field.String("conversation_id").NotEmpty().Unique(),
		field.String("state").NotEmpty(),
		field.Time("created_at").Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("updated_at").Default(time.Now).SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id").Unique(),
	}
}
