package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the UserMessage entity.
// Immutable after creation; scoped beneath its conversation.
type Message struct{ ent.Schema }

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").NotEmpty().Unique().Immutable(),
		field.String("conversation_id").NotEmpty().Immutable(),
		field.String("content").NotEmpty().Immutable(),
		// Empty when the client did not supply an X-Idempotency-Key.
		field.String("idempotency_key").Optional().Immutable(),
		field.Time("created_at").Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id").Unique(),
		index.Fields("conversation_id"),
	}
}
