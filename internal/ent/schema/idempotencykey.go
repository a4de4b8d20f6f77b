package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IdempotencyKey holds the schema definition for the client-submitted
// idempotency record. Keyed by the client-supplied key, global scope,
// immutable once written: the first writer wins and every
// subsequent claim of the same key resolves to the message id recorded
// here rather than creating a new message.
type IdempotencyKey struct{ ent.Schema }

func (IdempotencyKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").NotEmpty().Unique().Immutable(),
		field.String("message_id").NotEmpty().Immutable(),
		field.Time("created_at").Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (IdempotencyKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
