package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Receipt holds the schema definition for the per-event consumer receipt.
// Scoped globally by event id: every handler that processes a
// bus event claims a receipt before acting, and completes it afterward.
// A stale "processing" receipt past the reclamation threshold may be
// re-claimed by a retry.
type Receipt struct{ ent.Schema }

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").NotEmpty().Unique().Immutable(),
		field.String("handler").NotEmpty().Immutable(),
		field.String("conversation_id").NotEmpty().Immutable(),
		field.String("message_id").NotEmpty().Immutable(),
		// One of "processing", "completed".
		field.String("status").NotEmpty(),
		field.Time("claimed_at").SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("completed_at").Optional().Nillable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("retried_at").Optional().Nillable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id").Unique(),
	}
}
