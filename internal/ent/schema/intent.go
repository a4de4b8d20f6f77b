package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Intent holds the schema definition for the ReasoningIntent entity.
// Written exactly once by the Reasoner, valid or invalid.
type Intent struct{ ent.Schema }

func (Intent) Fields() []ent.Field {
	return []ent.Field{
		field.String("intent_id").NotEmpty().Unique().Immutable(),
		field.String("conversation_id").NotEmpty().Immutable(),
		field.String("message_id").NotEmpty().Immutable(),
		field.String("action").NotEmpty().Immutable(),
		field.JSON("parameters", map[string]any{}).Optional().Immutable(),
		field.Float("confidence").Immutable(),
		field.Bool("valid").Immutable(),
		// Present iff valid == false.
		field.String("validation_error").Optional().Immutable(),
		field.Time("created_at").Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Intent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id").Unique(),
		index.Fields("conversation_id"),
	}
}
