package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Action holds the schema definition for the ActionResult entity.
// Written exactly once by the Executor, per intent, per conversation.
type Action struct{ ent.Schema }

func (Action) Fields() []ent.Field {
	return []ent.Field{
		field.String("action_id").NotEmpty().Unique().Immutable(),
		field.String("conversation_id").NotEmpty().Immutable(),
		field.String("intent_id").NotEmpty().Immutable(),
		field.String("message_id").NotEmpty().Immutable(),
		field.JSON("result", map[string]any{}).Optional().Immutable(),
		field.Bool("success").Immutable(),
		field.String("error").Optional().Immutable(),
		field.Time("executed_at").Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Action) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action_id").Unique(),
		index.Fields("conversation_id"),
		// At most one ActionResult per intentId per conversation.
		index.Fields("conversation_id", "intent_id").Unique(),
	}
}
