package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestEvent records quest lifecycle activity: objective progress, status
// transitions, and reward claims.
type QuestEvent struct {
	ent.Schema
}

func (QuestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quest_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("advance, complete, unlock, or claim"),
		field.String("event_type").
			Optional().
			Comment("Objective event type (on advance only)"),
		field.Int("amount").
			Default(0).
			Comment("Objective increment (on advance only)"),
		field.String("status").
			NotEmpty().
			Comment("Quest status after the action"),
		field.String("session_id").NotEmpty(),
	}
}

func (QuestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quest_id"),
		index.Fields("action"),
	}
}
