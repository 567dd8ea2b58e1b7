package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge unlock.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_id").NotEmpty(),
		field.String("condition_kind").NotEmpty(),
		field.Int("xp_reward").Default(0),
		field.String("session_id").NotEmpty(),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("badge_id"),
		index.Fields("session_id"),
	}
}
