package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records an experience grant. The reason field doubles as the
// learner-facing activity log.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Min(0),
		field.String("reason").
			NotEmpty().
			Comment("Opaque activity description, e.g. 'reviewed card-7'"),
		field.Int("total_after").
			Comment("Ledger total XP after this grant"),
		field.Int("level_after").
			Comment("Derived level after this grant"),
		field.String("session_id").NotEmpty(),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
