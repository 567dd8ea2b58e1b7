package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single spaced-repetition review of a learning item.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").NotEmpty(),
		field.Int("quality").
			Min(0).
			Max(5).
			Comment("Self-reported recall quality (0-5)"),
		field.Int("interval_days").
			Comment("Interval assigned by this review"),
		field.Float("ease_factor").
			Comment("Ease factor after this review"),
		field.Int("repetition").
			Comment("Repetition count after this review"),
		field.String("session_id").NotEmpty(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("session_id"),
	}
}
