// Code generated by ent, DO NOT EDIT.

package badgeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeID, v))
}

// ConditionKind applies equality check predicate on the "condition_kind" field. It's identical to ConditionKindEQ.
func ConditionKind(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldConditionKind, v))
}

// XpReward applies equality check predicate on the "xp_reward" field. It's identical to XpRewardEQ.
func XpReward(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldXpReward, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldBadgeID, v))
}

// ConditionKindEQ applies the EQ predicate on the "condition_kind" field.
func ConditionKindEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldConditionKind, v))
}

// ConditionKindNEQ applies the NEQ predicate on the "condition_kind" field.
func ConditionKindNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldConditionKind, v))
}

// ConditionKindIn applies the In predicate on the "condition_kind" field.
func ConditionKindIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldConditionKind, vs...))
}

// ConditionKindNotIn applies the NotIn predicate on the "condition_kind" field.
func ConditionKindNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldConditionKind, vs...))
}

// ConditionKindGT applies the GT predicate on the "condition_kind" field.
func ConditionKindGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldConditionKind, v))
}

// ConditionKindGTE applies the GTE predicate on the "condition_kind" field.
func ConditionKindGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldConditionKind, v))
}

// ConditionKindLT applies the LT predicate on the "condition_kind" field.
func ConditionKindLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldConditionKind, v))
}

// ConditionKindLTE applies the LTE predicate on the "condition_kind" field.
func ConditionKindLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldConditionKind, v))
}

// ConditionKindContains applies the Contains predicate on the "condition_kind" field.
func ConditionKindContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldConditionKind, v))
}

// ConditionKindHasPrefix applies the HasPrefix predicate on the "condition_kind" field.
func ConditionKindHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldConditionKind, v))
}

// ConditionKindHasSuffix applies the HasSuffix predicate on the "condition_kind" field.
func ConditionKindHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldConditionKind, v))
}

// ConditionKindEqualFold applies the EqualFold predicate on the "condition_kind" field.
func ConditionKindEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldConditionKind, v))
}

// ConditionKindContainsFold applies the ContainsFold predicate on the "condition_kind" field.
func ConditionKindContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldConditionKind, v))
}

// XpRewardEQ applies the EQ predicate on the "xp_reward" field.
func XpRewardEQ(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldXpReward, v))
}

// XpRewardNEQ applies the NEQ predicate on the "xp_reward" field.
func XpRewardNEQ(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldXpReward, v))
}

// XpRewardIn applies the In predicate on the "xp_reward" field.
func XpRewardIn(vs ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldXpReward, vs...))
}

// XpRewardNotIn applies the NotIn predicate on the "xp_reward" field.
func XpRewardNotIn(vs ...int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldXpReward, vs...))
}

// XpRewardGT applies the GT predicate on the "xp_reward" field.
func XpRewardGT(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldXpReward, v))
}

// XpRewardGTE applies the GTE predicate on the "xp_reward" field.
func XpRewardGTE(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldXpReward, v))
}

// XpRewardLT applies the LT predicate on the "xp_reward" field.
func XpRewardLT(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldXpReward, v))
}

// XpRewardLTE applies the LTE predicate on the "xp_reward" field.
func XpRewardLTE(v int) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldXpReward, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BadgeEvent) predicate.BadgeEvent {
	return predicate.BadgeEvent(sql.NotPredicates(p))
}
