// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldAmount, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldReason, v))
}

// TotalAfter applies equality check predicate on the "total_after" field. It's identical to TotalAfterEQ.
func TotalAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTotalAfter, v))
}

// LevelAfter applies equality check predicate on the "level_after" field. It's identical to LevelAfterEQ.
func LevelAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldAmount, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldReason, v))
}

// TotalAfterEQ applies the EQ predicate on the "total_after" field.
func TotalAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTotalAfter, v))
}

// TotalAfterNEQ applies the NEQ predicate on the "total_after" field.
func TotalAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldTotalAfter, v))
}

// TotalAfterIn applies the In predicate on the "total_after" field.
func TotalAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldTotalAfter, vs...))
}

// TotalAfterNotIn applies the NotIn predicate on the "total_after" field.
func TotalAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldTotalAfter, vs...))
}

// TotalAfterGT applies the GT predicate on the "total_after" field.
func TotalAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldTotalAfter, v))
}

// TotalAfterGTE applies the GTE predicate on the "total_after" field.
func TotalAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldTotalAfter, v))
}

// TotalAfterLT applies the LT predicate on the "total_after" field.
func TotalAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldTotalAfter, v))
}

// TotalAfterLTE applies the LTE predicate on the "total_after" field.
func TotalAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldTotalAfter, v))
}

// LevelAfterEQ applies the EQ predicate on the "level_after" field.
func LevelAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// LevelAfterNEQ applies the NEQ predicate on the "level_after" field.
func LevelAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldLevelAfter, v))
}

// LevelAfterIn applies the In predicate on the "level_after" field.
func LevelAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldLevelAfter, vs...))
}

// LevelAfterNotIn applies the NotIn predicate on the "level_after" field.
func LevelAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldLevelAfter, vs...))
}

// LevelAfterGT applies the GT predicate on the "level_after" field.
func LevelAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldLevelAfter, v))
}

// LevelAfterGTE applies the GTE predicate on the "level_after" field.
func LevelAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldLevelAfter, v))
}

// LevelAfterLT applies the LT predicate on the "level_after" field.
func LevelAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldLevelAfter, v))
}

// LevelAfterLTE applies the LTE predicate on the "level_after" field.
func LevelAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldLevelAfter, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.NotPredicates(p))
}
