// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldItemID, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldQuality, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEaseFactor, v))
}

// Repetition applies equality check predicate on the "repetition" field. It's identical to RepetitionEQ.
func Repetition(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRepetition, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldItemID, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldQuality, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldEaseFactor, v))
}

// RepetitionEQ applies the EQ predicate on the "repetition" field.
func RepetitionEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRepetition, v))
}

// RepetitionNEQ applies the NEQ predicate on the "repetition" field.
func RepetitionNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldRepetition, v))
}

// RepetitionIn applies the In predicate on the "repetition" field.
func RepetitionIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldRepetition, vs...))
}

// RepetitionNotIn applies the NotIn predicate on the "repetition" field.
func RepetitionNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldRepetition, vs...))
}

// RepetitionGT applies the GT predicate on the "repetition" field.
func RepetitionGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldRepetition, v))
}

// RepetitionGTE applies the GTE predicate on the "repetition" field.
func RepetitionGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldRepetition, v))
}

// RepetitionLT applies the LT predicate on the "repetition" field.
func RepetitionLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldRepetition, v))
}

// RepetitionLTE applies the LTE predicate on the "repetition" field.
func RepetitionLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldRepetition, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.NotPredicates(p))
}
