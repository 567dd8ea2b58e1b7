// Code generated by ent, DO NOT EDIT.

package questevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldQuestID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldAction, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldEventType, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldStatus, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldQuestID, v))
}

// QuestIDContains applies the Contains predicate on the "quest_id" field.
func QuestIDContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldQuestID, v))
}

// QuestIDHasPrefix applies the HasPrefix predicate on the "quest_id" field.
func QuestIDHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldQuestID, v))
}

// QuestIDHasSuffix applies the HasSuffix predicate on the "quest_id" field.
func QuestIDHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldQuestID, v))
}

// QuestIDEqualFold applies the EqualFold predicate on the "quest_id" field.
func QuestIDEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldQuestID, v))
}

// QuestIDContainsFold applies the ContainsFold predicate on the "quest_id" field.
func QuestIDContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldQuestID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldAction, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldEventType, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldStatus, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuestEvent {
	return predicate.QuestEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestEvent) predicate.QuestEvent {
	return predicate.QuestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestEvent) predicate.QuestEvent {
	return predicate.QuestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestEvent) predicate.QuestEvent {
	return predicate.QuestEvent(sql.NotPredicates(p))
}
