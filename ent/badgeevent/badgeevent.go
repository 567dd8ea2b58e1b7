// Code generated by ent, DO NOT EDIT.

package badgeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the badgeevent type in the database.
	Label = "badge_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBadgeID holds the string denoting the badge_id field in the database.
	FieldBadgeID = "badge_id"
	// FieldConditionKind holds the string denoting the condition_kind field in the database.
	FieldConditionKind = "condition_kind"
	// FieldXpReward holds the string denoting the xp_reward field in the database.
	FieldXpReward = "xp_reward"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the badgeevent in the database.
	Table = "badge_events"
)

// Columns holds all SQL columns for badgeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBadgeID,
	FieldConditionKind,
	FieldXpReward,
	FieldSessionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	BadgeIDValidator func(string) error
	// ConditionKindValidator is a validator for the "condition_kind" field. It is called by the builders before save.
	ConditionKindValidator func(string) error
	// DefaultXpReward holds the default value on creation for the "xp_reward" field.
	DefaultXpReward int
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
)

// OrderOption defines the ordering options for the BadgeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByBadgeID orders the results by the badge_id field.
func ByBadgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeID, opts...).ToFunc()
}

// ByConditionKind orders the results by the condition_kind field.
func ByConditionKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionKind, opts...).ToFunc()
}

// ByXpReward orders the results by the xp_reward field.
func ByXpReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpReward, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
