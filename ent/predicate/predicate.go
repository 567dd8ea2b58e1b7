// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BadgeEvent is the predicate function for badgeevent builders.
type BadgeEvent func(*sql.Selector)

// QuestEvent is the predicate function for questevent builders.
type QuestEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
