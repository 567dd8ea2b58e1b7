// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyquest/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// Self-reported recall quality (0-5)
	Quality int `json:"quality,omitempty"`
	// Interval assigned by this review
	IntervalDays int `json:"interval_days,omitempty"`
	// Ease factor after this review
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Repetition count after this review
	Repetition int `json:"repetition,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case reviewevent.FieldID, reviewevent.FieldSequence, reviewevent.FieldQuality, reviewevent.FieldIntervalDays, reviewevent.FieldRepetition:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldItemID, reviewevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case reviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case reviewevent.FieldQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = int(value.Int64)
			}
		case reviewevent.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewevent.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case reviewevent.FieldRepetition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition", values[i])
			} else if value.Valid {
				_m.Repetition = int(value.Int64)
			}
		case reviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quality))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("repetition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetition))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
