// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyquest/ent/predicate"
	"github.com/abhisek/studyquest/ent/questevent"
)

// QuestEventUpdate is the builder for updating QuestEvent entities.
type QuestEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuestEventMutation
}

// Where appends a list predicates to the QuestEventUpdate builder.
func (_u *QuestEventUpdate) Where(ps ...predicate.QuestEvent) *QuestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *QuestEventUpdate) SetQuestID(v string) *QuestEventUpdate {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableQuestID(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuestEventUpdate) SetAction(v string) *QuestEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableAction(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *QuestEventUpdate) SetEventType(v string) *QuestEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableEventType(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *QuestEventUpdate) ClearEventType() *QuestEventUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *QuestEventUpdate) SetAmount(v int) *QuestEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableAmount(v *int) *QuestEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *QuestEventUpdate) AddAmount(v int) *QuestEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestEventUpdate) SetStatus(v string) *QuestEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableStatus(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestEventUpdate) SetSessionID(v string) *QuestEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestEventUpdate) SetNillableSessionID(v *string) *QuestEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the QuestEventMutation object of the builder.
func (_u *QuestEventUpdate) Mutation() *QuestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestEventUpdate) check() error {
	if v, ok := _u.mutation.QuestID(); ok {
		if err := questevent.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.quest_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := questevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := questevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questevent.Table, questevent.Columns, sqlgraph.NewFieldSpec(questevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(questevent.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(questevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(questevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(questevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(questevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(questevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(questevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestEventUpdateOne is the builder for updating a single QuestEvent entity.
type QuestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestEventMutation
}

// SetQuestID sets the "quest_id" field.
func (_u *QuestEventUpdateOne) SetQuestID(v string) *QuestEventUpdateOne {
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableQuestID(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuestEventUpdateOne) SetAction(v string) *QuestEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableAction(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *QuestEventUpdateOne) SetEventType(v string) *QuestEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableEventType(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *QuestEventUpdateOne) ClearEventType() *QuestEventUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *QuestEventUpdateOne) SetAmount(v int) *QuestEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableAmount(v *int) *QuestEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *QuestEventUpdateOne) AddAmount(v int) *QuestEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestEventUpdateOne) SetStatus(v string) *QuestEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableStatus(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestEventUpdateOne) SetSessionID(v string) *QuestEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestEventUpdateOne) SetNillableSessionID(v *string) *QuestEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the QuestEventMutation object of the builder.
func (_u *QuestEventUpdateOne) Mutation() *QuestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestEventUpdate builder.
func (_u *QuestEventUpdateOne) Where(ps ...predicate.QuestEvent) *QuestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestEventUpdateOne) Select(field string, fields ...string) *QuestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestEvent entity.
func (_u *QuestEventUpdateOne) Save(ctx context.Context) (*QuestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestEventUpdateOne) SaveX(ctx context.Context) *QuestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestID(); ok {
		if err := questevent.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.quest_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := questevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := questevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestEventUpdateOne) sqlSave(ctx context.Context) (_node *QuestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questevent.Table, questevent.Columns, sqlgraph.NewFieldSpec(questevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questevent.FieldID)
		for _, f := range fields {
			if !questevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(questevent.FieldQuestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(questevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(questevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(questevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(questevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(questevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(questevent.FieldSessionID, field.TypeString, value)
	}
	_node = &QuestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
