// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyquest/ent/questevent"
)

// QuestEventCreate is the builder for creating a QuestEvent entity.
type QuestEventCreate struct {
	config
	mutation *QuestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuestEventCreate) SetSequence(v int64) *QuestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuestEventCreate) SetTimestamp(v time.Time) *QuestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuestEventCreate) SetNillableTimestamp(v *time.Time) *QuestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *QuestEventCreate) SetQuestID(v string) *QuestEventCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *QuestEventCreate) SetAction(v string) *QuestEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *QuestEventCreate) SetEventType(v string) *QuestEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *QuestEventCreate) SetNillableEventType(v *string) *QuestEventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *QuestEventCreate) SetAmount(v int) *QuestEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *QuestEventCreate) SetNillableAmount(v *int) *QuestEventCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuestEventCreate) SetStatus(v string) *QuestEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuestEventCreate) SetSessionID(v string) *QuestEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// Mutation returns the QuestEventMutation object of the builder.
func (_c *QuestEventCreate) Mutation() *QuestEventMutation {
	return _c.mutation
}

// Save creates the QuestEvent in the database.
func (_c *QuestEventCreate) Save(ctx context.Context) (*QuestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestEventCreate) SaveX(ctx context.Context) *QuestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := questevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Amount(); !ok {
		v := questevent.DefaultAmount
		_c.mutation.SetAmount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "QuestEvent.quest_id"`)}
	}
	if v, ok := _c.mutation.QuestID(); ok {
		if err := questevent.QuestIDValidator(v); err != nil {
			return &ValidationError{Name: "quest_id", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.quest_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "QuestEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := questevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "QuestEvent.amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuestEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := questevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuestEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := questevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestEventCreate) sqlSave(ctx context.Context) (*QuestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestEventCreate) createSpec() (*QuestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questevent.Table, sqlgraph.NewFieldSpec(questevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(questevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(questevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(questevent.FieldQuestID, field.TypeString, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(questevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(questevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(questevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(questevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(questevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// QuestEventCreateBulk is the builder for creating many QuestEvent entities in bulk.
type QuestEventCreateBulk struct {
	config
	err      error
	builders []*QuestEventCreate
}

// Save creates the QuestEvent entities in the database.
func (_c *QuestEventCreateBulk) Save(ctx context.Context) ([]*QuestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestEventCreateBulk) SaveX(ctx context.Context) []*QuestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
