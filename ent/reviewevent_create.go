// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyquest/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReviewEventCreate) SetSequence(v int64) *ReviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewEventCreate) SetTimestamp(v time.Time) *ReviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableTimestamp(v *time.Time) *ReviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewEventCreate) SetItemID(v string) *ReviewEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *ReviewEventCreate) SetQuality(v int) *ReviewEventCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewEventCreate) SetIntervalDays(v int) *ReviewEventCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewEventCreate) SetEaseFactor(v float64) *ReviewEventCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetRepetition sets the "repetition" field.
func (_c *ReviewEventCreate) SetRepetition(v int) *ReviewEventCreate {
	_c.mutation.SetRepetition(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewEventCreate) SetSessionID(v string) *ReviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_c *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return _c.mutation
}

// Save creates the ReviewEvent in the database.
func (_c *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "ReviewEvent.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := reviewevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewEvent.interval_days"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewEvent.ease_factor"`)}
	}
	if _, ok := _c.mutation.Repetition(); !ok {
		return &ValidationError{Name: "repetition", err: errors.New(`ent: missing required field "ReviewEvent.repetition"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReviewEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_c *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
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

func (_c *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Repetition(); ok {
		_spec.SetField(reviewevent.FieldRepetition, field.TypeInt, value)
		_node.Repetition = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (_c *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
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
func (_c *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
