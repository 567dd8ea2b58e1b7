// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyquest/ent/badgeevent"
	"github.com/abhisek/studyquest/ent/predicate"
)

// BadgeEventDelete is the builder for deleting a BadgeEvent entity.
type BadgeEventDelete struct {
	config
	hooks    []Hook
	mutation *BadgeEventMutation
}

// Where appends a list predicates to the BadgeEventDelete builder.
func (_d *BadgeEventDelete) Where(ps ...predicate.BadgeEvent) *BadgeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BadgeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BadgeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BadgeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(badgeevent.Table, sqlgraph.NewFieldSpec(badgeevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BadgeEventDeleteOne is the builder for deleting a single BadgeEvent entity.
type BadgeEventDeleteOne struct {
	_d *BadgeEventDelete
}

// Where appends a list predicates to the BadgeEventDelete builder.
func (_d *BadgeEventDeleteOne) Where(ps ...predicate.BadgeEvent) *BadgeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BadgeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{badgeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BadgeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
