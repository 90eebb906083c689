// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tinkerlab/tinkeralpha/ent/mascotrequestevent"
	"github.com/tinkerlab/tinkeralpha/ent/predicate"
)

// MascotRequestEventDelete is the builder for deleting a MascotRequestEvent entity.
type MascotRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *MascotRequestEventMutation
}

// Where appends a list predicates to the MascotRequestEventDelete builder.
func (_d *MascotRequestEventDelete) Where(ps ...predicate.MascotRequestEvent) *MascotRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MascotRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MascotRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MascotRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mascotrequestevent.Table, sqlgraph.NewFieldSpec(mascotrequestevent.FieldID, field.TypeInt))
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

// MascotRequestEventDeleteOne is the builder for deleting a single MascotRequestEvent entity.
type MascotRequestEventDeleteOne struct {
	_d *MascotRequestEventDelete
}

// Where appends a list predicates to the MascotRequestEventDelete builder.
func (_d *MascotRequestEventDeleteOne) Where(ps ...predicate.MascotRequestEvent) *MascotRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MascotRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mascotrequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MascotRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
