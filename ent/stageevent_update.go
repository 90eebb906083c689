// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tinkerlab/tinkeralpha/ent/predicate"
	"github.com/tinkerlab/tinkeralpha/ent/stageevent"
)

// StageEventUpdate is the builder for updating StageEvent entities.
type StageEventUpdate struct {
	config
	hooks    []Hook
	mutation *StageEventMutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdate) Where(ps ...predicate.StageEvent) *StageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *StageEventUpdate) SetRunID(v string) *StageEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableRunID(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *StageEventUpdate) SetActivityID(v string) *StageEventUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableActivityID(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *StageEventUpdate) SetStageID(v string) *StageEventUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableStageID(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageEventUpdate) SetStageName(v string) *StageEventUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableStageName(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStars sets the "stars" field.
func (_u *StageEventUpdate) SetStars(v int) *StageEventUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableStars(v *int) *StageEventUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *StageEventUpdate) AddStars(v int) *StageEventUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// SetActivityComplete sets the "activity_complete" field.
func (_u *StageEventUpdate) SetActivityComplete(v bool) *StageEventUpdate {
	_u.mutation.SetActivityComplete(v)
	return _u
}

// SetNillableActivityComplete sets the "activity_complete" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableActivityComplete(v *bool) *StageEventUpdate {
	if v != nil {
		_u.SetActivityComplete(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *StageEventUpdate) SetEvidence(v string) *StageEventUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableEvidence(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdate) Mutation() *StageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := stageevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := stageevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageID(); ok {
		if err := stageevent.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.stage_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(stageevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(stageevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(stageevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageevent.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(stageevent.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(stageevent.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActivityComplete(); ok {
		_spec.SetField(stageevent.FieldActivityComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(stageevent.FieldEvidence, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageEventUpdateOne is the builder for updating a single StageEvent entity.
type StageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *StageEventUpdateOne) SetRunID(v string) *StageEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableRunID(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *StageEventUpdateOne) SetActivityID(v string) *StageEventUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableActivityID(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *StageEventUpdateOne) SetStageID(v string) *StageEventUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableStageID(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageEventUpdateOne) SetStageName(v string) *StageEventUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableStageName(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStars sets the "stars" field.
func (_u *StageEventUpdateOne) SetStars(v int) *StageEventUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableStars(v *int) *StageEventUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *StageEventUpdateOne) AddStars(v int) *StageEventUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// SetActivityComplete sets the "activity_complete" field.
func (_u *StageEventUpdateOne) SetActivityComplete(v bool) *StageEventUpdateOne {
	_u.mutation.SetActivityComplete(v)
	return _u
}

// SetNillableActivityComplete sets the "activity_complete" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableActivityComplete(v *bool) *StageEventUpdateOne {
	if v != nil {
		_u.SetActivityComplete(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *StageEventUpdateOne) SetEvidence(v string) *StageEventUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableEvidence(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdateOne) Mutation() *StageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdateOne) Where(ps ...predicate.StageEvent) *StageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageEventUpdateOne) Select(field string, fields ...string) *StageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageEvent entity.
func (_u *StageEventUpdateOne) Save(ctx context.Context) (*StageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdateOne) SaveX(ctx context.Context) *StageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := stageevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := stageevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageID(); ok {
		if err := stageevent.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.stage_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StageEventUpdateOne) sqlSave(ctx context.Context) (_node *StageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageevent.FieldID)
		for _, f := range fields {
			if !stageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(stageevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(stageevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(stageevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageevent.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(stageevent.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(stageevent.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActivityComplete(); ok {
		_spec.SetField(stageevent.FieldActivityComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(stageevent.FieldEvidence, field.TypeString, value)
	}
	_node = &StageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
