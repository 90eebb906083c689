// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tinkerlab/tinkeralpha/ent/stageevent"
)

// StageEventCreate is the builder for creating a StageEvent entity.
type StageEventCreate struct {
	config
	mutation *StageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StageEventCreate) SetSequence(v int64) *StageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StageEventCreate) SetTimestamp(v time.Time) *StageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableTimestamp(v *time.Time) *StageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *StageEventCreate) SetRunID(v string) *StageEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *StageEventCreate) SetActivityID(v string) *StageEventCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *StageEventCreate) SetStageID(v string) *StageEventCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageEventCreate) SetStageName(v string) *StageEventCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableStageName(v *string) *StageEventCreate {
	if v != nil {
		_c.SetStageName(*v)
	}
	return _c
}

// SetStars sets the "stars" field.
func (_c *StageEventCreate) SetStars(v int) *StageEventCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableStars(v *int) *StageEventCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetActivityComplete sets the "activity_complete" field.
func (_c *StageEventCreate) SetActivityComplete(v bool) *StageEventCreate {
	_c.mutation.SetActivityComplete(v)
	return _c
}

// SetNillableActivityComplete sets the "activity_complete" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableActivityComplete(v *bool) *StageEventCreate {
	if v != nil {
		_c.SetActivityComplete(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *StageEventCreate) SetEvidence(v string) *StageEventCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableEvidence(v *string) *StageEventCreate {
	if v != nil {
		_c.SetEvidence(*v)
	}
	return _c
}

// Mutation returns the StageEventMutation object of the builder.
func (_c *StageEventCreate) Mutation() *StageEventMutation {
	return _c.mutation
}

// Save creates the StageEvent in the database.
func (_c *StageEventCreate) Save(ctx context.Context) (*StageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageEventCreate) SaveX(ctx context.Context) *StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StageName(); !ok {
		v := stageevent.DefaultStageName
		_c.mutation.SetStageName(v)
	}
	if _, ok := _c.mutation.Stars(); !ok {
		v := stageevent.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.ActivityComplete(); !ok {
		v := stageevent.DefaultActivityComplete
		_c.mutation.SetActivityComplete(v)
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		v := stageevent.DefaultEvidence
		_c.mutation.SetEvidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StageEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := stageevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "StageEvent.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := stageevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "StageEvent.stage_id"`)}
	}
	if v, ok := _c.mutation.StageID(); ok {
		if err := stageevent.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "StageEvent.stage_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "StageEvent.stage_name"`)}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "StageEvent.stars"`)}
	}
	if _, ok := _c.mutation.ActivityComplete(); !ok {
		return &ValidationError{Name: "activity_complete", err: errors.New(`ent: missing required field "StageEvent.activity_complete"`)}
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		return &ValidationError{Name: "evidence", err: errors.New(`ent: missing required field "StageEvent.evidence"`)}
	}
	return nil
}

func (_c *StageEventCreate) sqlSave(ctx context.Context) (*StageEvent, error) {
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

func (_c *StageEventCreate) createSpec() (*StageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageevent.Table, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(stageevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(stageevent.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(stageevent.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stageevent.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(stageevent.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.ActivityComplete(); ok {
		_spec.SetField(stageevent.FieldActivityComplete, field.TypeBool, value)
		_node.ActivityComplete = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(stageevent.FieldEvidence, field.TypeString, value)
		_node.Evidence = value
	}
	return _node, _spec
}

// StageEventCreateBulk is the builder for creating many StageEvent entities in bulk.
type StageEventCreateBulk struct {
	config
	err      error
	builders []*StageEventCreate
}

// Save creates the StageEvent entities in the database.
func (_c *StageEventCreateBulk) Save(ctx context.Context) ([]*StageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageEventMutation)
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
func (_c *StageEventCreateBulk) SaveX(ctx context.Context) []*StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
