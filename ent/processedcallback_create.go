// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
)

// ProcessedCallbackCreate is the builder for creating a ProcessedCallback entity.
type ProcessedCallbackCreate struct {
	config
	mutation *ProcessedCallbackMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ProcessedCallbackCreate) SetJobID(v string) *ProcessedCallbackCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *ProcessedCallbackCreate) SetNillableJobID(v *string) *ProcessedCallbackCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ProcessedCallbackCreate) SetOutcome(v string) *ProcessedCallbackCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ProcessedCallbackCreate) SetReceivedAt(v time.Time) *ProcessedCallbackCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *ProcessedCallbackCreate) SetNillableReceivedAt(v *time.Time) *ProcessedCallbackCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedCallbackCreate) SetID(v string) *ProcessedCallbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessedCallbackMutation object of the builder.
func (_c *ProcessedCallbackCreate) Mutation() *ProcessedCallbackMutation {
	return _c.mutation
}

// Save creates the ProcessedCallback in the database.
func (_c *ProcessedCallbackCreate) Save(ctx context.Context) (*ProcessedCallback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedCallbackCreate) SaveX(ctx context.Context) *ProcessedCallback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedCallbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedCallbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedCallbackCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := processedcallback.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedCallbackCreate) check() error {
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ProcessedCallback.outcome"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "ProcessedCallback.received_at"`)}
	}
	return nil
}

func (_c *ProcessedCallbackCreate) sqlSave(ctx context.Context) (*ProcessedCallback, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ProcessedCallback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedCallbackCreate) createSpec() (*ProcessedCallback, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedCallback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedcallback.Table, sqlgraph.NewFieldSpec(processedcallback.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(processedcallback.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(processedcallback.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(processedcallback.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// ProcessedCallbackCreateBulk is the builder for creating many ProcessedCallback entities in bulk.
type ProcessedCallbackCreateBulk struct {
	config
	err      error
	builders []*ProcessedCallbackCreate
}

// Save creates the ProcessedCallback entities in the database.
func (_c *ProcessedCallbackCreateBulk) Save(ctx context.Context) ([]*ProcessedCallback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedCallback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedCallbackMutation)
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
func (_c *ProcessedCallbackCreateBulk) SaveX(ctx context.Context) []*ProcessedCallback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedCallbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedCallbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
