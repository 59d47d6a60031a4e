// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pixelrelay/upscaled/ent/predicate"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
)

// ProcessedCallbackUpdate is the builder for updating ProcessedCallback entities.
type ProcessedCallbackUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedCallbackMutation
}

// Where appends a list predicates to the ProcessedCallbackUpdate builder.
func (_u *ProcessedCallbackUpdate) Where(ps ...predicate.ProcessedCallback) *ProcessedCallbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ProcessedCallbackUpdate) SetJobID(v string) *ProcessedCallbackUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ProcessedCallbackUpdate) SetNillableJobID(v *string) *ProcessedCallbackUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ProcessedCallbackUpdate) ClearJobID() *ProcessedCallbackUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProcessedCallbackUpdate) SetOutcome(v string) *ProcessedCallbackUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProcessedCallbackUpdate) SetNillableOutcome(v *string) *ProcessedCallbackUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the ProcessedCallbackMutation object of the builder.
func (_u *ProcessedCallbackUpdate) Mutation() *ProcessedCallbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedCallbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedCallbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedCallbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedCallbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessedCallbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processedcallback.Table, processedcallback.Columns, sqlgraph.NewFieldSpec(processedcallback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(processedcallback.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(processedcallback.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(processedcallback.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedcallback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedCallbackUpdateOne is the builder for updating a single ProcessedCallback entity.
type ProcessedCallbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedCallbackMutation
}

// SetJobID sets the "job_id" field.
func (_u *ProcessedCallbackUpdateOne) SetJobID(v string) *ProcessedCallbackUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ProcessedCallbackUpdateOne) SetNillableJobID(v *string) *ProcessedCallbackUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ProcessedCallbackUpdateOne) ClearJobID() *ProcessedCallbackUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProcessedCallbackUpdateOne) SetOutcome(v string) *ProcessedCallbackUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProcessedCallbackUpdateOne) SetNillableOutcome(v *string) *ProcessedCallbackUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the ProcessedCallbackMutation object of the builder.
func (_u *ProcessedCallbackUpdateOne) Mutation() *ProcessedCallbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessedCallbackUpdate builder.
func (_u *ProcessedCallbackUpdateOne) Where(ps ...predicate.ProcessedCallback) *ProcessedCallbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedCallbackUpdateOne) Select(field string, fields ...string) *ProcessedCallbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedCallback entity.
func (_u *ProcessedCallbackUpdateOne) Save(ctx context.Context) (*ProcessedCallback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedCallbackUpdateOne) SaveX(ctx context.Context) *ProcessedCallback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedCallbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedCallbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessedCallbackUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedCallback, err error) {
	_spec := sqlgraph.NewUpdateSpec(processedcallback.Table, processedcallback.Columns, sqlgraph.NewFieldSpec(processedcallback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedCallback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedcallback.FieldID)
		for _, f := range fields {
			if !processedcallback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processedcallback.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(processedcallback.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(processedcallback.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(processedcallback.FieldOutcome, field.TypeString, value)
	}
	_node = &ProcessedCallback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedcallback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
