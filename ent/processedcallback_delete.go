// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pixelrelay/upscaled/ent/predicate"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
)

// ProcessedCallbackDelete is the builder for deleting a ProcessedCallback entity.
type ProcessedCallbackDelete struct {
	config
	hooks    []Hook
	mutation *ProcessedCallbackMutation
}

// Where appends a list predicates to the ProcessedCallbackDelete builder.
func (_d *ProcessedCallbackDelete) Where(ps ...predicate.ProcessedCallback) *ProcessedCallbackDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessedCallbackDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessedCallbackDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessedCallbackDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processedcallback.Table, sqlgraph.NewFieldSpec(processedcallback.FieldID, field.TypeString))
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

// ProcessedCallbackDeleteOne is the builder for deleting a single ProcessedCallback entity.
type ProcessedCallbackDeleteOne struct {
	_d *ProcessedCallbackDelete
}

// Where appends a list predicates to the ProcessedCallbackDelete builder.
func (_d *ProcessedCallbackDeleteOne) Where(ps ...predicate.ProcessedCallback) *ProcessedCallbackDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessedCallbackDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processedcallback.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessedCallbackDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
