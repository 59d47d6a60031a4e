// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
)

// TileCreate is the builder for creating a Tile entity.
type TileCreate struct {
	config
	mutation *TileMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *TileCreate) SetJobID(v string) *TileCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetTileIndex sets the "tile_index" field.
func (_c *TileCreate) SetTileIndex(v int) *TileCreate {
	_c.mutation.SetTileIndex(v)
	return _c
}

// SetX sets the "x" field.
func (_c *TileCreate) SetX(v int) *TileCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetY sets the "y" field.
func (_c *TileCreate) SetY(v int) *TileCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetWidth sets the "width" field.
func (_c *TileCreate) SetWidth(v int) *TileCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *TileCreate) SetHeight(v int) *TileCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetInputURL sets the "input_url" field.
func (_c *TileCreate) SetInputURL(v string) *TileCreate {
	_c.mutation.SetInputURL(v)
	return _c
}

// SetStages sets the "stages" field.
func (_c *TileCreate) SetStages(v []models.StageSlot) *TileCreate {
	_c.mutation.SetStages(v)
	return _c
}

// SetCurrentPredictionID sets the "current_prediction_id" field.
func (_c *TileCreate) SetCurrentPredictionID(v string) *TileCreate {
	_c.mutation.SetCurrentPredictionID(v)
	return _c
}

// SetNillableCurrentPredictionID sets the "current_prediction_id" field if the given value is not nil.
func (_c *TileCreate) SetNillableCurrentPredictionID(v *string) *TileCreate {
	if v != nil {
		_c.SetCurrentPredictionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TileCreate) SetStatus(v string) *TileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TileCreate) SetNillableStatus(v *string) *TileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParentTileIndex sets the "parent_tile_index" field.
func (_c *TileCreate) SetParentTileIndex(v int) *TileCreate {
	_c.mutation.SetParentTileIndex(v)
	return _c
}

// SetNillableParentTileIndex sets the "parent_tile_index" field if the given value is not nil.
func (_c *TileCreate) SetNillableParentTileIndex(v *int) *TileCreate {
	if v != nil {
		_c.SetParentTileIndex(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TileCreate) SetErrorMessage(v string) *TileCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TileCreate) SetNillableErrorMessage(v *string) *TileCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TileCreate) SetCreatedAt(v time.Time) *TileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TileCreate) SetNillableCreatedAt(v *time.Time) *TileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TileCreate) SetUpdatedAt(v time.Time) *TileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TileCreate) SetNillableUpdatedAt(v *time.Time) *TileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the UpscaleJob entity.
func (_c *TileCreate) SetJob(v *UpscaleJob) *TileCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the TileMutation object of the builder.
func (_c *TileCreate) Mutation() *TileMutation {
	return _c.mutation
}

// Save creates the Tile in the database.
func (_c *TileCreate) Save(ctx context.Context) (*Tile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TileCreate) SaveX(ctx context.Context) *Tile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TileCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := tile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TileCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Tile.job_id"`)}
	}
	if _, ok := _c.mutation.TileIndex(); !ok {
		return &ValidationError{Name: "tile_index", err: errors.New(`ent: missing required field "Tile.tile_index"`)}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "Tile.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "Tile.y"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "Tile.width"`)}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "Tile.height"`)}
	}
	if _, ok := _c.mutation.InputURL(); !ok {
		return &ValidationError{Name: "input_url", err: errors.New(`ent: missing required field "Tile.input_url"`)}
	}
	if _, ok := _c.mutation.Stages(); !ok {
		return &ValidationError{Name: "stages", err: errors.New(`ent: missing required field "Tile.stages"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Tile.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tile.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Tile.job"`)}
	}
	return nil
}

func (_c *TileCreate) sqlSave(ctx context.Context) (*Tile, error) {
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

func (_c *TileCreate) createSpec() (*Tile, *sqlgraph.CreateSpec) {
	var (
		_node = &Tile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tile.Table, sqlgraph.NewFieldSpec(tile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TileIndex(); ok {
		_spec.SetField(tile.FieldTileIndex, field.TypeInt, value)
		_node.TileIndex = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(tile.FieldX, field.TypeInt, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(tile.FieldY, field.TypeInt, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(tile.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(tile.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.InputURL(); ok {
		_spec.SetField(tile.FieldInputURL, field.TypeString, value)
		_node.InputURL = value
	}
	if value, ok := _c.mutation.Stages(); ok {
		_spec.SetField(tile.FieldStages, field.TypeJSON, value)
		_node.Stages = value
	}
	if value, ok := _c.mutation.CurrentPredictionID(); ok {
		_spec.SetField(tile.FieldCurrentPredictionID, field.TypeString, value)
		_node.CurrentPredictionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParentTileIndex(); ok {
		_spec.SetField(tile.FieldParentTileIndex, field.TypeInt, value)
		_node.ParentTileIndex = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(tile.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tile.JobTable,
			Columns: []string{tile.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upscalejob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TileCreateBulk is the builder for creating many Tile entities in bulk.
type TileCreateBulk struct {
	config
	err      error
	builders []*TileCreate
}

// Save creates the Tile entities in the database.
func (_c *TileCreateBulk) Save(ctx context.Context) ([]*Tile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TileMutation)
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
func (_c *TileCreateBulk) SaveX(ctx context.Context) []*Tile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
