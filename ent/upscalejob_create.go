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

// UpscaleJobCreate is the builder for creating a UpscaleJob entity.
type UpscaleJobCreate struct {
	config
	mutation *UpscaleJobMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UpscaleJobCreate) SetUserID(v string) *UpscaleJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInputURL sets the "input_url" field.
func (_c *UpscaleJobCreate) SetInputURL(v string) *UpscaleJobCreate {
	_c.mutation.SetInputURL(v)
	return _c
}

// SetOriginalWidth sets the "original_width" field.
func (_c *UpscaleJobCreate) SetOriginalWidth(v int) *UpscaleJobCreate {
	_c.mutation.SetOriginalWidth(v)
	return _c
}

// SetOriginalHeight sets the "original_height" field.
func (_c *UpscaleJobCreate) SetOriginalHeight(v int) *UpscaleJobCreate {
	_c.mutation.SetOriginalHeight(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *UpscaleJobCreate) SetCategory(v upscalejob.Category) *UpscaleJobCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableCategory(v *upscalejob.Category) *UpscaleJobCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetRequestedScale sets the "requested_scale" field.
func (_c *UpscaleJobCreate) SetRequestedScale(v int) *UpscaleJobCreate {
	_c.mutation.SetRequestedScale(v)
	return _c
}

// SetTargetScale sets the "target_scale" field.
func (_c *UpscaleJobCreate) SetTargetScale(v int) *UpscaleJobCreate {
	_c.mutation.SetTargetScale(v)
	return _c
}

// SetChain sets the "chain" field.
func (_c *UpscaleJobCreate) SetChain(v []models.ChainStage) *UpscaleJobCreate {
	_c.mutation.SetChain(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *UpscaleJobCreate) SetTemplate(v []models.TemplateStage) *UpscaleJobCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetGrid sets the "grid" field.
func (_c *UpscaleJobCreate) SetGrid(v *models.TilingGrid) *UpscaleJobCreate {
	_c.mutation.SetGrid(v)
	return _c
}

// SetUsingTiling sets the "using_tiling" field.
func (_c *UpscaleJobCreate) SetUsingTiling(v bool) *UpscaleJobCreate {
	_c.mutation.SetUsingTiling(v)
	return _c
}

// SetNillableUsingTiling sets the "using_tiling" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableUsingTiling(v *bool) *UpscaleJobCreate {
	if v != nil {
		_c.SetUsingTiling(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *UpscaleJobCreate) SetCurrentStage(v int) *UpscaleJobCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableCurrentStage(v *int) *UpscaleJobCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetTotalStages sets the "total_stages" field.
func (_c *UpscaleJobCreate) SetTotalStages(v int) *UpscaleJobCreate {
	_c.mutation.SetTotalStages(v)
	return _c
}

// SetPredictionID sets the "prediction_id" field.
func (_c *UpscaleJobCreate) SetPredictionID(v string) *UpscaleJobCreate {
	_c.mutation.SetPredictionID(v)
	return _c
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillablePredictionID(v *string) *UpscaleJobCreate {
	if v != nil {
		_c.SetPredictionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UpscaleJobCreate) SetStatus(v upscalejob.Status) *UpscaleJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableStatus(v *upscalejob.Status) *UpscaleJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *UpscaleJobCreate) SetRetryCount(v int) *UpscaleJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableRetryCount(v *int) *UpscaleJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastCallbackAt sets the "last_callback_at" field.
func (_c *UpscaleJobCreate) SetLastCallbackAt(v time.Time) *UpscaleJobCreate {
	_c.mutation.SetLastCallbackAt(v)
	return _c
}

// SetNillableLastCallbackAt sets the "last_callback_at" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableLastCallbackAt(v *time.Time) *UpscaleJobCreate {
	if v != nil {
		_c.SetLastCallbackAt(*v)
	}
	return _c
}

// SetCurrentOutputURL sets the "current_output_url" field.
func (_c *UpscaleJobCreate) SetCurrentOutputURL(v string) *UpscaleJobCreate {
	_c.mutation.SetCurrentOutputURL(v)
	return _c
}

// SetNillableCurrentOutputURL sets the "current_output_url" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableCurrentOutputURL(v *string) *UpscaleJobCreate {
	if v != nil {
		_c.SetCurrentOutputURL(*v)
	}
	return _c
}

// SetFinalOutputURL sets the "final_output_url" field.
func (_c *UpscaleJobCreate) SetFinalOutputURL(v string) *UpscaleJobCreate {
	_c.mutation.SetFinalOutputURL(v)
	return _c
}

// SetNillableFinalOutputURL sets the "final_output_url" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableFinalOutputURL(v *string) *UpscaleJobCreate {
	if v != nil {
		_c.SetFinalOutputURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *UpscaleJobCreate) SetErrorMessage(v string) *UpscaleJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableErrorMessage(v *string) *UpscaleJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UpscaleJobCreate) SetCreatedAt(v time.Time) *UpscaleJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableCreatedAt(v *time.Time) *UpscaleJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *UpscaleJobCreate) SetCompletedAt(v time.Time) *UpscaleJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *UpscaleJobCreate) SetNillableCompletedAt(v *time.Time) *UpscaleJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UpscaleJobCreate) SetID(v string) *UpscaleJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTileIDs adds the "tiles" edge to the Tile entity by IDs.
func (_c *UpscaleJobCreate) AddTileIDs(ids ...int) *UpscaleJobCreate {
	_c.mutation.AddTileIDs(ids...)
	return _c
}

// AddTiles adds the "tiles" edges to the Tile entity.
func (_c *UpscaleJobCreate) AddTiles(v ...*Tile) *UpscaleJobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTileIDs(ids...)
}

// Mutation returns the UpscaleJobMutation object of the builder.
func (_c *UpscaleJobCreate) Mutation() *UpscaleJobMutation {
	return _c.mutation
}

// Save creates the UpscaleJob in the database.
func (_c *UpscaleJobCreate) Save(ctx context.Context) (*UpscaleJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UpscaleJobCreate) SaveX(ctx context.Context) *UpscaleJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpscaleJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpscaleJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UpscaleJobCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := upscalejob.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.UsingTiling(); !ok {
		v := upscalejob.DefaultUsingTiling
		_c.mutation.SetUsingTiling(v)
	}
	if _, ok := _c.mutation.CurrentStage(); !ok {
		v := upscalejob.DefaultCurrentStage
		_c.mutation.SetCurrentStage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := upscalejob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := upscalejob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upscalejob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UpscaleJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UpscaleJob.user_id"`)}
	}
	if _, ok := _c.mutation.InputURL(); !ok {
		return &ValidationError{Name: "input_url", err: errors.New(`ent: missing required field "UpscaleJob.input_url"`)}
	}
	if _, ok := _c.mutation.OriginalWidth(); !ok {
		return &ValidationError{Name: "original_width", err: errors.New(`ent: missing required field "UpscaleJob.original_width"`)}
	}
	if _, ok := _c.mutation.OriginalHeight(); !ok {
		return &ValidationError{Name: "original_height", err: errors.New(`ent: missing required field "UpscaleJob.original_height"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "UpscaleJob.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := upscalejob.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "UpscaleJob.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedScale(); !ok {
		return &ValidationError{Name: "requested_scale", err: errors.New(`ent: missing required field "UpscaleJob.requested_scale"`)}
	}
	if _, ok := _c.mutation.TargetScale(); !ok {
		return &ValidationError{Name: "target_scale", err: errors.New(`ent: missing required field "UpscaleJob.target_scale"`)}
	}
	if _, ok := _c.mutation.Chain(); !ok {
		return &ValidationError{Name: "chain", err: errors.New(`ent: missing required field "UpscaleJob.chain"`)}
	}
	if _, ok := _c.mutation.UsingTiling(); !ok {
		return &ValidationError{Name: "using_tiling", err: errors.New(`ent: missing required field "UpscaleJob.using_tiling"`)}
	}
	if _, ok := _c.mutation.CurrentStage(); !ok {
		return &ValidationError{Name: "current_stage", err: errors.New(`ent: missing required field "UpscaleJob.current_stage"`)}
	}
	if _, ok := _c.mutation.TotalStages(); !ok {
		return &ValidationError{Name: "total_stages", err: errors.New(`ent: missing required field "UpscaleJob.total_stages"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UpscaleJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := upscalejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UpscaleJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "UpscaleJob.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UpscaleJob.created_at"`)}
	}
	return nil
}

func (_c *UpscaleJobCreate) sqlSave(ctx context.Context) (*UpscaleJob, error) {
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
			return nil, fmt.Errorf("unexpected UpscaleJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UpscaleJobCreate) createSpec() (*UpscaleJob, *sqlgraph.CreateSpec) {
	var (
		_node = &UpscaleJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upscalejob.Table, sqlgraph.NewFieldSpec(upscalejob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(upscalejob.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.InputURL(); ok {
		_spec.SetField(upscalejob.FieldInputURL, field.TypeString, value)
		_node.InputURL = value
	}
	if value, ok := _c.mutation.OriginalWidth(); ok {
		_spec.SetField(upscalejob.FieldOriginalWidth, field.TypeInt, value)
		_node.OriginalWidth = value
	}
	if value, ok := _c.mutation.OriginalHeight(); ok {
		_spec.SetField(upscalejob.FieldOriginalHeight, field.TypeInt, value)
		_node.OriginalHeight = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(upscalejob.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.RequestedScale(); ok {
		_spec.SetField(upscalejob.FieldRequestedScale, field.TypeInt, value)
		_node.RequestedScale = value
	}
	if value, ok := _c.mutation.TargetScale(); ok {
		_spec.SetField(upscalejob.FieldTargetScale, field.TypeInt, value)
		_node.TargetScale = value
	}
	if value, ok := _c.mutation.Chain(); ok {
		_spec.SetField(upscalejob.FieldChain, field.TypeJSON, value)
		_node.Chain = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(upscalejob.FieldTemplate, field.TypeJSON, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.Grid(); ok {
		_spec.SetField(upscalejob.FieldGrid, field.TypeJSON, value)
		_node.Grid = value
	}
	if value, ok := _c.mutation.UsingTiling(); ok {
		_spec.SetField(upscalejob.FieldUsingTiling, field.TypeBool, value)
		_node.UsingTiling = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(upscalejob.FieldCurrentStage, field.TypeInt, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.TotalStages(); ok {
		_spec.SetField(upscalejob.FieldTotalStages, field.TypeInt, value)
		_node.TotalStages = value
	}
	if value, ok := _c.mutation.PredictionID(); ok {
		_spec.SetField(upscalejob.FieldPredictionID, field.TypeString, value)
		_node.PredictionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(upscalejob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(upscalejob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastCallbackAt(); ok {
		_spec.SetField(upscalejob.FieldLastCallbackAt, field.TypeTime, value)
		_node.LastCallbackAt = &value
	}
	if value, ok := _c.mutation.CurrentOutputURL(); ok {
		_spec.SetField(upscalejob.FieldCurrentOutputURL, field.TypeString, value)
		_node.CurrentOutputURL = &value
	}
	if value, ok := _c.mutation.FinalOutputURL(); ok {
		_spec.SetField(upscalejob.FieldFinalOutputURL, field.TypeString, value)
		_node.FinalOutputURL = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(upscalejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upscalejob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(upscalejob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upscalejob.TilesTable,
			Columns: []string{upscalejob.TilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UpscaleJobCreateBulk is the builder for creating many UpscaleJob entities in bulk.
type UpscaleJobCreateBulk struct {
	config
	err      error
	builders []*UpscaleJobCreate
}

// Save creates the UpscaleJob entities in the database.
func (_c *UpscaleJobCreateBulk) Save(ctx context.Context) ([]*UpscaleJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UpscaleJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UpscaleJobMutation)
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
func (_c *UpscaleJobCreateBulk) SaveX(ctx context.Context) []*UpscaleJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpscaleJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpscaleJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
