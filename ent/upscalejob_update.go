// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/pixelrelay/upscaled/ent/predicate"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
)

// UpscaleJobUpdate is the builder for updating UpscaleJob entities.
type UpscaleJobUpdate struct {
	config
	hooks    []Hook
	mutation *UpscaleJobMutation
}

// Where appends a list predicates to the UpscaleJobUpdate builder.
func (_u *UpscaleJobUpdate) Where(ps ...predicate.UpscaleJob) *UpscaleJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UpscaleJobUpdate) SetUserID(v string) *UpscaleJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableUserID(v *string) *UpscaleJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInputURL sets the "input_url" field.
func (_u *UpscaleJobUpdate) SetInputURL(v string) *UpscaleJobUpdate {
	_u.mutation.SetInputURL(v)
	return _u
}

// SetNillableInputURL sets the "input_url" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableInputURL(v *string) *UpscaleJobUpdate {
	if v != nil {
		_u.SetInputURL(*v)
	}
	return _u
}

// SetOriginalWidth sets the "original_width" field.
func (_u *UpscaleJobUpdate) SetOriginalWidth(v int) *UpscaleJobUpdate {
	_u.mutation.ResetOriginalWidth()
	_u.mutation.SetOriginalWidth(v)
	return _u
}

// SetNillableOriginalWidth sets the "original_width" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableOriginalWidth(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetOriginalWidth(*v)
	}
	return _u
}

// AddOriginalWidth adds value to the "original_width" field.
func (_u *UpscaleJobUpdate) AddOriginalWidth(v int) *UpscaleJobUpdate {
	_u.mutation.AddOriginalWidth(v)
	return _u
}

// SetOriginalHeight sets the "original_height" field.
func (_u *UpscaleJobUpdate) SetOriginalHeight(v int) *UpscaleJobUpdate {
	_u.mutation.ResetOriginalHeight()
	_u.mutation.SetOriginalHeight(v)
	return _u
}

// SetNillableOriginalHeight sets the "original_height" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableOriginalHeight(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetOriginalHeight(*v)
	}
	return _u
}

// AddOriginalHeight adds value to the "original_height" field.
func (_u *UpscaleJobUpdate) AddOriginalHeight(v int) *UpscaleJobUpdate {
	_u.mutation.AddOriginalHeight(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *UpscaleJobUpdate) SetCategory(v upscalejob.Category) *UpscaleJobUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableCategory(v *upscalejob.Category) *UpscaleJobUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRequestedScale sets the "requested_scale" field.
func (_u *UpscaleJobUpdate) SetRequestedScale(v int) *UpscaleJobUpdate {
	_u.mutation.ResetRequestedScale()
	_u.mutation.SetRequestedScale(v)
	return _u
}

// SetNillableRequestedScale sets the "requested_scale" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableRequestedScale(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetRequestedScale(*v)
	}
	return _u
}

// AddRequestedScale adds value to the "requested_scale" field.
func (_u *UpscaleJobUpdate) AddRequestedScale(v int) *UpscaleJobUpdate {
	_u.mutation.AddRequestedScale(v)
	return _u
}

// SetTargetScale sets the "target_scale" field.
func (_u *UpscaleJobUpdate) SetTargetScale(v int) *UpscaleJobUpdate {
	_u.mutation.ResetTargetScale()
	_u.mutation.SetTargetScale(v)
	return _u
}

// SetNillableTargetScale sets the "target_scale" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableTargetScale(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetTargetScale(*v)
	}
	return _u
}

// AddTargetScale adds value to the "target_scale" field.
func (_u *UpscaleJobUpdate) AddTargetScale(v int) *UpscaleJobUpdate {
	_u.mutation.AddTargetScale(v)
	return _u
}

// SetChain sets the "chain" field.
func (_u *UpscaleJobUpdate) SetChain(v []models.ChainStage) *UpscaleJobUpdate {
	_u.mutation.SetChain(v)
	return _u
}

// AppendChain appends value to the "chain" field.
func (_u *UpscaleJobUpdate) AppendChain(v []models.ChainStage) *UpscaleJobUpdate {
	_u.mutation.AppendChain(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *UpscaleJobUpdate) SetTemplate(v []models.TemplateStage) *UpscaleJobUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// AppendTemplate appends value to the "template" field.
func (_u *UpscaleJobUpdate) AppendTemplate(v []models.TemplateStage) *UpscaleJobUpdate {
	_u.mutation.AppendTemplate(v)
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *UpscaleJobUpdate) ClearTemplate() *UpscaleJobUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// SetGrid sets the "grid" field.
func (_u *UpscaleJobUpdate) SetGrid(v *models.TilingGrid) *UpscaleJobUpdate {
	_u.mutation.SetGrid(v)
	return _u
}

// ClearGrid clears the value of the "grid" field.
func (_u *UpscaleJobUpdate) ClearGrid() *UpscaleJobUpdate {
	_u.mutation.ClearGrid()
	return _u
}

// SetUsingTiling sets the "using_tiling" field.
func (_u *UpscaleJobUpdate) SetUsingTiling(v bool) *UpscaleJobUpdate {
	_u.mutation.SetUsingTiling(v)
	return _u
}

// SetNillableUsingTiling sets the "using_tiling" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableUsingTiling(v *bool) *UpscaleJobUpdate {
	if v != nil {
		_u.SetUsingTiling(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *UpscaleJobUpdate) SetCurrentStage(v int) *UpscaleJobUpdate {
	_u.mutation.ResetCurrentStage()
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableCurrentStage(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// AddCurrentStage adds value to the "current_stage" field.
func (_u *UpscaleJobUpdate) AddCurrentStage(v int) *UpscaleJobUpdate {
	_u.mutation.AddCurrentStage(v)
	return _u
}

// SetTotalStages sets the "total_stages" field.
func (_u *UpscaleJobUpdate) SetTotalStages(v int) *UpscaleJobUpdate {
	_u.mutation.ResetTotalStages()
	_u.mutation.SetTotalStages(v)
	return _u
}

// SetNillableTotalStages sets the "total_stages" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableTotalStages(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetTotalStages(*v)
	}
	return _u
}

// AddTotalStages adds value to the "total_stages" field.
func (_u *UpscaleJobUpdate) AddTotalStages(v int) *UpscaleJobUpdate {
	_u.mutation.AddTotalStages(v)
	return _u
}

// SetPredictionID sets the "prediction_id" field.
func (_u *UpscaleJobUpdate) SetPredictionID(v string) *UpscaleJobUpdate {
	_u.mutation.SetPredictionID(v)
	return _u
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillablePredictionID(v *string) *UpscaleJobUpdate {
	if v != nil {
		_u.SetPredictionID(*v)
	}
	return _u
}

// ClearPredictionID clears the value of the "prediction_id" field.
func (_u *UpscaleJobUpdate) ClearPredictionID() *UpscaleJobUpdate {
	_u.mutation.ClearPredictionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UpscaleJobUpdate) SetStatus(v upscalejob.Status) *UpscaleJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableStatus(v *upscalejob.Status) *UpscaleJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *UpscaleJobUpdate) SetRetryCount(v int) *UpscaleJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableRetryCount(v *int) *UpscaleJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *UpscaleJobUpdate) AddRetryCount(v int) *UpscaleJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastCallbackAt sets the "last_callback_at" field.
func (_u *UpscaleJobUpdate) SetLastCallbackAt(v time.Time) *UpscaleJobUpdate {
	_u.mutation.SetLastCallbackAt(v)
	return _u
}

// SetNillableLastCallbackAt sets the "last_callback_at" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableLastCallbackAt(v *time.Time) *UpscaleJobUpdate {
	if v != nil {
		_u.SetLastCallbackAt(*v)
	}
	return _u
}

// ClearLastCallbackAt clears the value of the "last_callback_at" field.
func (_u *UpscaleJobUpdate) ClearLastCallbackAt() *UpscaleJobUpdate {
	_u.mutation.ClearLastCallbackAt()
	return _u
}

// SetCurrentOutputURL sets the "current_output_url" field.
func (_u *UpscaleJobUpdate) SetCurrentOutputURL(v string) *UpscaleJobUpdate {
	_u.mutation.SetCurrentOutputURL(v)
	return _u
}

// SetNillableCurrentOutputURL sets the "current_output_url" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableCurrentOutputURL(v *string) *UpscaleJobUpdate {
	if v != nil {
		_u.SetCurrentOutputURL(*v)
	}
	return _u
}

// ClearCurrentOutputURL clears the value of the "current_output_url" field.
func (_u *UpscaleJobUpdate) ClearCurrentOutputURL() *UpscaleJobUpdate {
	_u.mutation.ClearCurrentOutputURL()
	return _u
}

// SetFinalOutputURL sets the "final_output_url" field.
func (_u *UpscaleJobUpdate) SetFinalOutputURL(v string) *UpscaleJobUpdate {
	_u.mutation.SetFinalOutputURL(v)
	return _u
}

// SetNillableFinalOutputURL sets the "final_output_url" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableFinalOutputURL(v *string) *UpscaleJobUpdate {
	if v != nil {
		_u.SetFinalOutputURL(*v)
	}
	return _u
}

// ClearFinalOutputURL clears the value of the "final_output_url" field.
func (_u *UpscaleJobUpdate) ClearFinalOutputURL() *UpscaleJobUpdate {
	_u.mutation.ClearFinalOutputURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UpscaleJobUpdate) SetErrorMessage(v string) *UpscaleJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableErrorMessage(v *string) *UpscaleJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UpscaleJobUpdate) ClearErrorMessage() *UpscaleJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UpscaleJobUpdate) SetCompletedAt(v time.Time) *UpscaleJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UpscaleJobUpdate) SetNillableCompletedAt(v *time.Time) *UpscaleJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UpscaleJobUpdate) ClearCompletedAt() *UpscaleJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTileIDs adds the "tiles" edge to the Tile entity by IDs.
func (_u *UpscaleJobUpdate) AddTileIDs(ids ...int) *UpscaleJobUpdate {
	_u.mutation.AddTileIDs(ids...)
	return _u
}

// AddTiles adds the "tiles" edges to the Tile entity.
func (_u *UpscaleJobUpdate) AddTiles(v ...*Tile) *UpscaleJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTileIDs(ids...)
}

// Mutation returns the UpscaleJobMutation object of the builder.
func (_u *UpscaleJobUpdate) Mutation() *UpscaleJobMutation {
	return _u.mutation
}

// ClearTiles clears all "tiles" edges to the Tile entity.
func (_u *UpscaleJobUpdate) ClearTiles() *UpscaleJobUpdate {
	_u.mutation.ClearTiles()
	return _u
}

// RemoveTileIDs removes the "tiles" edge to Tile entities by IDs.
func (_u *UpscaleJobUpdate) RemoveTileIDs(ids ...int) *UpscaleJobUpdate {
	_u.mutation.RemoveTileIDs(ids...)
	return _u
}

// RemoveTiles removes "tiles" edges to Tile entities.
func (_u *UpscaleJobUpdate) RemoveTiles(v ...*Tile) *UpscaleJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UpscaleJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpscaleJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UpscaleJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpscaleJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpscaleJobUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := upscalejob.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "UpscaleJob.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upscalejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UpscaleJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UpscaleJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upscalejob.Table, upscalejob.Columns, sqlgraph.NewFieldSpec(upscalejob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(upscalejob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputURL(); ok {
		_spec.SetField(upscalejob.FieldInputURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalWidth(); ok {
		_spec.SetField(upscalejob.FieldOriginalWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalWidth(); ok {
		_spec.AddField(upscalejob.FieldOriginalWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalHeight(); ok {
		_spec.SetField(upscalejob.FieldOriginalHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalHeight(); ok {
		_spec.AddField(upscalejob.FieldOriginalHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(upscalejob.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedScale(); ok {
		_spec.SetField(upscalejob.FieldRequestedScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedScale(); ok {
		_spec.AddField(upscalejob.FieldRequestedScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetScale(); ok {
		_spec.SetField(upscalejob.FieldTargetScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetScale(); ok {
		_spec.AddField(upscalejob.FieldTargetScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Chain(); ok {
		_spec.SetField(upscalejob.FieldChain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChain(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upscalejob.FieldChain, value)
		})
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(upscalejob.FieldTemplate, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTemplate(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upscalejob.FieldTemplate, value)
		})
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(upscalejob.FieldTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.Grid(); ok {
		_spec.SetField(upscalejob.FieldGrid, field.TypeJSON, value)
	}
	if _u.mutation.GridCleared() {
		_spec.ClearField(upscalejob.FieldGrid, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsingTiling(); ok {
		_spec.SetField(upscalejob.FieldUsingTiling, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(upscalejob.FieldCurrentStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStage(); ok {
		_spec.AddField(upscalejob.FieldCurrentStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStages(); ok {
		_spec.SetField(upscalejob.FieldTotalStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStages(); ok {
		_spec.AddField(upscalejob.FieldTotalStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PredictionID(); ok {
		_spec.SetField(upscalejob.FieldPredictionID, field.TypeString, value)
	}
	if _u.mutation.PredictionIDCleared() {
		_spec.ClearField(upscalejob.FieldPredictionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upscalejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(upscalejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(upscalejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCallbackAt(); ok {
		_spec.SetField(upscalejob.FieldLastCallbackAt, field.TypeTime, value)
	}
	if _u.mutation.LastCallbackAtCleared() {
		_spec.ClearField(upscalejob.FieldLastCallbackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentOutputURL(); ok {
		_spec.SetField(upscalejob.FieldCurrentOutputURL, field.TypeString, value)
	}
	if _u.mutation.CurrentOutputURLCleared() {
		_spec.ClearField(upscalejob.FieldCurrentOutputURL, field.TypeString)
	}
	if value, ok := _u.mutation.FinalOutputURL(); ok {
		_spec.SetField(upscalejob.FieldFinalOutputURL, field.TypeString, value)
	}
	if _u.mutation.FinalOutputURLCleared() {
		_spec.ClearField(upscalejob.FieldFinalOutputURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(upscalejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(upscalejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(upscalejob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(upscalejob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTilesIDs(); len(nodes) > 0 && !_u.mutation.TilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upscalejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UpscaleJobUpdateOne is the builder for updating a single UpscaleJob entity.
type UpscaleJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UpscaleJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *UpscaleJobUpdateOne) SetUserID(v string) *UpscaleJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableUserID(v *string) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInputURL sets the "input_url" field.
func (_u *UpscaleJobUpdateOne) SetInputURL(v string) *UpscaleJobUpdateOne {
	_u.mutation.SetInputURL(v)
	return _u
}

// SetNillableInputURL sets the "input_url" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableInputURL(v *string) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetInputURL(*v)
	}
	return _u
}

// SetOriginalWidth sets the "original_width" field.
func (_u *UpscaleJobUpdateOne) SetOriginalWidth(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetOriginalWidth()
	_u.mutation.SetOriginalWidth(v)
	return _u
}

// SetNillableOriginalWidth sets the "original_width" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableOriginalWidth(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetOriginalWidth(*v)
	}
	return _u
}

// AddOriginalWidth adds value to the "original_width" field.
func (_u *UpscaleJobUpdateOne) AddOriginalWidth(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddOriginalWidth(v)
	return _u
}

// SetOriginalHeight sets the "original_height" field.
func (_u *UpscaleJobUpdateOne) SetOriginalHeight(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetOriginalHeight()
	_u.mutation.SetOriginalHeight(v)
	return _u
}

// SetNillableOriginalHeight sets the "original_height" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableOriginalHeight(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetOriginalHeight(*v)
	}
	return _u
}

// AddOriginalHeight adds value to the "original_height" field.
func (_u *UpscaleJobUpdateOne) AddOriginalHeight(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddOriginalHeight(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *UpscaleJobUpdateOne) SetCategory(v upscalejob.Category) *UpscaleJobUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableCategory(v *upscalejob.Category) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRequestedScale sets the "requested_scale" field.
func (_u *UpscaleJobUpdateOne) SetRequestedScale(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetRequestedScale()
	_u.mutation.SetRequestedScale(v)
	return _u
}

// SetNillableRequestedScale sets the "requested_scale" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableRequestedScale(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetRequestedScale(*v)
	}
	return _u
}

// AddRequestedScale adds value to the "requested_scale" field.
func (_u *UpscaleJobUpdateOne) AddRequestedScale(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddRequestedScale(v)
	return _u
}

// SetTargetScale sets the "target_scale" field.
func (_u *UpscaleJobUpdateOne) SetTargetScale(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetTargetScale()
	_u.mutation.SetTargetScale(v)
	return _u
}

// SetNillableTargetScale sets the "target_scale" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableTargetScale(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetTargetScale(*v)
	}
	return _u
}

// AddTargetScale adds value to the "target_scale" field.
func (_u *UpscaleJobUpdateOne) AddTargetScale(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddTargetScale(v)
	return _u
}

// SetChain sets the "chain" field.
func (_u *UpscaleJobUpdateOne) SetChain(v []models.ChainStage) *UpscaleJobUpdateOne {
	_u.mutation.SetChain(v)
	return _u
}

// AppendChain appends value to the "chain" field.
func (_u *UpscaleJobUpdateOne) AppendChain(v []models.ChainStage) *UpscaleJobUpdateOne {
	_u.mutation.AppendChain(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *UpscaleJobUpdateOne) SetTemplate(v []models.TemplateStage) *UpscaleJobUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// AppendTemplate appends value to the "template" field.
func (_u *UpscaleJobUpdateOne) AppendTemplate(v []models.TemplateStage) *UpscaleJobUpdateOne {
	_u.mutation.AppendTemplate(v)
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *UpscaleJobUpdateOne) ClearTemplate() *UpscaleJobUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// SetGrid sets the "grid" field.
func (_u *UpscaleJobUpdateOne) SetGrid(v *models.TilingGrid) *UpscaleJobUpdateOne {
	_u.mutation.SetGrid(v)
	return _u
}

// ClearGrid clears the value of the "grid" field.
func (_u *UpscaleJobUpdateOne) ClearGrid() *UpscaleJobUpdateOne {
	_u.mutation.ClearGrid()
	return _u
}

// SetUsingTiling sets the "using_tiling" field.
func (_u *UpscaleJobUpdateOne) SetUsingTiling(v bool) *UpscaleJobUpdateOne {
	_u.mutation.SetUsingTiling(v)
	return _u
}

// SetNillableUsingTiling sets the "using_tiling" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableUsingTiling(v *bool) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetUsingTiling(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *UpscaleJobUpdateOne) SetCurrentStage(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetCurrentStage()
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableCurrentStage(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// AddCurrentStage adds value to the "current_stage" field.
func (_u *UpscaleJobUpdateOne) AddCurrentStage(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddCurrentStage(v)
	return _u
}

// SetTotalStages sets the "total_stages" field.
func (_u *UpscaleJobUpdateOne) SetTotalStages(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetTotalStages()
	_u.mutation.SetTotalStages(v)
	return _u
}

// SetNillableTotalStages sets the "total_stages" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableTotalStages(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetTotalStages(*v)
	}
	return _u
}

// AddTotalStages adds value to the "total_stages" field.
func (_u *UpscaleJobUpdateOne) AddTotalStages(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddTotalStages(v)
	return _u
}

// SetPredictionID sets the "prediction_id" field.
func (_u *UpscaleJobUpdateOne) SetPredictionID(v string) *UpscaleJobUpdateOne {
	_u.mutation.SetPredictionID(v)
	return _u
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillablePredictionID(v *string) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetPredictionID(*v)
	}
	return _u
}

// ClearPredictionID clears the value of the "prediction_id" field.
func (_u *UpscaleJobUpdateOne) ClearPredictionID() *UpscaleJobUpdateOne {
	_u.mutation.ClearPredictionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UpscaleJobUpdateOne) SetStatus(v upscalejob.Status) *UpscaleJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableStatus(v *upscalejob.Status) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *UpscaleJobUpdateOne) SetRetryCount(v int) *UpscaleJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableRetryCount(v *int) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *UpscaleJobUpdateOne) AddRetryCount(v int) *UpscaleJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastCallbackAt sets the "last_callback_at" field.
func (_u *UpscaleJobUpdateOne) SetLastCallbackAt(v time.Time) *UpscaleJobUpdateOne {
	_u.mutation.SetLastCallbackAt(v)
	return _u
}

// SetNillableLastCallbackAt sets the "last_callback_at" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableLastCallbackAt(v *time.Time) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetLastCallbackAt(*v)
	}
	return _u
}

// ClearLastCallbackAt clears the value of the "last_callback_at" field.
func (_u *UpscaleJobUpdateOne) ClearLastCallbackAt() *UpscaleJobUpdateOne {
	_u.mutation.ClearLastCallbackAt()
	return _u
}

// SetCurrentOutputURL sets the "current_output_url" field.
func (_u *UpscaleJobUpdateOne) SetCurrentOutputURL(v string) *UpscaleJobUpdateOne {
	_u.mutation.SetCurrentOutputURL(v)
	return _u
}

// SetNillableCurrentOutputURL sets the "current_output_url" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableCurrentOutputURL(v *string) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetCurrentOutputURL(*v)
	}
	return _u
}

// ClearCurrentOutputURL clears the value of the "current_output_url" field.
func (_u *UpscaleJobUpdateOne) ClearCurrentOutputURL() *UpscaleJobUpdateOne {
	_u.mutation.ClearCurrentOutputURL()
	return _u
}

// SetFinalOutputURL sets the "final_output_url" field.
func (_u *UpscaleJobUpdateOne) SetFinalOutputURL(v string) *UpscaleJobUpdateOne {
	_u.mutation.SetFinalOutputURL(v)
	return _u
}

// SetNillableFinalOutputURL sets the "final_output_url" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableFinalOutputURL(v *string) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetFinalOutputURL(*v)
	}
	return _u
}

// ClearFinalOutputURL clears the value of the "final_output_url" field.
func (_u *UpscaleJobUpdateOne) ClearFinalOutputURL() *UpscaleJobUpdateOne {
	_u.mutation.ClearFinalOutputURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UpscaleJobUpdateOne) SetErrorMessage(v string) *UpscaleJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableErrorMessage(v *string) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UpscaleJobUpdateOne) ClearErrorMessage() *UpscaleJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UpscaleJobUpdateOne) SetCompletedAt(v time.Time) *UpscaleJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UpscaleJobUpdateOne) SetNillableCompletedAt(v *time.Time) *UpscaleJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UpscaleJobUpdateOne) ClearCompletedAt() *UpscaleJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTileIDs adds the "tiles" edge to the Tile entity by IDs.
func (_u *UpscaleJobUpdateOne) AddTileIDs(ids ...int) *UpscaleJobUpdateOne {
	_u.mutation.AddTileIDs(ids...)
	return _u
}

// AddTiles adds the "tiles" edges to the Tile entity.
func (_u *UpscaleJobUpdateOne) AddTiles(v ...*Tile) *UpscaleJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTileIDs(ids...)
}

// Mutation returns the UpscaleJobMutation object of the builder.
func (_u *UpscaleJobUpdateOne) Mutation() *UpscaleJobMutation {
	return _u.mutation
}

// ClearTiles clears all "tiles" edges to the Tile entity.
func (_u *UpscaleJobUpdateOne) ClearTiles() *UpscaleJobUpdateOne {
	_u.mutation.ClearTiles()
	return _u
}

// RemoveTileIDs removes the "tiles" edge to Tile entities by IDs.
func (_u *UpscaleJobUpdateOne) RemoveTileIDs(ids ...int) *UpscaleJobUpdateOne {
	_u.mutation.RemoveTileIDs(ids...)
	return _u
}

// RemoveTiles removes "tiles" edges to Tile entities.
func (_u *UpscaleJobUpdateOne) RemoveTiles(v ...*Tile) *UpscaleJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTileIDs(ids...)
}

// Where appends a list predicates to the UpscaleJobUpdate builder.
func (_u *UpscaleJobUpdateOne) Where(ps ...predicate.UpscaleJob) *UpscaleJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UpscaleJobUpdateOne) Select(field string, fields ...string) *UpscaleJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UpscaleJob entity.
func (_u *UpscaleJobUpdateOne) Save(ctx context.Context) (*UpscaleJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpscaleJobUpdateOne) SaveX(ctx context.Context) *UpscaleJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UpscaleJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpscaleJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpscaleJobUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := upscalejob.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "UpscaleJob.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upscalejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UpscaleJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UpscaleJobUpdateOne) sqlSave(ctx context.Context) (_node *UpscaleJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upscalejob.Table, upscalejob.Columns, sqlgraph.NewFieldSpec(upscalejob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UpscaleJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upscalejob.FieldID)
		for _, f := range fields {
			if !upscalejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upscalejob.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(upscalejob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputURL(); ok {
		_spec.SetField(upscalejob.FieldInputURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalWidth(); ok {
		_spec.SetField(upscalejob.FieldOriginalWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalWidth(); ok {
		_spec.AddField(upscalejob.FieldOriginalWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalHeight(); ok {
		_spec.SetField(upscalejob.FieldOriginalHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalHeight(); ok {
		_spec.AddField(upscalejob.FieldOriginalHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(upscalejob.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestedScale(); ok {
		_spec.SetField(upscalejob.FieldRequestedScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedScale(); ok {
		_spec.AddField(upscalejob.FieldRequestedScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetScale(); ok {
		_spec.SetField(upscalejob.FieldTargetScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetScale(); ok {
		_spec.AddField(upscalejob.FieldTargetScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Chain(); ok {
		_spec.SetField(upscalejob.FieldChain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChain(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upscalejob.FieldChain, value)
		})
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(upscalejob.FieldTemplate, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTemplate(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upscalejob.FieldTemplate, value)
		})
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(upscalejob.FieldTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.Grid(); ok {
		_spec.SetField(upscalejob.FieldGrid, field.TypeJSON, value)
	}
	if _u.mutation.GridCleared() {
		_spec.ClearField(upscalejob.FieldGrid, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsingTiling(); ok {
		_spec.SetField(upscalejob.FieldUsingTiling, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(upscalejob.FieldCurrentStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStage(); ok {
		_spec.AddField(upscalejob.FieldCurrentStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalStages(); ok {
		_spec.SetField(upscalejob.FieldTotalStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalStages(); ok {
		_spec.AddField(upscalejob.FieldTotalStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PredictionID(); ok {
		_spec.SetField(upscalejob.FieldPredictionID, field.TypeString, value)
	}
	if _u.mutation.PredictionIDCleared() {
		_spec.ClearField(upscalejob.FieldPredictionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upscalejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(upscalejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(upscalejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCallbackAt(); ok {
		_spec.SetField(upscalejob.FieldLastCallbackAt, field.TypeTime, value)
	}
	if _u.mutation.LastCallbackAtCleared() {
		_spec.ClearField(upscalejob.FieldLastCallbackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentOutputURL(); ok {
		_spec.SetField(upscalejob.FieldCurrentOutputURL, field.TypeString, value)
	}
	if _u.mutation.CurrentOutputURLCleared() {
		_spec.ClearField(upscalejob.FieldCurrentOutputURL, field.TypeString)
	}
	if value, ok := _u.mutation.FinalOutputURL(); ok {
		_spec.SetField(upscalejob.FieldFinalOutputURL, field.TypeString, value)
	}
	if _u.mutation.FinalOutputURLCleared() {
		_spec.ClearField(upscalejob.FieldFinalOutputURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(upscalejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(upscalejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(upscalejob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(upscalejob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTilesIDs(); len(nodes) > 0 && !_u.mutation.TilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UpscaleJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upscalejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
