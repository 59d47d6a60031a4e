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
	"github.com/pixelrelay/upscaled/pkg/models"
)

// TileUpdate is the builder for updating Tile entities.
type TileUpdate struct {
	config
	hooks    []Hook
	mutation *TileMutation
}

// Where appends a list predicates to the TileUpdate builder.
func (_u *TileUpdate) Where(ps ...predicate.Tile) *TileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetX sets the "x" field.
func (_u *TileUpdate) SetX(v int) *TileUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *TileUpdate) SetNillableX(v *int) *TileUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *TileUpdate) AddX(v int) *TileUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *TileUpdate) SetY(v int) *TileUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *TileUpdate) SetNillableY(v *int) *TileUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *TileUpdate) AddY(v int) *TileUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *TileUpdate) SetWidth(v int) *TileUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *TileUpdate) SetNillableWidth(v *int) *TileUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *TileUpdate) AddWidth(v int) *TileUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *TileUpdate) SetHeight(v int) *TileUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *TileUpdate) SetNillableHeight(v *int) *TileUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *TileUpdate) AddHeight(v int) *TileUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetInputURL sets the "input_url" field.
func (_u *TileUpdate) SetInputURL(v string) *TileUpdate {
	_u.mutation.SetInputURL(v)
	return _u
}

// SetNillableInputURL sets the "input_url" field if the given value is not nil.
func (_u *TileUpdate) SetNillableInputURL(v *string) *TileUpdate {
	if v != nil {
		_u.SetInputURL(*v)
	}
	return _u
}

// SetStages sets the "stages" field.
func (_u *TileUpdate) SetStages(v []models.StageSlot) *TileUpdate {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *TileUpdate) AppendStages(v []models.StageSlot) *TileUpdate {
	_u.mutation.AppendStages(v)
	return _u
}

// SetCurrentPredictionID sets the "current_prediction_id" field.
func (_u *TileUpdate) SetCurrentPredictionID(v string) *TileUpdate {
	_u.mutation.SetCurrentPredictionID(v)
	return _u
}

// SetNillableCurrentPredictionID sets the "current_prediction_id" field if the given value is not nil.
func (_u *TileUpdate) SetNillableCurrentPredictionID(v *string) *TileUpdate {
	if v != nil {
		_u.SetCurrentPredictionID(*v)
	}
	return _u
}

// ClearCurrentPredictionID clears the value of the "current_prediction_id" field.
func (_u *TileUpdate) ClearCurrentPredictionID() *TileUpdate {
	_u.mutation.ClearCurrentPredictionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TileUpdate) SetStatus(v string) *TileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TileUpdate) SetNillableStatus(v *string) *TileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParentTileIndex sets the "parent_tile_index" field.
func (_u *TileUpdate) SetParentTileIndex(v int) *TileUpdate {
	_u.mutation.ResetParentTileIndex()
	_u.mutation.SetParentTileIndex(v)
	return _u
}

// SetNillableParentTileIndex sets the "parent_tile_index" field if the given value is not nil.
func (_u *TileUpdate) SetNillableParentTileIndex(v *int) *TileUpdate {
	if v != nil {
		_u.SetParentTileIndex(*v)
	}
	return _u
}

// AddParentTileIndex adds value to the "parent_tile_index" field.
func (_u *TileUpdate) AddParentTileIndex(v int) *TileUpdate {
	_u.mutation.AddParentTileIndex(v)
	return _u
}

// ClearParentTileIndex clears the value of the "parent_tile_index" field.
func (_u *TileUpdate) ClearParentTileIndex() *TileUpdate {
	_u.mutation.ClearParentTileIndex()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TileUpdate) SetErrorMessage(v string) *TileUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TileUpdate) SetNillableErrorMessage(v *string) *TileUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TileUpdate) ClearErrorMessage() *TileUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TileUpdate) SetUpdatedAt(v time.Time) *TileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TileMutation object of the builder.
func (_u *TileUpdate) Mutation() *TileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TileUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tile.job"`)
	}
	return nil
}

func (_u *TileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tile.Table, tile.Columns, sqlgraph.NewFieldSpec(tile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(tile.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(tile.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(tile.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(tile.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(tile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(tile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(tile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(tile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputURL(); ok {
		_spec.SetField(tile.FieldInputURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(tile.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tile.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.CurrentPredictionID(); ok {
		_spec.SetField(tile.FieldCurrentPredictionID, field.TypeString, value)
	}
	if _u.mutation.CurrentPredictionIDCleared() {
		_spec.ClearField(tile.FieldCurrentPredictionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTileIndex(); ok {
		_spec.SetField(tile.FieldParentTileIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentTileIndex(); ok {
		_spec.AddField(tile.FieldParentTileIndex, field.TypeInt, value)
	}
	if _u.mutation.ParentTileIndexCleared() {
		_spec.ClearField(tile.FieldParentTileIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TileUpdateOne is the builder for updating a single Tile entity.
type TileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TileMutation
}

// SetX sets the "x" field.
func (_u *TileUpdateOne) SetX(v int) *TileUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableX(v *int) *TileUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *TileUpdateOne) AddX(v int) *TileUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *TileUpdateOne) SetY(v int) *TileUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableY(v *int) *TileUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *TileUpdateOne) AddY(v int) *TileUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *TileUpdateOne) SetWidth(v int) *TileUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableWidth(v *int) *TileUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *TileUpdateOne) AddWidth(v int) *TileUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *TileUpdateOne) SetHeight(v int) *TileUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableHeight(v *int) *TileUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *TileUpdateOne) AddHeight(v int) *TileUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetInputURL sets the "input_url" field.
func (_u *TileUpdateOne) SetInputURL(v string) *TileUpdateOne {
	_u.mutation.SetInputURL(v)
	return _u
}

// SetNillableInputURL sets the "input_url" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableInputURL(v *string) *TileUpdateOne {
	if v != nil {
		_u.SetInputURL(*v)
	}
	return _u
}

// SetStages sets the "stages" field.
func (_u *TileUpdateOne) SetStages(v []models.StageSlot) *TileUpdateOne {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *TileUpdateOne) AppendStages(v []models.StageSlot) *TileUpdateOne {
	_u.mutation.AppendStages(v)
	return _u
}

// SetCurrentPredictionID sets the "current_prediction_id" field.
func (_u *TileUpdateOne) SetCurrentPredictionID(v string) *TileUpdateOne {
	_u.mutation.SetCurrentPredictionID(v)
	return _u
}

// SetNillableCurrentPredictionID sets the "current_prediction_id" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableCurrentPredictionID(v *string) *TileUpdateOne {
	if v != nil {
		_u.SetCurrentPredictionID(*v)
	}
	return _u
}

// ClearCurrentPredictionID clears the value of the "current_prediction_id" field.
func (_u *TileUpdateOne) ClearCurrentPredictionID() *TileUpdateOne {
	_u.mutation.ClearCurrentPredictionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TileUpdateOne) SetStatus(v string) *TileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableStatus(v *string) *TileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParentTileIndex sets the "parent_tile_index" field.
func (_u *TileUpdateOne) SetParentTileIndex(v int) *TileUpdateOne {
	_u.mutation.ResetParentTileIndex()
	_u.mutation.SetParentTileIndex(v)
	return _u
}

// SetNillableParentTileIndex sets the "parent_tile_index" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableParentTileIndex(v *int) *TileUpdateOne {
	if v != nil {
		_u.SetParentTileIndex(*v)
	}
	return _u
}

// AddParentTileIndex adds value to the "parent_tile_index" field.
func (_u *TileUpdateOne) AddParentTileIndex(v int) *TileUpdateOne {
	_u.mutation.AddParentTileIndex(v)
	return _u
}

// ClearParentTileIndex clears the value of the "parent_tile_index" field.
func (_u *TileUpdateOne) ClearParentTileIndex() *TileUpdateOne {
	_u.mutation.ClearParentTileIndex()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TileUpdateOne) SetErrorMessage(v string) *TileUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TileUpdateOne) SetNillableErrorMessage(v *string) *TileUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TileUpdateOne) ClearErrorMessage() *TileUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TileUpdateOne) SetUpdatedAt(v time.Time) *TileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TileMutation object of the builder.
func (_u *TileUpdateOne) Mutation() *TileMutation {
	return _u.mutation
}

// Where appends a list predicates to the TileUpdate builder.
func (_u *TileUpdateOne) Where(ps ...predicate.Tile) *TileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TileUpdateOne) Select(field string, fields ...string) *TileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tile entity.
func (_u *TileUpdateOne) Save(ctx context.Context) (*Tile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TileUpdateOne) SaveX(ctx context.Context) *Tile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TileUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tile.job"`)
	}
	return nil
}

func (_u *TileUpdateOne) sqlSave(ctx context.Context) (_node *Tile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tile.Table, tile.Columns, sqlgraph.NewFieldSpec(tile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tile.FieldID)
		for _, f := range fields {
			if !tile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tile.FieldID {
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
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(tile.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(tile.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(tile.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(tile.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(tile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(tile.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(tile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(tile.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputURL(); ok {
		_spec.SetField(tile.FieldInputURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(tile.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tile.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.CurrentPredictionID(); ok {
		_spec.SetField(tile.FieldCurrentPredictionID, field.TypeString, value)
	}
	if _u.mutation.CurrentPredictionIDCleared() {
		_spec.ClearField(tile.FieldCurrentPredictionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTileIndex(); ok {
		_spec.SetField(tile.FieldParentTileIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentTileIndex(); ok {
		_spec.AddField(tile.FieldParentTileIndex, field.TypeInt, value)
	}
	if _u.mutation.ParentTileIndexCleared() {
		_spec.ClearField(tile.FieldParentTileIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Tile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
