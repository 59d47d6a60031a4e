// Code generated by ent, DO NOT EDIT.

package tile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pixelrelay/upscaled/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldJobID, v))
}

// TileIndex applies equality check predicate on the "tile_index" field. It's identical to TileIndexEQ.
func TileIndex(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldTileIndex, v))
}

// X applies equality check predicate on the "x" field. It's identical to XEQ.
func X(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldX, v))
}

// Y applies equality check predicate on the "y" field. It's identical to YEQ.
func Y(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldY, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldHeight, v))
}

// InputURL applies equality check predicate on the "input_url" field. It's identical to InputURLEQ.
func InputURL(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldInputURL, v))
}

// CurrentPredictionID applies equality check predicate on the "current_prediction_id" field. It's identical to CurrentPredictionIDEQ.
func CurrentPredictionID(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldCurrentPredictionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldStatus, v))
}

// ParentTileIndex applies equality check predicate on the "parent_tile_index" field. It's identical to ParentTileIndexEQ.
func ParentTileIndex(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldParentTileIndex, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContainsFold(FieldJobID, v))
}

// TileIndexEQ applies the EQ predicate on the "tile_index" field.
func TileIndexEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldTileIndex, v))
}

// TileIndexNEQ applies the NEQ predicate on the "tile_index" field.
func TileIndexNEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldTileIndex, v))
}

// TileIndexIn applies the In predicate on the "tile_index" field.
func TileIndexIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldTileIndex, vs...))
}

// TileIndexNotIn applies the NotIn predicate on the "tile_index" field.
func TileIndexNotIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldTileIndex, vs...))
}

// TileIndexGT applies the GT predicate on the "tile_index" field.
func TileIndexGT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldTileIndex, v))
}

// TileIndexGTE applies the GTE predicate on the "tile_index" field.
func TileIndexGTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldTileIndex, v))
}

// TileIndexLT applies the LT predicate on the "tile_index" field.
func TileIndexLT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldTileIndex, v))
}

// TileIndexLTE applies the LTE predicate on the "tile_index" field.
func TileIndexLTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldTileIndex, v))
}

// XEQ applies the EQ predicate on the "x" field.
func XEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldX, v))
}

// XNEQ applies the NEQ predicate on the "x" field.
func XNEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldX, v))
}

// XIn applies the In predicate on the "x" field.
func XIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldX, vs...))
}

// XNotIn applies the NotIn predicate on the "x" field.
func XNotIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldX, vs...))
}

// XGT applies the GT predicate on the "x" field.
func XGT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldX, v))
}

// XGTE applies the GTE predicate on the "x" field.
func XGTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldX, v))
}

// XLT applies the LT predicate on the "x" field.
func XLT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldX, v))
}

// XLTE applies the LTE predicate on the "x" field.
func XLTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldX, v))
}

// YEQ applies the EQ predicate on the "y" field.
func YEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldY, v))
}

// YNEQ applies the NEQ predicate on the "y" field.
func YNEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldY, v))
}

// YIn applies the In predicate on the "y" field.
func YIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldY, vs...))
}

// YNotIn applies the NotIn predicate on the "y" field.
func YNotIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldY, vs...))
}

// YGT applies the GT predicate on the "y" field.
func YGT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldY, v))
}

// YGTE applies the GTE predicate on the "y" field.
func YGTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldY, v))
}

// YLT applies the LT predicate on the "y" field.
func YLT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldY, v))
}

// YLTE applies the LTE predicate on the "y" field.
func YLTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldY, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldWidth, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldHeight, v))
}

// InputURLEQ applies the EQ predicate on the "input_url" field.
func InputURLEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldInputURL, v))
}

// InputURLNEQ applies the NEQ predicate on the "input_url" field.
func InputURLNEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldInputURL, v))
}

// InputURLIn applies the In predicate on the "input_url" field.
func InputURLIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldInputURL, vs...))
}

// InputURLNotIn applies the NotIn predicate on the "input_url" field.
func InputURLNotIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldInputURL, vs...))
}

// InputURLGT applies the GT predicate on the "input_url" field.
func InputURLGT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldInputURL, v))
}

// InputURLGTE applies the GTE predicate on the "input_url" field.
func InputURLGTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldInputURL, v))
}

// InputURLLT applies the LT predicate on the "input_url" field.
func InputURLLT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldInputURL, v))
}

// InputURLLTE applies the LTE predicate on the "input_url" field.
func InputURLLTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldInputURL, v))
}

// InputURLContains applies the Contains predicate on the "input_url" field.
func InputURLContains(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContains(FieldInputURL, v))
}

// InputURLHasPrefix applies the HasPrefix predicate on the "input_url" field.
func InputURLHasPrefix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasPrefix(FieldInputURL, v))
}

// InputURLHasSuffix applies the HasSuffix predicate on the "input_url" field.
func InputURLHasSuffix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasSuffix(FieldInputURL, v))
}

// InputURLEqualFold applies the EqualFold predicate on the "input_url" field.
func InputURLEqualFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEqualFold(FieldInputURL, v))
}

// InputURLContainsFold applies the ContainsFold predicate on the "input_url" field.
func InputURLContainsFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContainsFold(FieldInputURL, v))
}

// CurrentPredictionIDEQ applies the EQ predicate on the "current_prediction_id" field.
func CurrentPredictionIDEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDNEQ applies the NEQ predicate on the "current_prediction_id" field.
func CurrentPredictionIDNEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDIn applies the In predicate on the "current_prediction_id" field.
func CurrentPredictionIDIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldCurrentPredictionID, vs...))
}

// CurrentPredictionIDNotIn applies the NotIn predicate on the "current_prediction_id" field.
func CurrentPredictionIDNotIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldCurrentPredictionID, vs...))
}

// CurrentPredictionIDGT applies the GT predicate on the "current_prediction_id" field.
func CurrentPredictionIDGT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDGTE applies the GTE predicate on the "current_prediction_id" field.
func CurrentPredictionIDGTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDLT applies the LT predicate on the "current_prediction_id" field.
func CurrentPredictionIDLT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDLTE applies the LTE predicate on the "current_prediction_id" field.
func CurrentPredictionIDLTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDContains applies the Contains predicate on the "current_prediction_id" field.
func CurrentPredictionIDContains(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContains(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDHasPrefix applies the HasPrefix predicate on the "current_prediction_id" field.
func CurrentPredictionIDHasPrefix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasPrefix(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDHasSuffix applies the HasSuffix predicate on the "current_prediction_id" field.
func CurrentPredictionIDHasSuffix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasSuffix(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDIsNil applies the IsNil predicate on the "current_prediction_id" field.
func CurrentPredictionIDIsNil() predicate.Tile {
	return predicate.Tile(sql.FieldIsNull(FieldCurrentPredictionID))
}

// CurrentPredictionIDNotNil applies the NotNil predicate on the "current_prediction_id" field.
func CurrentPredictionIDNotNil() predicate.Tile {
	return predicate.Tile(sql.FieldNotNull(FieldCurrentPredictionID))
}

// CurrentPredictionIDEqualFold applies the EqualFold predicate on the "current_prediction_id" field.
func CurrentPredictionIDEqualFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEqualFold(FieldCurrentPredictionID, v))
}

// CurrentPredictionIDContainsFold applies the ContainsFold predicate on the "current_prediction_id" field.
func CurrentPredictionIDContainsFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContainsFold(FieldCurrentPredictionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContainsFold(FieldStatus, v))
}

// ParentTileIndexEQ applies the EQ predicate on the "parent_tile_index" field.
func ParentTileIndexEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldParentTileIndex, v))
}

// ParentTileIndexNEQ applies the NEQ predicate on the "parent_tile_index" field.
func ParentTileIndexNEQ(v int) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldParentTileIndex, v))
}

// ParentTileIndexIn applies the In predicate on the "parent_tile_index" field.
func ParentTileIndexIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldParentTileIndex, vs...))
}

// ParentTileIndexNotIn applies the NotIn predicate on the "parent_tile_index" field.
func ParentTileIndexNotIn(vs ...int) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldParentTileIndex, vs...))
}

// ParentTileIndexGT applies the GT predicate on the "parent_tile_index" field.
func ParentTileIndexGT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldParentTileIndex, v))
}

// ParentTileIndexGTE applies the GTE predicate on the "parent_tile_index" field.
func ParentTileIndexGTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldParentTileIndex, v))
}

// ParentTileIndexLT applies the LT predicate on the "parent_tile_index" field.
func ParentTileIndexLT(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldParentTileIndex, v))
}

// ParentTileIndexLTE applies the LTE predicate on the "parent_tile_index" field.
func ParentTileIndexLTE(v int) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldParentTileIndex, v))
}

// ParentTileIndexIsNil applies the IsNil predicate on the "parent_tile_index" field.
func ParentTileIndexIsNil() predicate.Tile {
	return predicate.Tile(sql.FieldIsNull(FieldParentTileIndex))
}

// ParentTileIndexNotNil applies the NotNil predicate on the "parent_tile_index" field.
func ParentTileIndexNotNil() predicate.Tile {
	return predicate.Tile(sql.FieldNotNull(FieldParentTileIndex))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Tile {
	return predicate.Tile(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Tile {
	return predicate.Tile(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Tile {
	return predicate.Tile(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Tile {
	return predicate.Tile(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Tile {
	return predicate.Tile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Tile {
	return predicate.Tile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.UpscaleJob) predicate.Tile {
	return predicate.Tile(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tile) predicate.Tile {
	return predicate.Tile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tile) predicate.Tile {
	return predicate.Tile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tile) predicate.Tile {
	return predicate.Tile(sql.NotPredicates(p))
}
